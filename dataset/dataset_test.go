package dataset

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()

	dir, err := ioutil.TempDir("", "dataset-test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "data.csv")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProperties(t *testing.T) {
	path := writeTempCSV(t, `Property_Name,Property Title,Price,Location,Total_Area(SQFT),Price_per_SQFT,Description,Total_Rooms,Balcony,city,property_type,BHK
Sunrise,2 BHK in Sunrise,4500000,Baner,950,4736,Gated community near the park,4,Yes,Pune,Apartment,2
Lakeview,Villa at Lakeview,12000000,Whitefield,2400,5000,Spacious and green,6,Yes,Bangalore,Villa,4
`)

	properties, err := LoadProperties(path)
	assert.Nil(t, err, "wrong load")
	assert.Len(t, properties, 2, "wrong record count")

	assert.Equal(t, "Sunrise", properties[0].Name, "wrong name")
	assert.Equal(t, "2 BHK in Sunrise", properties[0].Title, "wrong title")
	assert.Equal(t, float64(4500000), properties[0].Price, "wrong price")
	assert.Equal(t, float64(950), properties[0].TotalArea, "wrong area")
	assert.Equal(t, 2, properties[0].BHK, "wrong bhk")
	assert.Equal(t, "Pune", properties[0].City, "wrong city")
	assert.Equal(t, "Apartment", properties[0].PropertyType, "wrong property type")
	assert.Equal(t, "Gated community near the park", properties[0].Description, "wrong description")
}

func TestLoadPropertiesCoercesBadNumerics(t *testing.T) {
	path := writeTempCSV(t, `Property_Name,Price,Total_Area(SQFT),city,property_type,BHK
A,not-a-price,abc,Pune,Apartment,unknown
B,,1200.5,Mumbai,Villa,3 BHK
`)

	properties, err := LoadProperties(path)
	assert.Nil(t, err, "wrong load")
	assert.Len(t, properties, 2, "malformed values must not drop rows")

	assert.Equal(t, float64(0), properties[0].Price, "bad price should coerce to 0")
	assert.Equal(t, float64(0), properties[0].TotalArea, "bad area should coerce to 0")
	assert.Equal(t, 0, properties[0].BHK, "bad bhk should coerce to 0")

	assert.Equal(t, float64(0), properties[1].Price, "empty price should coerce to 0")
	assert.Equal(t, float64(1200.5), properties[1].TotalArea, "wrong area")
	assert.Equal(t, 3, properties[1].BHK, "leading digits should parse")
}

func TestLoadPropertiesShortRows(t *testing.T) {
	path := writeTempCSV(t, `Property_Name,Price,Total_Area(SQFT),city,property_type,BHK
A,100
`)

	properties, err := LoadProperties(path)
	assert.Nil(t, err, "wrong load")
	assert.Len(t, properties, 1, "wrong record count")
	assert.Equal(t, float64(100), properties[0].Price, "wrong price")
	assert.Equal(t, "", properties[0].City, "missing column should be empty")
	assert.Equal(t, 0, properties[0].BHK, "missing column should coerce to 0")
}

func TestLoadPropertiesHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "Property_Name,Price,city\n")

	properties, err := LoadProperties(path)
	assert.Nil(t, err, "wrong load")
	assert.Len(t, properties, 0, "header-only file should yield no records")
}

func TestLoadPropertiesMissingFile(t *testing.T) {
	_, err := LoadProperties("/nonexistent/data.csv")
	assert.NotNil(t, err, "missing file must fail the load")
}
