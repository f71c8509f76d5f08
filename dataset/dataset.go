package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/neighborfit/neighborfit-api/schema"
)

const datasetLogPrefix = "dataset"

// LoadProperties reads the property listing dataset from a CSV file with a
// header row. Rows are decoded one at a time so only the materialized records
// occupy memory. Numeric columns are coerced best-effort and default to 0;
// a row is never rejected for malformed values. An unreadable file fails the
// whole load.
func LoadProperties(path string) ([]schema.Property, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return []schema.Property{}, nil
	}
	if err != nil {
		return nil, err
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	properties := make([]schema.Property, 0, 64)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		properties = append(properties, schema.Property{
			Name:         field(row, "Property_Name"),
			Title:        field(row, "Property Title"),
			Price:        coerceFloat(field(row, "Price")),
			Location:     field(row, "Location"),
			TotalArea:    coerceFloat(field(row, "Total_Area(SQFT)")),
			Description:  field(row, "Description"),
			City:         field(row, "city"),
			PropertyType: field(row, "property_type"),
			BHK:          coerceInt(field(row, "BHK")),
		})
	}

	log.WithField("prefix", datasetLogPrefix).Debugf("loaded %d properties from %s", len(properties), path)

	return properties, nil
}

func coerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// coerceInt reads the leading digits of the value, so "3 BHK" coerces to 3
// the same way the dataset has always been interpreted.
func coerceInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}
