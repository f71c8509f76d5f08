package schema

// Property is one row of the property listing dataset. Numeric fields keep
// whatever the loader could coerce, 0 otherwise; the textual fields are
// carried through untouched and unused by aggregation.
type Property struct {
	Name         string  `json:"Property_Name"`
	Title        string  `json:"Property Title"`
	Price        float64 `json:"Price"`
	Location     string  `json:"Location"`
	TotalArea    float64 `json:"Total_Area(SQFT)"`
	Description  string  `json:"Description"`
	City         string  `json:"city"`
	PropertyType string  `json:"property_type"`
	BHK          int     `json:"BHK"`
}
