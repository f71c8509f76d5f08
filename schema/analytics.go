package schema

// CityCount is one entry of the top-cities ranking.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// FactorCount is one entry of the disappointment ranking.
type FactorCount struct {
	Factor string `json:"factor"`
	Count  int    `json:"count"`
}

// TrendPoint is the number of survey submissions on one UTC calendar day.
type TrendPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Analytics is the dashboard snapshot combining property statistics with
// survey insights. It is recomputed in full on every request and never
// persisted.
type Analytics struct {
	TotalProperties    int                `json:"totalProperties"`
	AvgPrice           int                `json:"avgPrice"`
	AvgArea            int                `json:"avgArea"`
	TopPropertyType    string             `json:"topPropertyType"`
	TopCities          []CityCount        `json:"topCities"`
	SurveyCount        int                `json:"surveyCount"`
	AvgPriorities      map[string]float64 `json:"avgPriorities"`
	TopVibe            string             `json:"topVibe"`
	TopDisappointments []FactorCount      `json:"topDisappointments"`
	InterestTrend      []TrendPoint       `json:"interestTrend"`
}
