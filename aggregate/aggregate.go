package aggregate

import (
	"math"
	"sort"

	"github.com/neighborfit/neighborfit-api/schema"
)

const (
	sentinelNone = "N/A"

	topCityLimit           = 5
	topDisappointmentLimit = 2

	trendDayFormat = "2006-01-02"
)

// counter tallies string keys while remembering first-occurrence order, so
// equal counts rank by earliest appearance in the input.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns keys by count descending, truncated to limit. The stable
// sort over insertion order keeps ties deterministic.
func (c *counter) ranked(limit int) []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)

	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})

	if limit >= 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// Analyze computes the dashboard snapshot from a property dataset and the
// stored surveys. It is a pure function: no I/O, no shared state, safe to
// call from concurrent requests.
func Analyze(properties []schema.Property, surveys []schema.Survey) schema.Analytics {
	result := schema.Analytics{
		TopPropertyType:    sentinelNone,
		TopVibe:            sentinelNone,
		TopCities:          []schema.CityCount{},
		TopDisappointments: []schema.FactorCount{},
		InterestTrend:      []schema.TrendPoint{},
		AvgPriorities:      map[string]float64{},
	}

	result.TotalProperties = len(properties)

	var priceSum, areaSum float64
	types := newCounter()
	cities := newCounter()
	for _, p := range properties {
		priceSum += p.Price
		areaSum += p.TotalArea
		types.add(p.PropertyType)
		cities.add(p.City)
	}

	if result.TotalProperties > 0 {
		n := float64(result.TotalProperties)
		result.AvgPrice = int(math.Round(priceSum / n))
		result.AvgArea = int(math.Round(areaSum / n))
		result.TopPropertyType = types.ranked(1)[0]
	}

	for _, city := range cities.ranked(topCityLimit) {
		result.TopCities = append(result.TopCities, schema.CityCount{
			City:  city,
			Count: cities.counts[city],
		})
	}

	result.SurveyCount = len(surveys)

	for _, factor := range schema.PriorityFactors {
		result.AvgPriorities[factor] = 0
	}

	vibes := newCounter()
	disappointments := newCounter()
	trend := newCounter()
	for _, s := range surveys {
		for _, factor := range schema.PriorityFactors {
			result.AvgPriorities[factor] += float64(s.PriorityScore(factor))
		}

		if s.Vibe != "" {
			vibes.add(s.Vibe)
		}

		if factor := lowestFactor(s); factor != "" {
			disappointments.add(factor)
		}

		trend.add(s.CreatedAt.UTC().Format(trendDayFormat))
	}

	if result.SurveyCount > 0 {
		for _, factor := range schema.PriorityFactors {
			result.AvgPriorities[factor] /= float64(result.SurveyCount)
		}
	}

	if top := vibes.ranked(1); len(top) > 0 {
		result.TopVibe = top[0]
	}

	for _, factor := range disappointments.ranked(topDisappointmentLimit) {
		result.TopDisappointments = append(result.TopDisappointments, schema.FactorCount{
			Factor: factor,
			Count:  disappointments.counts[factor],
		})
	}

	days := append([]string(nil), trend.order...)
	sort.Strings(days)
	for _, day := range days {
		result.InterestTrend = append(result.InterestTrend, schema.TrendPoint{
			Day:   day,
			Count: trend.counts[day],
		})
	}

	return result
}

// lowestFactor finds the disappointment factor of one survey: walking the
// fixed factor order, it keeps the first factor scored strictly below the
// running minimum, which starts at 5. A survey with every factor at 5
// contributes nothing, and a leading 5 is never selected. This mirrors the
// live system's behavior exactly.
func lowestFactor(s schema.Survey) string {
	min := 5
	factor := ""
	for _, f := range schema.PriorityFactors {
		if score := s.PriorityScore(f); score < min {
			min = score
			factor = f
		}
	}
	return factor
}
