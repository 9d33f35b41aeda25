package fakedata

import "time"

const (
	chartValueMin = 100
	chartValueMax = 1000

	pieMinSlices = 3
	pieMaxSlices = 6
	pieSliceMin  = 10
	pieTotal     = 100
)

// SeriesPoint is one sample of a time series.
type SeriesPoint struct {
	Date  time.Time `json:"date" yaml:"date"`
	Label string    `json:"label" yaml:"label"`
	Value int       `json:"value" yaml:"value"`
}

// CategoryValue pairs a category name with a value.
type CategoryValue struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// PieSlice is one slice of a pie chart, expressed in percent.
type PieSlice struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// Chart generates chart-ready series.
type Chart struct{ f *Faker }

// TimeSeries returns points daily samples ending yesterday, oldest first.
func (c Chart) TimeSeries(points int) ([]SeriesPoint, error) {
	if err := checkCount("chart.timeSeries", "points", points); err != nil {
		return nil, err
	}
	today := c.f.today()
	series := make([]SeriesPoint, points)
	for i := range series {
		day := today.AddDate(0, 0, i-points)
		series[i] = SeriesPoint{
			Date:  day,
			Label: day.Format("Jan 2"),
			Value: c.f.between(chartValueMin, chartValueMax),
		}
	}
	return series, nil
}

// Categories pairs the first count category names with random values.
func (c Chart) Categories(count int) ([]CategoryValue, error) {
	if err := checkCount("chart.categories", "count", count); err != nil {
		return nil, err
	}
	if count > len(chartCategories) {
		return nil, invalidArgument("chart.categories", "count exceeds available categories", map[string]any{
			"count":     count,
			"available": len(chartCategories),
		})
	}
	out := make([]CategoryValue, count)
	for i := range out {
		out[i] = CategoryValue{Name: chartCategories[i], Value: c.f.between(chartValueMin, chartValueMax)}
	}
	return out, nil
}

// Pie splits 100 into three to six slices. Each slice but the last draws from
// [10, remaining/2]; once remaining/2 drops below 10 the lower bound is
// lowered to remaining/2. Halving keeps at least ceil(remaining/2) back, so
// every slice is at least 1 and the values always total exactly 100.
func (c Chart) Pie() []PieSlice {
	count := c.f.between(pieMinSlices, pieMaxSlices)
	slices := make([]PieSlice, count)
	remaining := pieTotal
	for i := 0; i < count-1; i++ {
		upper := remaining / 2
		lower := min(pieSliceMin, upper)
		v := c.f.between(lower, upper)
		remaining -= v
		slices[i] = PieSlice{Label: chartCategories[i], Value: v}
	}
	slices[count-1] = PieSlice{Label: chartCategories[count-1], Value: remaining}
	return slices
}
