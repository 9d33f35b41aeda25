// Package preview builds and renders a mock dashboard from generated data,
// either once for static output or as an interactive bubbletea program.
package preview

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/wireframe/internal/fakedata"
)

// Stat is one headline metric card.
type Stat struct {
	Title  string
	Value  string
	Change string
	Icon   string
}

// Data is everything one dashboard render needs.
type Data struct {
	Title      string
	Heading    string
	User       string
	Nav        []fakedata.NavItem
	Stats      []Stat
	Series     []fakedata.SeriesPoint
	Categories []fakedata.CategoryValue
	Items      []fakedata.Item
}

// Generate fills a Data value from f with rows table records.
func Generate(f *fakedata.Faker, rows int) (Data, error) {
	items, err := f.List().Items(rows)
	if err != nil {
		return Data{}, err
	}
	series, err := f.Chart().TimeSeries(fakedata.DefaultTimeSeriesPoints)
	if err != nil {
		return Data{}, err
	}
	categories, err := f.Chart().Categories(fakedata.DefaultCategoryCount)
	if err != nil {
		return Data{}, err
	}

	stats := make([]Stat, 0, 4)
	revenue, err := f.Number().Currency(1000, 50000)
	if err != nil {
		return Data{}, err
	}
	stats = append(stats, Stat{Title: "Revenue", Value: revenue, Icon: "📈"})

	users, err := f.Number().Integer(100, 5000)
	if err != nil {
		return Data{}, err
	}
	stats = append(stats, Stat{Title: "Active Users", Value: strconv.Itoa(users), Icon: "👤"})

	orders, err := f.Number().Integer(10, 900)
	if err != nil {
		return Data{}, err
	}
	stats = append(stats, Stat{Title: "Orders", Value: strconv.Itoa(orders), Icon: "📋"})
	stats = append(stats, Stat{Title: "Conversion", Value: f.Number().Percentage(), Icon: "🎯"})

	for i := range stats {
		delta, err := f.Number().Decimal(-10, 10, 1)
		if err != nil {
			return Data{}, err
		}
		stats[i].Change = fmt.Sprintf("%+.1f%%", delta)
	}

	return Data{
		Title:      f.Text().Title(),
		Heading:    f.Text().Heading(),
		User:       f.User().Name(),
		Nav:        f.List().Navigation(),
		Stats:      stats,
		Series:     series,
		Categories: categories,
		Items:      items,
	}, nil
}
