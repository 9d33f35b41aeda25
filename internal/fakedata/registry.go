package fakedata

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Args carries string-typed generator arguments, typically from CLI flags.
type Args map[string]string

// Int returns the named argument as an int, or def when absent.
func (a Args) Int(name string, def int) (int, error) {
	raw, ok := a[name]
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidArgument("args", fmt.Sprintf("%s must be an integer", name), map[string]any{name: raw})
	}
	return v, nil
}

// Float returns the named argument as a float64, or def when absent.
func (a Args) Float(name string, def float64) (float64, error) {
	raw, ok := a[name]
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidArgument("args", fmt.Sprintf("%s must be a number", name), map[string]any{name: raw})
	}
	return v, nil
}

// String returns the named argument, or def when absent.
func (a Args) String(name, def string) string {
	if v, ok := a[name]; ok {
		return v
	}
	return def
}

// Entry describes one named generator.
type Entry struct {
	Name        string
	Description string
	Run         func(f *Faker, args Args) (any, error)
}

func plain[T any](fn func(f *Faker) T) func(*Faker, Args) (any, error) {
	return func(f *Faker, _ Args) (any, error) { return fn(f), nil }
}

// Registry maps dotted generator names to their entries.
var Registry = map[string]Entry{
	"text.word": {Description: "one word", Run: plain(func(f *Faker) string { return f.Text().Word() })},
	"text.sentence": {Description: "sentence (words=8)", Run: func(f *Faker, a Args) (any, error) {
		n, err := a.Int("words", DefaultSentenceWords)
		if err != nil {
			return nil, err
		}
		return f.Text().Sentence(n)
	}},
	"text.paragraph": {Description: "paragraph (sentences=3)", Run: func(f *Faker, a Args) (any, error) {
		n, err := a.Int("sentences", DefaultParagraphSentences)
		if err != nil {
			return nil, err
		}
		return f.Text().Paragraph(n)
	}},
	"text.title":   {Description: "page or card title", Run: plain(func(f *Faker) string { return f.Text().Title() })},
	"text.heading": {Description: "section heading", Run: plain(func(f *Faker) string { return f.Text().Heading() })},
	"text.label":   {Description: "field label", Run: plain(func(f *Faker) string { return f.Text().Label() })},

	"user.name":  {Description: "full name", Run: plain(func(f *Faker) string { return f.User().Name() })},
	"user.email": {Description: "email address", Run: plain(func(f *Faker) string { return f.User().Email() })},
	"user.avatar": {Description: "avatar URL (seed=random)", Run: func(f *Faker, a Args) (any, error) {
		return f.User().Avatar(a.String("seed", "")), nil
	}},
	"user.role": {Description: "account role", Run: plain(func(f *Faker) string { return f.User().Role() })},

	"number.integer": {Description: "integer (min=0,max=100)", Run: func(f *Faker, a Args) (any, error) {
		lo, err := a.Int("min", DefaultIntegerMin)
		if err != nil {
			return nil, err
		}
		hi, err := a.Int("max", DefaultIntegerMax)
		if err != nil {
			return nil, err
		}
		return f.Number().Integer(lo, hi)
	}},
	"number.decimal": {Description: "decimal (min=0,max=100,decimals=2)", Run: func(f *Faker, a Args) (any, error) {
		lo, err := a.Float("min", DefaultIntegerMin)
		if err != nil {
			return nil, err
		}
		hi, err := a.Float("max", DefaultIntegerMax)
		if err != nil {
			return nil, err
		}
		places, err := a.Int("decimals", DefaultDecimalPlaces)
		if err != nil {
			return nil, err
		}
		return f.Number().Decimal(lo, hi, places)
	}},
	"number.currency": {Description: "dollar amount (min=10,max=1000)", Run: func(f *Faker, a Args) (any, error) {
		lo, err := a.Float("min", DefaultCurrencyMin)
		if err != nil {
			return nil, err
		}
		hi, err := a.Float("max", DefaultCurrencyMax)
		if err != nil {
			return nil, err
		}
		return f.Number().Currency(lo, hi)
	}},
	"number.percentage": {Description: "percentage", Run: plain(func(f *Faker) string { return f.Number().Percentage() })},
	"number.phone":      {Description: "phone number", Run: plain(func(f *Faker) string { return f.Number().Phone() })},

	"date.recent": {Description: "recent date (days=30)", Run: func(f *Faker, a Args) (any, error) {
		return dateArg(a, func(days int) (time.Time, error) { return f.Date().Recent(days) }, DefaultRecentDays)
	}},
	"date.future": {Description: "future date (days=30)", Run: func(f *Faker, a Args) (any, error) {
		return dateArg(a, func(days int) (time.Time, error) { return f.Date().Future(days) }, DefaultFutureDays)
	}},
	"date.formatted": {Description: "formatted recent date", Run: plain(func(f *Faker) string { return f.Date().Formatted(nil) })},
	"date.time":      {Description: "clock time", Run: plain(func(f *Faker) string { return f.Date().Time() })},

	"status.order":    {Description: "order status", Run: plain(func(f *Faker) string { return f.Status().Order() })},
	"status.generic":  {Description: "record status", Run: plain(func(f *Faker) string { return f.Status().Generic() })},
	"status.priority": {Description: "priority level", Run: plain(func(f *Faker) string { return f.Status().Priority() })},
	"status.tag":      {Description: "marketing tag", Run: plain(func(f *Faker) string { return f.Status().Tag() })},

	"list.items": {Description: "composite records (count=5)", Run: func(f *Faker, a Args) (any, error) {
		n, err := a.Int("count", DefaultItemCount)
		if err != nil {
			return nil, err
		}
		return f.List().Items(n)
	}},
	"list.navigation": {Description: "fixed navigation menu", Run: plain(func(f *Faker) []NavItem { return f.List().Navigation() })},

	"media.image": {Description: "placeholder image URL (width=400,height=300,category=)", Run: func(f *Faker, a Args) (any, error) {
		w, err := a.Int("width", DefaultImageWidth)
		if err != nil {
			return nil, err
		}
		h, err := a.Int("height", DefaultImageHeight)
		if err != nil {
			return nil, err
		}
		return f.Media().Image(w, h, a.String("category", ""))
	}},
	"media.icon":  {Description: "emoji icon", Run: plain(func(f *Faker) string { return f.Media().Icon() })},
	"media.color": {Description: "hex colour", Run: plain(func(f *Faker) string { return f.Media().Color() })},

	"chart.timeSeries": {Description: "daily series (points=7)", Run: func(f *Faker, a Args) (any, error) {
		n, err := a.Int("points", DefaultTimeSeriesPoints)
		if err != nil {
			return nil, err
		}
		return f.Chart().TimeSeries(n)
	}},
	"chart.categories": {Description: "category values (count=5)", Run: func(f *Faker, a Args) (any, error) {
		n, err := a.Int("count", DefaultCategoryCount)
		if err != nil {
			return nil, err
		}
		return f.Chart().Categories(n)
	}},
	"chart.pie": {Description: "pie slices summing to 100", Run: plain(func(f *Faker) []PieSlice { return f.Chart().Pie() })},
}

func dateArg(a Args, gen func(int) (time.Time, error), def int) (any, error) {
	days, err := a.Int("days", def)
	if err != nil {
		return nil, err
	}
	t, err := gen(days)
	if err != nil {
		return nil, err
	}
	return t.Format(DateLayout), nil
}

// Lookup returns the named generator entry.
func Lookup(name string) (Entry, error) {
	entry, ok := Registry[name]
	if !ok {
		return Entry{}, (&Error{Code: ErrCodeNotFound, Message: "unknown generator: " + name}).WithContext(map[string]any{"name": name})
	}
	entry.Name = name
	return entry, nil
}

// Names returns all registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
