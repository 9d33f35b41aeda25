// Package fakedata fabricates plausible names, numbers, dates and chart
// series for populating mockups without a backend.
//
// Generators are grouped into categories hanging off a Faker:
//
//	f := fakedata.New()
//	name := f.User().Name()
//	pts, err := f.Chart().TimeSeries(fakedata.DefaultTimeSeriesPoints)
//
// Every call draws from the Faker's Source and nothing else, so tests get
// reproducible output by injecting a scripted or seeded source.
package fakedata

import "time"

// Defaults for parameterised generators.
const (
	DefaultSentenceWords      = 8
	DefaultParagraphSentences = 3
	DefaultIntegerMin         = 0
	DefaultIntegerMax         = 100
	DefaultDecimalPlaces      = 2
	DefaultCurrencyMin        = 10
	DefaultCurrencyMax        = 1000
	DefaultRecentDays         = 30
	DefaultFutureDays         = 30
	DefaultItemCount          = 5
	DefaultImageWidth         = 400
	DefaultImageHeight        = 300
	DefaultTimeSeriesPoints   = 7
	DefaultCategoryCount      = 5
)

// Placeholder service templates. Recognised placeholders are {seed},
// {width}, {height}, {category} and {token}.
const (
	DefaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed={seed}"
	DefaultImageURL  = "https://picsum.photos/{width}/{height}?random={token}&category={category}"
)

// Faker owns the random source and clock used by every generator category.
type Faker struct {
	src       Source
	now       func() time.Time
	avatarURL string
	imageURL  string
}

// Option configures a Faker.
type Option func(*Faker)

// WithSource injects the random source. A nil source keeps the default.
func WithSource(src Source) Option {
	return func(f *Faker) {
		if src != nil {
			f.src = src
		}
	}
}

// WithClock pins "today" for the date and chart generators.
func WithClock(now func() time.Time) Option {
	return func(f *Faker) {
		if now != nil {
			f.now = now
		}
	}
}

// WithAvatarURL overrides the avatar URL template.
func WithAvatarURL(tmpl string) Option {
	return func(f *Faker) {
		if tmpl != "" {
			f.avatarURL = tmpl
		}
	}
}

// WithImageURL overrides the placeholder image URL template.
func WithImageURL(tmpl string) Option {
	return func(f *Faker) {
		if tmpl != "" {
			f.imageURL = tmpl
		}
	}
}

// New creates a Faker backed by the process-wide source unless overridden.
func New(opts ...Option) *Faker {
	f := &Faker{
		src:       DefaultSource(),
		now:       time.Now,
		avatarURL: DefaultAvatarURL,
		imageURL:  DefaultImageURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Text returns the text generators.
func (f *Faker) Text() Text { return Text{f: f} }

// User returns the user generators.
func (f *Faker) User() User { return User{f: f} }

// Number returns the numeric generators.
func (f *Faker) Number() Number { return Number{f: f} }

// Date returns the date generators.
func (f *Faker) Date() Date { return Date{f: f} }

// Status returns the status label generators.
func (f *Faker) Status() Status { return Status{f: f} }

// List returns the list generators.
func (f *Faker) List() List { return List{f: f} }

// Media returns the media generators.
func (f *Faker) Media() Media { return Media{f: f} }

// Chart returns the chart series generators.
func (f *Faker) Chart() Chart { return Chart{f: f} }

func (f *Faker) pick(table []string) string {
	return pick(f.src, table)
}

func (f *Faker) between(lo, hi int) int {
	return between(f.src, lo, hi)
}

func (f *Faker) today() time.Time {
	return f.now()
}
