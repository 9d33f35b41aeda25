package fakedata

import "time"

// scriptedSource replays a fixed sequence of draws, wrapping around.
type scriptedSource struct {
	values []float64
	calls  int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func script(values ...float64) *scriptedSource {
	return &scriptedSource{values: values}
}

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func seededFaker(seed uint64) *Faker {
	return New(WithSource(NewSeededSource(seed, seed^0x9e3779b97f4a7c15)), WithClock(fixedClock))
}
