package fakedata

// Status generates status, priority and tag labels.
type Status struct{ f *Faker }

// Order returns an order lifecycle status.
func (s Status) Order() string { return s.f.pick(orderStatuses) }

// Generic returns a general record status.
func (s Status) Generic() string { return s.f.pick(genericStatuses) }

// Priority returns a priority level.
func (s Status) Priority() string { return s.f.pick(priorities) }

// Tag returns a marketing tag.
func (s Status) Tag() string { return s.f.pick(tags) }
