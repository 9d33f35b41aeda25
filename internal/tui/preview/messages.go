package preview

// DataMsg carries a freshly generated dashboard.
type DataMsg struct {
	Data Data
}

// ErrorMsg reports a failed generation.
type ErrorMsg struct {
	Err error
}
