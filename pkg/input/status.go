package input

// Status reports whether a widget consumed an event.
type Status int

const (
	// Ignored means the event may be handled by other widgets.
	Ignored Status = iota
	// Captured means the widget consumed the event.
	Captured
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Merge combines two statuses; Captured wins.
func (s Status) Merge(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}
