package domain

import "time"

// TimeWindow is a half-open interval [Start, End)
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow builds a window from two instants
func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start, End: end}
}

// IsValid returns true if the window has a positive duration
func (w TimeWindow) IsValid() bool {
	return w.End.After(w.Start)
}

// Duration returns the length of the window, zero for invalid windows
func (w TimeWindow) Duration() time.Duration {
	if !w.IsValid() {
		return 0
	}
	return w.End.Sub(w.Start)
}

// Overlaps reports whether two windows share any instant.
// Windows that only touch at an endpoint do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}
