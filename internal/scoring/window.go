package scoring

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date form accepted at the service boundary.
const DateLayout = "2006-01-02"

// Window is a closed date range [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return d, nil
}

// ParseWindow parses both bounds and validates the resulting window.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(s, e)
}

// NewWindow truncates both bounds to calendar dates and rejects start > end.
func NewWindow(start, end time.Time) (Window, error) {
	w := Window{Start: DateOf(start), End: DateOf(end)}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate reports ErrInvalidWindow when the window is unset or inverted.
func (w Window) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidWindow)
	}
	if w.Start.After(w.End) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidWindow,
			w.Start.Format(DateLayout), w.End.Format(DateLayout))
	}
	return nil
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s]", w.Start.Format(DateLayout), w.End.Format(DateLayout))
}

// DateOf drops the time-of-day, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
