// Package schedule generates randomized commit timestamps inside a
// configured daily time-of-day window.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidWindow indicates the window start is not strictly before its end.
	ErrInvalidWindow = errors.New("window start must be before window end")

	// ErrMalformedTime indicates a time string that is not HH:MM 24-hour format.
	ErrMalformedTime = errors.New("malformed time")
)

// Window is a daily time-of-day range. Start and End are offsets from
// local midnight, each inside a single day.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// DefaultWindow is used when no window has been configured.
var DefaultWindow = Window{
	Start: 0,
	End:   2 * time.Hour,
}

// ParseWindow builds a Window from two HH:MM strings.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Window{}, err
	}

	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Window{}, err
	}

	w := Window{Start: s, End: e}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}

	return w, nil
}

// ParseTimeOfDay parses an HH:MM 24-hour string into an offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (expected HH:MM, e.g. 09:30)", ErrMalformedTime, s)
	}

	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Validate checks the window invariant: 0 <= Start < End < 24h.
func (w Window) Validate() error {
	if w.Start < 0 || w.End >= 24*time.Hour {
		return fmt.Errorf("%w: window must fit inside one day", ErrInvalidWindow)
	}

	if w.Start >= w.End {
		return fmt.Errorf("%w: got %s - %s", ErrInvalidWindow, w.StartString(), w.EndString())
	}

	return nil
}

// StartString returns the window start as HH:MM.
func (w Window) StartString() string {
	return formatTimeOfDay(w.Start)
}

// EndString returns the window end as HH:MM.
func (w Window) EndString() string {
	return formatTimeOfDay(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("%s - %s", w.StartString(), w.EndString())
}

func formatTimeOfDay(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
