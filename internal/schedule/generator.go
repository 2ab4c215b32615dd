package schedule

import (
	"math/rand"
	"time"
)

// Generator produces randomized commit timestamps. The zero value is not
// usable; construct one with NewGenerator.
type Generator struct {
	clock Clock

	// draw returns a uniform random integer in [0, n]. Replaceable in tests.
	draw func(n int64) int64
}

// NewGenerator returns a Generator backed by the system clock and the
// default random source.
func NewGenerator() *Generator {
	return &Generator{
		clock: systemClock{},
		draw:  func(n int64) int64 { return rand.Int63n(n + 1) },
	}
}

// NewGeneratorWith returns a Generator with an explicit clock and draw
// function. Used by tests to pin the current time and the random offset.
func NewGeneratorWith(clock Clock, draw func(n int64) int64) *Generator {
	return &Generator{clock: clock, draw: draw}
}

// Generate produces one timestamp inside the window, anchored to today's
// date (or later). When ref is non-nil the result is strictly after it;
// otherwise the result is never earlier than the current time. The window
// is re-validated here because the stored configuration can be edited
// out-of-band.
func (g *Generator) Generate(w Window, ref *time.Time) (time.Time, error) {
	if err := w.Validate(); err != nil {
		return time.Time{}, err
	}

	now := g.clock.Now()

	base := now
	if ref != nil {
		refLocal := ref.In(now.Location())
		if startOfDay(refLocal).After(startOfDay(now)) {
			// A future-dated commit already exists; anchoring to today
			// would let the draw land before it. Start from the
			// reference's date.
			base = refLocal
		}
	}

	windowStart := startOfDay(base).Add(w.Start)
	windowEnd := startOfDay(base).Add(w.End)

	span := int64(windowEnd.Sub(windowStart) / time.Second)
	offset := g.draw(span)

	candidate := windowStart.Add(time.Duration(offset) * time.Second)

	// A single day-advance is enough: the span is under 24 hours and the
	// base date is already at-or-after the reference's date.
	switch {
	case ref != nil:
		if !candidate.After(*ref) {
			candidate = candidate.AddDate(0, 0, 1)
		}
	case candidate.Before(now):
		candidate = candidate.AddDate(0, 0, 1)
	}

	return candidate, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
