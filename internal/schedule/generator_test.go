package schedule

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDraw(offset int64) func(int64) int64 {
	return func(int64) int64 { return offset }
}

func mustWindow(t *testing.T, start, end string) Window {
	t.Helper()

	w, err := ParseWindow(start, end)
	require.NoError(t, err)

	return w
}

func TestGenerateRejectsInvalidWindow(t *testing.T) {
	gen := NewGeneratorWith(FixedClock{T: time.Now()}, fixedDraw(0))

	_, err := gen.Generate(Window{Start: 2 * time.Hour, End: time.Hour}, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestGenerateStaysInsideWindow(t *testing.T) {
	window := mustWindow(t, "09:00", "10:00")
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)
	clock := FixedClock{T: now}

	// Random draws across the full span, including both boundaries.
	for i := 0; i < 200; i++ {
		span := int64(window.End-window.Start) / int64(time.Second)
		offset := rand.Int63n(span + 1)

		gen := NewGeneratorWith(clock, fixedDraw(offset))

		got, err := gen.Generate(window, nil)
		require.NoError(t, err)

		sinceMidnight := time.Duration(got.Hour())*time.Hour +
			time.Duration(got.Minute())*time.Minute +
			time.Duration(got.Second())*time.Second

		assert.GreaterOrEqual(t, sinceMidnight, window.Start)
		assert.LessOrEqual(t, sinceMidnight, window.End)
	}
}

func TestGenerateBoundaryOffsets(t *testing.T) {
	window := mustWindow(t, "09:00", "10:00")
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.Local)

	gen := NewGeneratorWith(FixedClock{T: now}, fixedDraw(0))
	got, err := gen.Generate(window, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local), got)

	gen = NewGeneratorWith(FixedClock{T: now}, fixedDraw(3600))
	got, err = gen.Generate(window, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local), got)
}

func TestGenerateAlwaysAfterReference(t *testing.T) {
	window := mustWindow(t, "09:00", "10:00")
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		ref  time.Time
	}{
		{"reference inside window", time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)},
		{"reference before window", time.Date(2024, 1, 1, 7, 0, 0, 0, time.Local)},
		{"reference at window end", time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)},
		{"reference days in the past", time.Date(2023, 12, 20, 9, 30, 0, 0, time.Local)},
		{"reference in the future", time.Date(2024, 1, 5, 9, 30, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := int64(window.End-window.Start) / int64(time.Second)

			for offset := int64(0); offset <= span; offset += 60 {
				gen := NewGeneratorWith(FixedClock{T: now}, fixedDraw(offset))

				got, err := gen.Generate(window, &tt.ref)
				require.NoError(t, err)
				assert.True(t, got.After(tt.ref),
					"offset %d produced %s, not after reference %s", offset, got, tt.ref)
			}
		})
	}
}

func TestGenerateCorrectionMovesToNextDay(t *testing.T) {
	// Window 09:00-10:00, reference 09:30 today: candidates at or before
	// 09:30 must land on the next day at the same time-of-day.
	window := mustWindow(t, "09:00", "10:00")
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	ref := time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)

	gen := NewGeneratorWith(FixedClock{T: now}, fixedDraw(15*60)) // 09:15
	got, err := gen.Generate(window, &ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 9, 15, 0, 0, time.Local), got)

	gen = NewGeneratorWith(FixedClock{T: now}, fixedDraw(30*60)) // exactly 09:30
	got, err = gen.Generate(window, &ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 9, 30, 0, 0, time.Local), got)

	gen = NewGeneratorWith(FixedClock{T: now}, fixedDraw(45*60)) // 09:45, already later
	got, err = gen.Generate(window, &ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 45, 0, 0, time.Local), got)
}

func TestGenerateAnchorsToFutureReferenceDate(t *testing.T) {
	// A future-dated commit (itself a product of a prior run) moves the
	// anchor date forward; the result must never fall back to today.
	window := mustWindow(t, "09:00", "10:00")
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	ref := time.Date(2024, 1, 5, 9, 30, 0, 0, time.Local)

	gen := NewGeneratorWith(FixedClock{T: now}, fixedDraw(0)) // 09:00 on the anchor day
	got, err := gen.Generate(window, &ref)
	require.NoError(t, err)

	// 09:00 on Jan 5 is before the reference, so the single correction
	// lands on Jan 6.
	assert.Equal(t, time.Date(2024, 1, 6, 9, 0, 0, 0, time.Local), got)
	assert.True(t, got.After(ref))

	gen = NewGeneratorWith(FixedClock{T: now}, fixedDraw(45*60)) // 09:45 on Jan 5
	got, err = gen.Generate(window, &ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 9, 45, 0, 0, time.Local), got)
}

func TestGenerateWithoutReferenceNeverInThePast(t *testing.T) {
	window := mustWindow(t, "00:00", "02:00")
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)

	// 01:00 today is behind the clock; a fresh repository still gets a
	// timestamp at or after now.
	gen := NewGeneratorWith(FixedClock{T: now}, fixedDraw(3600))
	got, err := gen.Generate(window, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 1, 0, 0, 0, time.Local), got)
	assert.False(t, got.Before(now))
}

func TestGenerateWithoutReferenceKeepsFutureCandidate(t *testing.T) {
	window := mustWindow(t, "09:00", "10:00")
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)

	gen := NewGeneratorWith(FixedClock{T: now}, fixedDraw(0))
	got, err := gen.Generate(window, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local), got)
}

func TestGenerateIndependentAcrossCalls(t *testing.T) {
	// The default generator draws fresh randomness on every call; over a
	// one-hour window, 100 draws collapsing to a single value would mean
	// the source is broken.
	gen := NewGenerator()
	window := mustWindow(t, "09:00", "10:00")

	seen := make(map[int64]struct{})

	for i := 0; i < 100; i++ {
		got, err := gen.Generate(window, nil)
		require.NoError(t, err)

		seen[got.Unix()] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
}
