package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalIntervals_SimpleWindow(t *testing.T) {
	intervals := LocalIntervals(8, 17, 0)

	require.Len(t, intervals, 1)
	assert.Equal(t, Interval{Start: 8, End: 17}, intervals[0])
}

func TestLocalIntervals_MidnightWrap(t *testing.T) {
	// Sydney: 22:00 UTC to 07:00 UTC wraps past midnight
	intervals := LocalIntervals(22, 7, 0)

	require.Len(t, intervals, 2)
	assert.Equal(t, Interval{Start: 22, End: 24}, intervals[0])
	assert.Equal(t, Interval{Start: 0, End: 7}, intervals[1])

	total := intervals[0].Duration() + intervals[1].Duration()
	assert.InDelta(t, 9.0, total, 1e-9)
}

func TestLocalIntervals_OffsetShifts(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		end      float64
		offset   float64
		expected []Interval
	}{
		{
			name:  "positive fractional offset stays on one day",
			start: 8, end: 17, offset: 5.5,
			expected: []Interval{{Start: 13.5, End: 22.5}},
		},
		{
			name:  "negative offset wraps into two pieces",
			start: 8, end: 17, offset: -10,
			expected: []Interval{{Start: 22, End: 24}, {Start: 0, End: 7}},
		},
		{
			name:  "offset unwraps a UTC-wrapping window",
			start: 22, end: 7, offset: 2,
			expected: []Interval{{Start: 0, End: 9}},
		},
		{
			name:  "quarter hour offset",
			start: 0, end: 9, offset: 5.75,
			expected: []Interval{{Start: 5.75, End: 14.75}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LocalIntervals(tt.start, tt.end, tt.offset))
		})
	}
}

func TestLocalIntervals_EmptyWindow(t *testing.T) {
	assert.Empty(t, LocalIntervals(9, 9, 0))
	assert.Empty(t, LocalIntervals(9, 9, -3))
}

func TestLocalIntervals_FullDay(t *testing.T) {
	assert.Equal(t, []Interval{{Start: 0, End: 24}}, LocalIntervals(0, 24, 5))
}

func TestLocalIntervals_DurationPreserved(t *testing.T) {
	// The local split must always carry the same total duration as the UTC
	// window, for every combination of window and offset
	offsets := []float64{-11, -5.5, -0.25, 0, 0.25, 3, 5.75, 9.5, 13}
	for start := 0; start < 24; start += 3 {
		for end := 0; end < 24; end += 3 {
			for _, offset := range offsets {
				want := WindowDuration(float64(start), float64(end))
				var got float64
				for _, iv := range LocalIntervals(float64(start), float64(end), offset) {
					got += iv.Duration()
				}
				assert.InDelta(t, want, got, 1e-9,
					"window %d-%d offset %v", start, end, offset)
			}
		}
	}
}

func TestWindowDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		end      float64
		expected float64
	}{
		{"plain window", 8, 17, 9},
		{"wrapping window", 22, 7, 9},
		{"empty window", 9, 9, 0},
		{"almost full day wrap", 1, 0, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WindowDuration(tt.start, tt.end))
		})
	}
}

func TestOverlaps_HalfOpenSemantics(t *testing.T) {
	a := Interval{Start: 8, End: 17}
	b := Interval{Start: 13, End: 22}
	c := Interval{Start: 17, End: 22}

	assert.True(t, Overlaps(a, b))
	assert.True(t, Overlaps(b, a))
	// Touching endpoints do not count as overlap
	assert.False(t, Overlaps(a, c))
	assert.False(t, Overlaps(c, a))
}

func TestNormalizeHour(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeHour(24))
	assert.Equal(t, 2.0, NormalizeHour(26))
	assert.Equal(t, 22.0, NormalizeHour(-2))
	assert.Equal(t, 13.5, NormalizeHour(13.5))
	assert.Equal(t, 23.75, NormalizeHour(-0.25))
}
