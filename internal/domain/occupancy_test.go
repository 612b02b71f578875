package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinuteCounts(t *testing.T) {
	counts := MinuteCounts([]Interval{
		{Start: 8, End: 17},
		{Start: 13, End: 22},
	})

	require.Len(t, counts, MinutesPerDay)
	assert.Equal(t, 0, counts[7*60+59])
	assert.Equal(t, 1, counts[8*60])
	assert.Equal(t, 2, counts[13*60])
	assert.Equal(t, 2, counts[17*60-1])
	assert.Equal(t, 1, counts[17*60])
	assert.Equal(t, 0, counts[22*60])
}

func TestFindRanges_OverlapDetection(t *testing.T) {
	// London 8-17 and New York 13-22 overlap during [13,17)
	ranges := FindRanges([]Interval{
		{Start: 8, End: 17},
		{Start: 13, End: 22},
	}, 1)

	require.Len(t, ranges, 1)
	assert.Equal(t, Interval{Start: 13, End: 17}, ranges[0])
}

func TestFindRanges_AdjacentIsNotOverlap(t *testing.T) {
	ranges := FindRanges([]Interval{
		{Start: 8, End: 17},
		{Start: 17, End: 22},
	}, 1)

	assert.Empty(t, ranges)
}

func TestFindRanges_WrapSplitAtMidnight(t *testing.T) {
	// Two sessions both covering 22:00-07:00, split into circular pieces.
	// The run spanning midnight comes back as two pieces, split at 0/24.
	ranges := FindRanges([]Interval{
		{Start: 22, End: 24}, {Start: 0, End: 7},
		{Start: 22, End: 24}, {Start: 0, End: 7},
	}, 1)

	require.Len(t, ranges, 2)
	assert.Equal(t, Interval{Start: 0, End: 7}, ranges[0])
	assert.Equal(t, Interval{Start: 22, End: 24}, ranges[1])
}

func TestFindRanges_ThresholdAboveTwo(t *testing.T) {
	intervals := []Interval{
		{Start: 9, End: 12},
		{Start: 10, End: 14},
		{Start: 11, End: 13},
	}

	// All three only cover [11,12)
	ranges := FindRanges(intervals, 2)
	require.Len(t, ranges, 1)
	assert.Equal(t, Interval{Start: 11, End: 12}, ranges[0])
}

func TestIsWithin(t *testing.T) {
	ranges := []Interval{{Start: 13, End: 17}, {Start: 22, End: 24}}

	tests := []struct {
		name     string
		hour     float64
		expected bool
	}{
		{"inside first range", 14.5, true},
		{"at range start", 13, true},
		{"at range end is outside", 17, false},
		{"between ranges", 20, false},
		{"inside wrap piece", 23.25, true},
		{"before everything", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsWithin(tt.hour, ranges))
		})
	}
}
