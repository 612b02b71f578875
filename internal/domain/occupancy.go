package domain

import "math"

// MinutesPerDay is the resolution of the occupancy scan
const MinutesPerDay = 24 * 60

// MinuteCounts builds a per-minute coverage count over the 24-hour circle:
// for every minute covered by any input interval the counter is incremented.
// Inputs must already be split into non-wrapping pieces (LocalIntervals does
// that); pieces extending past the end of day wrap onto the start.
func MinuteCounts(intervals []Interval) []int {
	counts := make([]int, MinutesPerDay)
	for _, iv := range intervals {
		startMinute := int(math.Floor(iv.Start * 60))
		endMinute := int(math.Ceil(iv.End * 60))
		for m := startMinute; m < endMinute; m++ {
			counts[((m%MinutesPerDay)+MinutesPerDay)%MinutesPerDay]++
		}
	}
	return counts
}

// FindRanges scans the per-minute coverage of the input intervals and returns
// the maximal contiguous runs where more than threshold intervals cover the
// same minute, expressed back in hours. With threshold 1 this yields the
// golden hour ranges (two or more sessions open at once).
//
// A run that spans the midnight boundary is reported split at 0/24, the same
// two-piece circular representation LocalIntervals uses.
func FindRanges(intervals []Interval, threshold int) []Interval {
	counts := MinuteCounts(intervals)

	var ranges []Interval
	runStart := -1
	for m := 0; m <= MinutesPerDay; m++ {
		over := m < MinutesPerDay && counts[m] > threshold
		switch {
		case over && runStart < 0:
			runStart = m
		case !over && runStart >= 0:
			ranges = append(ranges, Interval{
				Start: float64(runStart) / 60,
				End:   float64(m) / 60,
			})
			runStart = -1
		}
	}
	return ranges
}

// IsWithin reports whether the given hour falls inside any of the ranges
// (half-open per range).
func IsWithin(hour float64, ranges []Interval) bool {
	for _, r := range ranges {
		if r.Contains(hour) {
			return true
		}
	}
	return false
}
