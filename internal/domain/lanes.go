package domain

import "sort"

// AssignLanes places sessions on timeline rows ("lanes") so that no two
// sessions sharing a lane overlap in local time. Sessions are taken in order
// of ascending UTC start hour (stable for ties) and each goes into the
// lowest-numbered lane free of conflicts; a new lane is opened when none
// fits. Greedy first-fit interval coloring: not guaranteed globally minimal,
// but deterministic and stable given the sort.
//
// Returns the lane index per session id and the number of lanes used
// (at least 1, so an empty timeline still renders one row).
func AssignLanes(sessions []Session, offsetHours float64) (map[string]int, int) {
	sorted := make([]Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UTCStartHour < sorted[j].UTCStartHour
	})

	assignment := make(map[string]int, len(sorted))
	var lanes [][]Interval

	for _, session := range sorted {
		intervals := session.LocalIntervals(offsetHours)

		placed := -1
		for lane := range lanes {
			if !anyOverlap(lanes[lane], intervals) {
				placed = lane
				break
			}
		}
		if placed < 0 {
			placed = len(lanes)
			lanes = append(lanes, nil)
		}

		lanes[placed] = append(lanes[placed], intervals...)
		assignment[session.ID] = placed
	}

	count := len(lanes)
	if count < 1 {
		count = 1
	}
	return assignment, count
}

func anyOverlap(placed, candidate []Interval) bool {
	for _, a := range placed {
		for _, b := range candidate {
			if Overlaps(a, b) {
				return true
			}
		}
	}
	return false
}
