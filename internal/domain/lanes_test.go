package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignLanes_MutuallyOverlappingGetDistinctLanes(t *testing.T) {
	sessions := []Session{
		{ID: "a", UTCStartHour: 8, UTCEndHour: 18},
		{ID: "b", UTCStartHour: 9, UTCEndHour: 19},
		{ID: "c", UTCStartHour: 10, UTCEndHour: 20},
	}

	lanes, count := AssignLanes(sessions, 0)

	assert.Equal(t, 3, count)
	assert.Equal(t, 0, lanes["a"])
	assert.Equal(t, 1, lanes["b"])
	assert.Equal(t, 2, lanes["c"])
}

func TestAssignLanes_DisjointSessionsShareLaneZero(t *testing.T) {
	sessions := []Session{
		{ID: "early", UTCStartHour: 0, UTCEndHour: 8},
		{ID: "late", UTCStartHour: 8, UTCEndHour: 16},
	}

	lanes, count := AssignLanes(sessions, 0)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, lanes["early"])
	assert.Equal(t, 0, lanes["late"])
}

func TestAssignLanes_SortsByStartHourBeforePlacing(t *testing.T) {
	// Input order must not matter for the outcome: the late session is first
	// in the slice but still lands after the early one
	sessions := []Session{
		{ID: "late", UTCStartHour: 8, UTCEndHour: 16},
		{ID: "early", UTCStartHour: 0, UTCEndHour: 8},
	}

	lanes, count := AssignLanes(sessions, 0)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, lanes["early"])
	assert.Equal(t, 0, lanes["late"])
}

func TestAssignLanes_WrappingSessionConflictsOnBothPieces(t *testing.T) {
	// Sydney wraps to {22,24}+{0,7}; a 2-6 session collides with the second
	// piece and needs its own lane
	sessions := []Session{
		{ID: "syd", UTCStartHour: 22, UTCEndHour: 7},
		{ID: "night", UTCStartHour: 2, UTCEndHour: 6},
	}

	lanes, count := AssignLanes(sessions, 0)

	assert.Equal(t, 2, count)
	assert.NotEqual(t, lanes["syd"], lanes["night"])
}

func TestAssignLanes_DefaultSessionsAreDeterministic(t *testing.T) {
	first, firstCount := AssignLanes(DefaultSessions(), 0)
	second, secondCount := AssignLanes(DefaultSessions(), 0)

	assert.Equal(t, first, second)
	assert.Equal(t, firstCount, secondCount)
}

func TestAssignLanes_EmptyListStillHasOneLane(t *testing.T) {
	lanes, count := AssignLanes(nil, 0)

	assert.Empty(t, lanes)
	assert.Equal(t, 1, count)
}
