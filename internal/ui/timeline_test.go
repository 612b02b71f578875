package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"horae/internal/domain"
)

func TestHourToColumn(t *testing.T) {
	tests := []struct {
		name  string
		hour  float64
		width int
		want  int
	}{
		{"midnight", 0, 48, 0},
		{"noon", 12, 48, 24},
		{"fractional hour", 14.5, 48, 29},
		{"end of day clamps", 24, 48, 47},
		{"negative clamps", -1, 48, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hourToColumn(tt.hour, tt.width))
		})
	}
}

func TestPaintRange(t *testing.T) {
	row := make([]string, 24)
	for i := range row {
		row[i] = "."
	}

	paintRange(row, domain.Interval{Start: 8, End: 17}, 24, "#")

	for i, cell := range row {
		if i >= 8 && i < 17 {
			assert.Equal(t, "#", cell, "column %d", i)
		} else {
			assert.Equal(t, ".", cell, "column %d", i)
		}
	}
}

func TestPaintRange_ZeroWidthIntervalStillVisible(t *testing.T) {
	row := make([]string, 24)
	for i := range row {
		row[i] = "."
	}

	// A sliver narrower than one column paints at least one cell
	paintRange(row, domain.Interval{Start: 6, End: 6.01}, 24, "#")
	assert.Equal(t, "#", row[6])
	assert.Equal(t, ".", row[7])
}
