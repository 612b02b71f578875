package ui

import (
	"strings"

	"horae/internal/domain"
	"horae/internal/services"
	"horae/internal/theme"
)

const minTimelineWidth = 24

// renderTimeline draws the 24-hour lane view: one row per lane with each
// session's local window as a colored bar, an optional golden-hour row, a
// now marker and the hour axis. All positions are in the display timezone.
// The selected session's bar renders bold to track the card selection.
func renderTimeline(
	details []services.SessionDetails,
	lanes map[string]int,
	laneCount int,
	offsetHours float64,
	nowHour float64,
	goldenRanges []domain.Interval,
	showGolden bool,
	selectedID string,
	width int,
) string {
	if width < minTimelineWidth {
		width = minTimelineWidth
	}

	var b strings.Builder

	// Now marker row
	nowCol := hourToColumn(nowHour, width)
	b.WriteString(strings.Repeat(" ", nowCol))
	b.WriteString(theme.NowMarkerStyle.Render("▼"))
	b.WriteString("\n")

	// One row per lane; later sessions in the same lane never overlap
	// earlier ones, so painting in order is safe
	for lane := 0; lane < laneCount; lane++ {
		row := make([]string, width)
		for i := range row {
			row[i] = theme.TimelineAxisStyle.Render("·")
		}
		for _, d := range details {
			if lanes[d.ID] != lane {
				continue
			}
			style := theme.SessionStyle(d.Color)
			if d.ID == selectedID {
				style = style.Bold(true)
			}
			for _, iv := range d.LocalIntervals(offsetHours) {
				paintRange(row, iv, width, style.Render("█"))
			}
		}
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}

	if showGolden && len(goldenRanges) > 0 {
		row := make([]string, width)
		for i := range row {
			row[i] = " "
		}
		for _, iv := range goldenRanges {
			paintRange(row, iv, width, theme.GoldenHourStyle.Render("▂"))
		}
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}

	b.WriteString(renderAxis(width))
	return b.String()
}

// paintRange fills the columns covered by the interval
func paintRange(row []string, iv domain.Interval, width int, cell string) {
	start := hourToColumn(iv.Start, width)
	end := hourToColumn(iv.End, width)
	if end <= start {
		end = start + 1
	}
	for col := start; col < end && col < len(row); col++ {
		row[col] = cell
	}
}

func hourToColumn(hour float64, width int) int {
	col := int(hour / 24 * float64(width))
	if col < 0 {
		col = 0
	}
	if col >= width {
		col = width - 1
	}
	return col
}

// renderAxis draws the hour scale under the lanes
func renderAxis(width int) string {
	row := make([]byte, width)
	for i := range row {
		row[i] = ' '
	}
	labels := map[int]string{0: "0", 6: "6", 12: "12", 18: "18"}
	for hour, label := range labels {
		col := hourToColumn(float64(hour), width)
		for i, c := range []byte(label) {
			if col+i < width {
				row[col+i] = c
			}
		}
	}
	// End-of-day label, right-aligned
	if width >= 2 {
		row[width-2] = '2'
		row[width-1] = '4'
	}
	return theme.TimelineAxisStyle.Render(string(row))
}
