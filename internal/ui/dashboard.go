package ui

import (
	"fmt"
	"strings"

	"horae/internal/domain"
	"horae/internal/services"
	"horae/internal/theme"
)

// renderClockHeader shows the current time in the display zone plus the zone
// label itself.
func renderClockHeader(clock, zoneLabel string) string {
	return theme.ClockStyle.Render(clock) + " " + theme.SubtleStyle.Render(zoneLabel)
}

// renderMarketPulse is the one-line open-market summary above the cards
func renderMarketPulse(details []services.SessionDetails, goldenActive bool) string {
	open := 0
	closingSoon := 0
	for _, d := range details {
		if d.Status.IsOpen() {
			open++
		}
		if d.Status == domain.StatusActiveClosing {
			closingSoon++
		}
	}

	var parts []string
	switch open {
	case 0:
		parts = append(parts, theme.SubtleStyle.Render("all markets closed"))
	case 1:
		parts = append(parts, theme.StatusStyle("active").Render("1 market open"))
	default:
		parts = append(parts, theme.StatusStyle("active").Render(fmt.Sprintf("%d markets open", open)))
	}
	if closingSoon > 0 {
		parts = append(parts, theme.StatusStyle("active-closing").Render(fmt.Sprintf("%d closing soon", closingSoon)))
	}
	if goldenActive {
		parts = append(parts, theme.OverlapBadgeStyle.Render("✦ golden hour"))
	}
	return strings.Join(parts, theme.SubtleStyle.Render(" · "))
}

// renderSessionCards draws one card (or compact row) per session, with the
// selected one highlighted.
func renderSessionCards(details []services.SessionDetails, selected int, compact bool) string {
	if len(details) == 0 {
		return ""
	}

	var b strings.Builder
	for i, d := range details {
		if compact {
			b.WriteString(renderCompactRow(d, i == selected))
			b.WriteString("\n")
			continue
		}
		b.WriteString(renderCard(d, i == selected))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCompactRow(d services.SessionDetails, selected bool) string {
	cursor := "  "
	if selected {
		cursor = theme.ClockStyle.Render("> ")
	}

	symbol := theme.StatusStyle(string(d.Status)).Render(d.Status.Symbol())
	name := theme.SessionStyle(d.Color).Render(d.Name)
	line := fmt.Sprintf("%s%s %s %s", cursor, symbol, name,
		theme.SubtleStyle.Render(fmt.Sprintf("%s-%s", d.LocalOpenTime, d.LocalCloseTime)))
	if d.Countdown != "" {
		line += " " + theme.CountdownStyle.Render(d.Countdown)
	}
	if d.IsOverlapping {
		line += " " + theme.OverlapBadgeStyle.Render("✦")
	}
	return line
}

func renderCard(d services.SessionDetails, selected bool) string {
	symbol := theme.StatusStyle(string(d.Status)).Render(d.Status.Symbol())
	title := symbol + " " + theme.CardTitleStyle.Render(d.Name)
	if d.IsOverlapping {
		title += " " + theme.OverlapBadgeStyle.Render("✦ overlap")
	}

	lines := []string{
		title,
		theme.MarketStyle.Render(d.Market),
		theme.SubtleStyle.Render(fmt.Sprintf("%s - %s", d.LocalOpenTime, d.LocalCloseTime)),
	}
	if d.Countdown != "" {
		lines = append(lines, theme.CountdownStyle.Render(d.Countdown))
	}

	card := theme.CardStyle
	if selected {
		card = card.BorderForeground(theme.SessionColor(d.Color))
	}
	return card.Render(strings.Join(lines, "\n"))
}

// renderWeekendNotice is the empty state shown on non-trading days
func renderWeekendNotice() string {
	return theme.WeekendStyle.Render("Markets are closed for the weekend.") +
		"\n" + theme.SubtleStyle.Render("Press w to switch to 24/7 mode.")
}
