// Package components provides reusable TUI widgets for the chip dashboard.
package components

import (
	"fmt"
	"strings"

	"chip/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// XPBar renders the level progress bar. pct is a fraction in [0,1].
func XPBar(pct float64, width int) string {
	t := theme.Active
	filled := fillWidth(pct, width)

	filledStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}

// BudgetBar renders the daily-budget fill with a green/yellow/orange/red
// gradient and the uncapped percentage alongside. The bar itself is
// bounded; only the number runs past 100.
func BudgetBar(pctClamped, pctRaw float64, width int) string {
	t := theme.Active
	frac := pctClamped / 100
	filled := fillWidth(frac, width)

	var barColor lipgloss.Color
	switch {
	case frac >= 0.9:
		barColor = t.Red
	case frac >= 0.7:
		barColor = t.Orange
	case frac >= 0.5:
		barColor = t.Yellow
	default:
		barColor = t.Green
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled)) +
		" " + pctStyle.Render(fmt.Sprintf("%.0f%%", pctRaw))
}

func fillWidth(pct float64, width int) int {
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}
