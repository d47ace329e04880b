package components

import (
	"chip/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the bottom key-hint bar.
func StatusBar(width int, hints string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	return style.Render(" " + hints)
}
