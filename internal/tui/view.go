package tui

import (
	"fmt"
	"strings"

	"chip/internal/cli"
	"chip/internal/engine"
	"chip/internal/tui/components"
	"chip/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  chip needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.onboardForm != nil {
		return a.onboardForm.View()
	}
	if a.entryForm != nil {
		return a.entryForm.View()
	}
	if a.showLevels {
		return a.viewLevels()
	}

	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	spinnerStyle := lipgloss.NewStyle().Foreground(t.Accent)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	card := cardStyle.Render(
		spinnerStyle.Render(a.spinner.View()) +
			textStyle.Render(" Chip is recovering your finances..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	t := theme.Active
	snap := a.sess.Snapshot()

	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	barWidth := cw - 30
	if barWidth < 10 {
		barWidth = 10
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	flashStyle := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("◈ chip"))
	b.WriteString(labelStyle.Render(" · Chip is watching your decisions"))
	b.WriteString("\n\n")

	// Level + XP bar
	b.WriteString("  " + levelStyle.Render(snap.Level.Name))
	b.WriteString(labelStyle.Render(fmt.Sprintf("   XP: %d", snap.XP)))
	if a.xpFlash != "" {
		b.WriteString("  " + flashStyle.Render(a.xpFlash))
	}
	b.WriteString("\n")
	b.WriteString("  " + components.XPBar(snap.Level.Progress, barWidth))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %s to next level", cli.FormatNumber(snap.Level.XPToNext))))
	b.WriteString("\n\n")

	// Budget bar (uncapped number, bounded fill)
	b.WriteString("  " + labelStyle.Render("Daily budget used"))
	b.WriteString("\n")
	b.WriteString("  " + components.BudgetBar(snap.Budget.PercentClamped, snap.Budget.PercentRaw, barWidth))
	b.WriteString("\n\n")

	// Metric cards
	widths := components.LayoutRow(cw-4, 3)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		components.MetricCard("Total spent", cli.FormatAmount(snap.TotalSpent), widths[0]),
		components.MetricCard("Remaining today", cli.FormatAmount(snap.Budget.Remaining), widths[1]),
		components.MetricCard("Monthly income", cli.FormatAmount(snap.Config.MonthlyIncome), widths[2]),
	)
	b.WriteString(indentBlock(cards, "  "))
	b.WriteString("\n\n")

	if e := snap.LastExpense; e != nil {
		b.WriteString("  " + labelStyle.Render("Last expense: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s on %s (%s) · %s",
			cli.FormatAmount(e.Amount), e.Description, e.Category, cli.FormatXPDelta(e.XPDelta))))
		if e.Category == engine.CategoryWant {
			b.WriteString(labelStyle.Render(" (includes honesty bonus)"))
		}
		b.WriteString("\n\n")
	}

	b.WriteString("  " + valueStyle.Render("Chip says: ") + labelStyle.Render(snap.Feedback))
	b.WriteString("\n\n")

	b.WriteString(components.StatusBar(a.width, "[a]dd expense  [p]rogress  [q]uit"))

	return b.String()
}

func (a App) viewLevels() string {
	t := theme.Active
	snap := a.sess.Snapshot()
	rules := a.sess.Rules()

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hereStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Level progression"))
	b.WriteString("\n\n")

	if rules.Policy == engine.PolicyTiers {
		for _, tier := range rules.Tiers {
			line := fmt.Sprintf("%-10s %d - %d XP", tier.Name, tier.Min, tier.Max)
			if tier.Name == snap.Level.Name {
				b.WriteString(hereStyle.Render(line + "  ← you"))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Past the table the ladder continues as numbered levels."))
	} else {
		b.WriteString(rowStyle.Render(fmt.Sprintf("Each level spans %d XP.", rules.XPPerLevel)))
	}

	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("You're at %s — %s more XP to the next level.",
		snap.Level.Name, cli.FormatNumber(snap.Level.XPToNext))))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Press any key to close."))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
