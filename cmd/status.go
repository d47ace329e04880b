package cmd

import (
	"context"
	"fmt"

	"chip/internal/cli"
	"chip/internal/session"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show your spending and XP summary",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	s, cleanup, err := openSession(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	snap := s.Snapshot()
	if snap.Phase == session.PhaseOnboarding {
		fmt.Println("\n  Chip doesn't know you yet. Run `chip setup` to get started.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  ·  %d XP", snap.Level.Name, snap.XP)))
	fmt.Println()

	barWidth := 30
	fmt.Printf("  XP progress        %s  %s to next level\n",
		cli.RenderProgressBar(snap.Level.Progress, barWidth),
		cli.FormatNumber(snap.Level.XPToNext))
	fmt.Printf("  Daily budget used  %s  %s of %s\n",
		cli.RenderProgressBar(snap.Budget.PercentClamped/100, barWidth),
		cli.FormatPercent(snap.Budget.PercentRaw),
		cli.FormatAmount(snap.Config.DailyBudget))
	fmt.Println()

	fmt.Println(cli.RenderKV("Total spent", cli.FormatAmount(snap.TotalSpent)))
	fmt.Println(cli.RenderKV("Budget remaining", cli.FormatAmount(snap.Budget.Remaining)))
	fmt.Println(cli.RenderKV("Monthly income", cli.FormatAmount(snap.Config.MonthlyIncome)))

	if e := snap.LastExpense; e != nil {
		fmt.Println(cli.RenderKV("Last expense", fmt.Sprintf("%s on %s (%s) · %s",
			cli.FormatAmount(e.Amount), e.Description, e.Category, cli.FormatXPDelta(e.XPDelta))))
	}

	fmt.Printf("\n  Chip says: %s\n\n", snap.Feedback)
	return nil
}
