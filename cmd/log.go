package cmd

import (
	"context"
	"fmt"
	"strings"

	"chip/internal/cli"
	"chip/internal/engine"

	"github.com/spf13/cobra"
)

var flagCategory string

var logCmd = &cobra.Command{
	Use:   "log <amount> <description...>",
	Short: "Log one expense",
	Long: `Log one expense and see how it changes your XP.

Categories:
  necessary   it had to be bought        (+XP)
  want        a treat, honestly logged   (-XP, honesty bonus applies)
  investment  money put to work          (+XP)`,
	Args: cobra.MinimumNArgs(2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Expense category: necessary, want, or investment")
	_ = logCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, args []string) error {
	amount := parseAmount(args[0])
	description := strings.Join(args[1:], " ")
	category := engine.Category(flagCategory)

	s, cleanup, err := openSession(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := s.LogExpense(amount, description, category)
	if err != nil {
		return err
	}

	snap := s.Snapshot()
	fmt.Println()
	fmt.Printf("  Logged %s on %s (%s) · %s\n",
		cli.FormatAmount(amount), description, category, cli.FormatXPDelta(res.XPDelta))
	if category == engine.CategoryWant {
		fmt.Printf("  Includes the honesty bonus for logging a treat.\n")
	}
	fmt.Printf("  Chip says: %s\n", res.Feedback)
	fmt.Printf("\n  %s · %d XP · total spent %s · budget used %s\n\n",
		snap.Level.Name, snap.XP,
		cli.FormatAmount(snap.TotalSpent),
		cli.FormatPercent(snap.Budget.PercentRaw))
	return nil
}
