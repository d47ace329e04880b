package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chip/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagIncome int64
	flagBudget int64
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set your monthly income and daily budget",
	Long:  "Run onboarding. Re-running overwrites the previous configuration.",
	RunE:  runSetup,
}

func init() {
	setupCmd.Flags().Int64Var(&flagIncome, "income", 0, "Monthly income")
	setupCmd.Flags().Int64Var(&flagBudget, "budget", 0, "Daily spending budget")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	s, cleanup, err := openSession(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	income := flagIncome
	budget := flagBudget

	if income == 0 || budget == 0 {
		reader := bufio.NewReader(os.Stdin)
		fmt.Println()
		fmt.Println("  Set your daily goal")
		fmt.Println()

		if income == 0 {
			income = promptAmount(reader, "What's your monthly income?", "850000")
		}
		if budget == 0 {
			budget = promptAmount(reader, "How much do you want to spend per day at most?", "20000")
		}
	}

	if err := s.CompleteOnboarding(income, budget); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  All set! Income %s, daily budget %s.\n",
		cli.FormatAmount(income), cli.FormatAmount(budget))
	fmt.Println("  Log your first expense with `chip log`.")
	fmt.Println()
	return nil
}

func promptAmount(reader *bufio.Reader, question, example string) int64 {
	fmt.Printf("  %s (e.g. %s)\n  > ", question, example)
	line, _ := reader.ReadString('\n')
	return parseAmount(line)
}

// parseAmount keeps only digits, so "20,000" and "$20000" both work.
func parseAmount(s string) int64 {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
