package cmd

import (
	"context"
	"fmt"

	"chip/internal/cli"
	"chip/internal/engine"
	"chip/internal/session"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show level progression",
	RunE:  runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	s, cleanup, err := openSession(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	snap := s.Snapshot()
	rules := s.Rules()

	fmt.Println()
	fmt.Println(cli.RenderTitle("LEVEL PROGRESSION"))
	fmt.Println()

	if rules.Policy == engine.PolicyTiers {
		rows := make([][]string, 0, len(rules.Tiers))
		for _, t := range rules.Tiers {
			marker := ""
			if snap.Phase == session.PhaseActive && snap.Level.Name == t.Name {
				marker = "← you"
			}
			rows = append(rows, []string{
				t.Name,
				fmt.Sprintf("%d - %d XP", t.Min, t.Max),
				marker,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Tier", "Range", ""},
			Rows:    rows,
		}))
		fmt.Printf("\n  Past %s the ladder continues as numbered levels.\n",
			rules.Tiers[len(rules.Tiers)-1].Name)
	} else {
		fmt.Printf("  Each level spans %s XP.\n", cli.FormatNumber(rules.XPPerLevel))
	}

	if snap.Phase == session.PhaseActive {
		fmt.Printf("\n  You're at %s with %d XP — %s more to the next level.\n\n",
			snap.Level.Name, snap.XP, cli.FormatNumber(snap.Level.XPToNext))
	} else {
		fmt.Println("\n  Run `chip setup` to start earning XP.")
		fmt.Println()
	}
	return nil
}
