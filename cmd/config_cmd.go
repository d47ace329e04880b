package cmd

import (
	"fmt"

	"chip/internal/config"
	"chip/internal/engine"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show active configuration",
	RunE:  runConfig,
}

var configPolicyCmd = &cobra.Command{
	Use:   "set-policy <cycle|tiers>",
	Short: "Select the leveling policy",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigPolicy,
}

func init() {
	configCmd.AddCommand(configPolicyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rules := config.BuildRules(cfg)

	fmt.Println()
	fmt.Printf("  Config file: %s\n\n", config.ConfigPath())
	fmt.Printf("  Leveling policy: %s\n", rules.Policy)
	fmt.Printf("  XP per level:    %d\n", rules.XPPerLevel)
	fmt.Printf("  Honesty bonus:   %d\n", rules.HonestyBonus)
	fmt.Println("  XP per category:")
	for _, c := range engine.Categories {
		fmt.Printf("    %-11s %+d\n", c, rules.BaseXP[c])
	}
	fmt.Println()
	return nil
}

func runConfigPolicy(_ *cobra.Command, args []string) error {
	policy := engine.LevelPolicy(args[0])
	if policy != engine.PolicyCycle && policy != engine.PolicyTiers {
		return fmt.Errorf("unknown policy %q (use cycle or tiers)", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Rules.Policy = string(policy)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Leveling policy set to %s.\n", policy)
	return nil
}
