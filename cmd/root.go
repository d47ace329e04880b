// Package cmd wires chip's CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chip/internal/config"
	"chip/internal/persist"
	"chip/internal/session"
	"chip/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "chip",
	Short: "Chip, your expense-tracking companion",
	Long:  "Track expenses, earn XP for disciplined spending, and let Chip keep score.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress persistence warnings")

	log.SetFlags(0)
}

// dbPath resolves the database location: flag, then config, then XDG.
func dbPath(cfg config.Config) string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "chip.db")
	}
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "chip.db")
	}
	return store.DefaultDBPath()
}

// openSession is the shared startup path: config, store, adapter, load.
// A store that cannot be opened degrades to in-memory state for this run,
// matching the session's own treatment of read failures.
func openSession(ctx context.Context) (*session.State, func(), error) {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  config ignored: %v\n", err)
	}

	var st store.Store
	st, err = store.Open(dbPath(cfg))
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  store unavailable, state will not persist: %v\n", err)
		}
		st = store.NewMemory()
	}

	s := session.New(config.BuildRules(cfg), persist.New(st))
	s.Open(ctx)

	cleanup := func() {
		s.Close()
		_ = st.Close()
	}
	return s, cleanup, nil
}
