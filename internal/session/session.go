// Package session owns chip's in-memory state for one process lifetime.
// All mutation flows through the engine's pure functions; this package
// only orchestrates lifecycle, gating, and persistence scheduling.
package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"chip/internal/engine"
	"chip/internal/persist"
)

// Phase is the session lifecycle state.
type Phase int

const (
	// PhaseNotReady means the initial load has not completed; every
	// domain operation is disallowed.
	PhaseNotReady Phase = iota
	// PhaseOnboarding means state is loaded but configuration is absent
	// or invalid; expense logging stays blocked.
	PhaseOnboarding
	// PhaseActive means configuration is valid and logging is enabled.
	PhaseActive
)

var (
	// ErrNotReady rejects operations before the initial load.
	ErrNotReady = errors.New("session not loaded yet")
	// ErrOnboardingRequired rejects expense logging until onboarding
	// has produced a valid configuration.
	ErrOnboardingRequired = errors.New("onboarding required before logging expenses")
)

const saveTimeout = 5 * time.Second

// initialFeedback is shown until the first expense is logged.
const initialFeedback = "Log your first expense to see how today is going."

// LogResult is returned to the caller after a successful expense log.
type LogResult struct {
	XPDelta  int64
	Feedback string
}

// Snapshot is the read-only view the presentation layer renders from.
type Snapshot struct {
	Phase       Phase
	Config      persist.Config
	TotalSpent  int64
	XP          int64
	Level       engine.Level
	Budget      engine.BudgetStatus
	LastExpense *engine.Expense
	Feedback    string
}

// State is the process-wide session state. It is single-threaded by
// construction: one caller mutates it at a time, so no lock guards the
// domain fields. Saves run on their own goroutines but only ever carry
// value copies taken at schedule time.
type State struct {
	rules   engine.Rules
	adapter *persist.Adapter

	phase    Phase
	cfg      persist.Config
	totals   engine.Totals
	last     *engine.Expense
	feedback string

	saves sync.WaitGroup
	logf  func(format string, args ...any)
}

// New returns a not-ready session over the given adapter.
func New(rules engine.Rules, adapter *persist.Adapter) *State {
	return &State{
		rules:    rules,
		adapter:  adapter,
		phase:    PhaseNotReady,
		feedback: initialFeedback,
		logf:     log.Printf,
	}
}

// Open performs the one startup load. A store failure degrades to zero
// state and a first-run experience; it is logged, never surfaced.
func (s *State) Open(ctx context.Context) {
	cfg, totals, err := s.adapter.Load(ctx)
	if err != nil {
		s.logf("chip: %v (starting fresh)", err)
	}

	s.cfg = cfg
	s.totals = totals
	if cfg.IsSet() {
		s.phase = PhaseActive
	} else {
		s.phase = PhaseOnboarding
	}
}

// Phase returns the current lifecycle phase.
func (s *State) Phase() Phase {
	return s.phase
}

// CompleteOnboarding validates and installs the user's configuration,
// then schedules a persistence write. Re-running it overwrites the
// previous configuration.
func (s *State) CompleteOnboarding(monthlyIncome, dailyBudget int64) error {
	if s.phase == PhaseNotReady {
		return ErrNotReady
	}
	if monthlyIncome <= 0 {
		return &engine.ValidationError{Field: "monthly income", Reason: "must be a positive amount"}
	}
	if dailyBudget <= 0 {
		return &engine.ValidationError{Field: "daily budget", Reason: "must be a positive amount"}
	}

	s.cfg = persist.Config{MonthlyIncome: monthlyIncome, DailyBudget: dailyBudget}
	s.phase = PhaseActive
	s.scheduleSave()
	return nil
}

// LogExpense runs one expense through the engine, commits the result,
// and schedules a persistence write.
func (s *State) LogExpense(amount int64, description string, category engine.Category) (LogResult, error) {
	switch s.phase {
	case PhaseNotReady:
		return LogResult{}, ErrNotReady
	case PhaseOnboarding:
		return LogResult{}, ErrOnboardingRequired
	}

	totals, entry, feedback, err := engine.ApplyExpense(s.rules, s.totals, amount, description, category)
	if err != nil {
		return LogResult{}, err
	}

	s.totals = totals
	s.last = &entry
	s.feedback = feedback
	s.scheduleSave()

	return LogResult{XPDelta: entry.XPDelta, Feedback: feedback}, nil
}

// Snapshot returns the current read-only view.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.phase,
		Config:     s.cfg,
		TotalSpent: s.totals.TotalSpent,
		XP:         s.totals.XP,
		Level:      s.rules.LevelFor(s.totals.XP),
		Budget:     engine.BudgetProgress(s.cfg.DailyBudget, s.totals.TotalSpent),
		Feedback:   s.feedback,
	}
	if s.last != nil {
		e := *s.last
		snap.LastExpense = &e
	}
	return snap
}

// Rules exposes the active rule set for presentation (tier tables etc).
func (s *State) Rules() engine.Rules {
	return s.rules
}

// Close waits for in-flight saves to finish. The in-memory state stays
// authoritative either way; this only improves durability on exit.
func (s *State) Close() {
	s.saves.Wait()
}

// scheduleSave fires one best-effort snapshot write. The result is
// observed only for logging — a slow or failed save never blocks, rolls
// back, or overwrites newer in-memory state, because each save carries
// the complete snapshot captured here.
func (s *State) scheduleSave() {
	cfg := s.cfg
	totals := s.totals

	s.saves.Add(1)
	go func() {
		defer s.saves.Done()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := s.adapter.Save(ctx, cfg, totals); err != nil {
			s.logf("chip: %v (state kept in memory)", err)
		}
	}()
}
