package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chip/internal/engine"
	"chip/internal/persist"
	"chip/internal/store"
)

func newSession(t *testing.T, mem *store.Memory) *State {
	t.Helper()
	s := New(engine.DefaultRules(), persist.New(mem))
	s.logf = t.Logf
	return s
}

func TestState_GatesBeforeOpen(t *testing.T) {
	s := newSession(t, store.NewMemory())

	_, err := s.LogExpense(100, "coffee", engine.CategoryWant)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.ErrorIs(t, s.CompleteOnboarding(850_000, 20_000), ErrNotReady)
}

func TestState_OpenEmptyStoreRequiresOnboarding(t *testing.T) {
	s := newSession(t, store.NewMemory())
	s.Open(context.Background())

	assert.Equal(t, PhaseOnboarding, s.Phase())

	_, err := s.LogExpense(100, "coffee", engine.CategoryWant)
	assert.ErrorIs(t, err, ErrOnboardingRequired)
}

func TestState_OpenStoreFailureDegradesToFirstRun(t *testing.T) {
	mem := store.NewMemory()
	mem.FailWith("store offline")

	s := newSession(t, mem)
	s.Open(context.Background())

	// Degraded, not crashed: behaves exactly like a first run.
	assert.Equal(t, PhaseOnboarding, s.Phase())
}

func TestState_OnboardingValidation(t *testing.T) {
	s := newSession(t, store.NewMemory())
	s.Open(context.Background())

	var verr *engine.ValidationError
	err := s.CompleteOnboarding(0, 20_000)
	require.ErrorAs(t, err, &verr)

	// Config stays unset, logging stays blocked.
	assert.Equal(t, PhaseOnboarding, s.Phase())
	_, err = s.LogExpense(100, "coffee", engine.CategoryWant)
	assert.ErrorIs(t, err, ErrOnboardingRequired)

	err = s.CompleteOnboarding(850_000, -5)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, PhaseOnboarding, s.Phase())
}

func TestState_OnboardingThenLogging(t *testing.T) {
	mem := store.NewMemory()
	s := newSession(t, mem)
	s.Open(context.Background())

	require.NoError(t, s.CompleteOnboarding(850_000, 20_000))
	assert.Equal(t, PhaseActive, s.Phase())

	res, err := s.LogExpense(3000, "snack", engine.CategoryWant)
	require.NoError(t, err)
	assert.Equal(t, int64(-10), res.XPDelta)
	assert.NotEmpty(t, res.Feedback)

	snap := s.Snapshot()
	assert.Equal(t, int64(3000), snap.TotalSpent)
	assert.Equal(t, int64(10), snap.XP) // max(0-20, 0) = 0, then +10 bonus

	s.Close()
}

func TestState_LogExpenseUpdatesSnapshot(t *testing.T) {
	s := newSession(t, store.NewMemory())
	s.Open(context.Background())
	require.NoError(t, s.CompleteOnboarding(850_000, 20_000))

	res, err := s.LogExpense(5000, "groceries", engine.CategoryNecessary)
	require.NoError(t, err)
	assert.Equal(t, int64(20), res.XPDelta)

	snap := s.Snapshot()
	assert.Equal(t, PhaseActive, snap.Phase)
	assert.Equal(t, int64(5000), snap.TotalSpent)
	assert.Equal(t, int64(20), snap.XP)
	assert.Equal(t, int64(1), snap.Level.Index)
	assert.Equal(t, int64(80), snap.Level.XPToNext)
	assert.Equal(t, int64(15_000), snap.Budget.Remaining)
	assert.InDelta(t, 25.0, snap.Budget.PercentRaw, 1e-9)

	require.NotNil(t, snap.LastExpense)
	assert.Equal(t, "groceries", snap.LastExpense.Description)
	assert.Equal(t, engine.CategoryNecessary, snap.LastExpense.Category)
}

func TestState_ValidationLeavesStateUntouched(t *testing.T) {
	s := newSession(t, store.NewMemory())
	s.Open(context.Background())
	require.NoError(t, s.CompleteOnboarding(850_000, 20_000))

	before := s.Snapshot()

	var verr *engine.ValidationError
	_, err := s.LogExpense(-1, "bad", engine.CategoryWant)
	require.ErrorAs(t, err, &verr)

	after := s.Snapshot()
	assert.Equal(t, before.TotalSpent, after.TotalSpent)
	assert.Equal(t, before.XP, after.XP)
	assert.Nil(t, after.LastExpense)
}

func TestState_PersistsAcrossRestart(t *testing.T) {
	mem := store.NewMemory()

	s := newSession(t, mem)
	s.Open(context.Background())
	require.NoError(t, s.CompleteOnboarding(850_000, 20_000))
	_, err := s.LogExpense(3000, "snack", engine.CategoryWant)
	require.NoError(t, err)
	_, err = s.LogExpense(5000, "groceries", engine.CategoryNecessary)
	require.NoError(t, err)
	s.Close() // drain fire-and-forget saves

	// Fresh process over the same store.
	s2 := newSession(t, mem)
	s2.Open(context.Background())

	assert.Equal(t, PhaseActive, s2.Phase())
	snap := s2.Snapshot()
	assert.Equal(t, int64(850_000), snap.Config.MonthlyIncome)
	assert.Equal(t, int64(20_000), snap.Config.DailyBudget)
	assert.Equal(t, int64(8000), snap.TotalSpent)
	assert.Equal(t, int64(30), snap.XP) // 0 -> 10 (want) -> 30 (necessary)
	assert.Nil(t, snap.LastExpense, "last expense is ephemeral, not persisted")
}

func TestState_SaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	mem := store.NewMemory()
	s := newSession(t, mem)
	s.Open(context.Background())
	require.NoError(t, s.CompleteOnboarding(850_000, 20_000))
	s.Close()

	mem.FailWith("store offline")
	_, err := s.LogExpense(3000, "snack", engine.CategoryWant)
	require.NoError(t, err, "save failures must never surface")
	s.Close()

	// The running session still has the new state.
	assert.Equal(t, int64(3000), s.Snapshot().TotalSpent)

	// Durability degraded: the store kept the pre-failure snapshot.
	mem.Fail(nil)
	_, totals, loadErr := persist.New(mem).Load(context.Background())
	require.NoError(t, loadErr)
	assert.Zero(t, totals.TotalSpent)
}
