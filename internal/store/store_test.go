package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends under test share one behavioral contract.
func openBackends(t *testing.T) map[string]Store {
	t.Helper()

	sq, err := Open(filepath.Join(t.TempDir(), "chip.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	return map[string]Store{
		"sqlite": sq,
		"memory": NewMemory(),
	}
}

func TestStore_GetSetRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, "xp")
			require.NoError(t, err)
			assert.False(t, ok, "absent key must report ok=false")

			require.NoError(t, s.Set(ctx, "xp", "115"))

			v, ok, err := s.Get(ctx, "xp")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "115", v)

			// Overwrite wins.
			require.NoError(t, s.Set(ctx, "xp", "135"))
			v, _, err = s.Get(ctx, "xp")
			require.NoError(t, err)
			assert.Equal(t, "135", v)
		})
	}
}

func TestStore_MultiGetSkipsAbsentKeys(t *testing.T) {
	ctx := context.Background()

	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.MultiSet(ctx, map[string]string{
				"monthlyIncome": "850000",
				"dailyBudget":   "20000",
			}))

			got, err := s.MultiGet(ctx, []string{"monthlyIncome", "dailyBudget", "totalSpent", "xp"})
			require.NoError(t, err)
			assert.Equal(t, map[string]string{
				"monthlyIncome": "850000",
				"dailyBudget":   "20000",
			}, got)
		})
	}
}

func TestStore_MultiGetEmptyKeys(t *testing.T) {
	ctx := context.Background()

	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			got, err := s.MultiGet(ctx, nil)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chip.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.MultiSet(ctx, map[string]string{"totalSpent": "3000", "xp": "20"}))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	got, err := s2.MultiGet(ctx, []string{"totalSpent", "xp"})
	require.NoError(t, err)
	assert.Equal(t, "3000", got["totalSpent"])
	assert.Equal(t, "20", got["xp"])
}

func TestMemory_FailInjection(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "xp", "10"))

	m.FailWith("store offline")

	_, _, err := m.Get(ctx, "xp")
	assert.Error(t, err)
	assert.Error(t, m.MultiSet(ctx, map[string]string{"xp": "20"}))

	m.Fail(nil)

	v, ok, err := m.Get(ctx, "xp")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "10", v, "failed writes must not have landed")
}
