// Package persist maps chip's session state onto the store's string key
// space. The adapter owns the key names and the JSON-number encoding and
// holds no state of its own.
package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"chip/internal/engine"
	"chip/internal/store"
)

// Persisted key names. Values are JSON-encoded numbers; an absent key is
// equivalent to 0.
const (
	KeyMonthlyIncome = "monthlyIncome"
	KeyDailyBudget   = "dailyBudget"
	KeyTotalSpent    = "totalSpent"
	KeyXP            = "xp"
)

var allKeys = []string{KeyMonthlyIncome, KeyDailyBudget, KeyTotalSpent, KeyXP}

// Config is the user's onboarding configuration. IsSet reports whether
// onboarding has produced valid values.
type Config struct {
	MonthlyIncome int64
	DailyBudget   int64
}

// IsSet reports whether the configuration is usable: both figures must be
// strictly positive.
func (c Config) IsSet() bool {
	return c.MonthlyIncome > 0 && c.DailyBudget > 0
}

// Adapter translates between domain state and the store.
type Adapter struct {
	store store.Store
}

// New returns an adapter over the given store.
func New(s store.Store) *Adapter {
	return &Adapter{store: s}
}

// Load reads the full key set in one batched call. Missing, zero, or
// unparsable values are treated as unset, not as errors. A store failure
// returns zero state along with the error; the caller logs it and
// proceeds as if this were a first run.
func (a *Adapter) Load(ctx context.Context) (Config, engine.Totals, error) {
	var cfg Config
	var totals engine.Totals

	values, err := a.store.MultiGet(ctx, allKeys)
	if err != nil {
		return cfg, totals, fmt.Errorf("loading state: %w", err)
	}

	cfg.MonthlyIncome = decodeNumber(values[KeyMonthlyIncome])
	cfg.DailyBudget = decodeNumber(values[KeyDailyBudget])
	totals.TotalSpent = decodeNumber(values[KeyTotalSpent])
	totals.XP = decodeNumber(values[KeyXP])

	if totals.TotalSpent < 0 {
		totals.TotalSpent = 0
	}
	if totals.XP < 0 {
		totals.XP = 0
	}

	return cfg, totals, nil
}

// Save writes the full key set back in one batched call. Every save is a
// complete snapshot, never an incremental delta, so consecutive saves
// carry no ordering dependency.
func (a *Adapter) Save(ctx context.Context, cfg Config, totals engine.Totals) error {
	pairs := map[string]string{
		KeyMonthlyIncome: encodeNumber(cfg.MonthlyIncome),
		KeyDailyBudget:   encodeNumber(cfg.DailyBudget),
		KeyTotalSpent:    encodeNumber(totals.TotalSpent),
		KeyXP:            encodeNumber(totals.XP),
	}

	if err := a.store.MultiSet(ctx, pairs); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

func encodeNumber(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

// decodeNumber parses a JSON number, mapping absence or garbage to 0.
func decodeNumber(s string) int64 {
	if s == "" {
		return 0
	}
	var n int64
	if err := json.Unmarshal([]byte(s), &n); err != nil {
		return 0
	}
	return n
}
