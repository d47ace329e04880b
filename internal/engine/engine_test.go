package engine

import (
	"errors"
	"math"
	"testing"
)

func TestXPDelta_PerCategory(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		category Category
		want     int64
	}{
		{CategoryNecessary, 20},
		{CategoryWant, -10}, // -20 base + 10 honesty bonus
		{CategoryInvestment, 10},
	}

	for _, tt := range tests {
		if got := r.XPDelta(tt.category); got != tt.want {
			t.Errorf("XPDelta(%s) = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestXPDelta_BonusOnlyForWant(t *testing.T) {
	r := DefaultRules()
	r.HonestyBonus = 1000

	if got := r.XPDelta(CategoryNecessary); got != 20 {
		t.Errorf("necessary delta = %d, want 20 (bonus must not apply)", got)
	}
	if got := r.XPDelta(CategoryInvestment); got != 10 {
		t.Errorf("investment delta = %d, want 10 (bonus must not apply)", got)
	}
	if got := r.XPDelta(CategoryWant); got != 980 {
		t.Errorf("want delta = %d, want 980", got)
	}
}

func TestApplyExpense_Snack(t *testing.T) {
	r := DefaultRules()
	r.BaseXP[CategoryWant] = -30 // base -30 + bonus +10 => delta -20

	totals := Totals{TotalSpent: 0, XP: 50}
	next, entry, feedback, err := ApplyExpense(r, totals, 3000, "snack", CategoryWant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.XPDelta != -20 {
		t.Errorf("XPDelta = %d, want -20", entry.XPDelta)
	}
	if next.TotalSpent != 3000 {
		t.Errorf("TotalSpent = %d, want 3000", next.TotalSpent)
	}
	if next.XP != 30 {
		t.Errorf("XP = %d, want 30", next.XP)
	}
	if feedback != r.Phrase(CategoryWant) {
		t.Errorf("feedback = %q, want the want-category phrase", feedback)
	}
}

func TestApplyExpense_TwoStageClampAtZero(t *testing.T) {
	// From xp=5 a want expense has base -20 and bonus +10.
	// Two-stage: max(5-20, 0) = 0, then 0+10 = 10.
	// A single collapsed addition would give max(5-10, 0) = 0.
	r := DefaultRules()

	next, _, _, err := ApplyExpense(r, Totals{XP: 5}, 100, "candy", CategoryWant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.XP != 10 {
		t.Errorf("XP = %d, want 10 (base clamp must run before bonus)", next.XP)
	}
}

func TestApplyExpense_XPNeverNegative(t *testing.T) {
	r := DefaultRules()
	r.HonestyBonus = 0 // no bonus saturation masking the floor

	totals := Totals{XP: 30}
	for i := 0; i < 10; i++ {
		var err error
		totals, _, _, err = ApplyExpense(r, totals, 50, "impulse buy", CategoryWant)
		if err != nil {
			t.Fatalf("entry %d: unexpected error: %v", i, err)
		}
		if totals.XP < 0 {
			t.Fatalf("entry %d: XP = %d, must never go negative", i, totals.XP)
		}
	}
	if totals.XP != 0 {
		t.Errorf("final XP = %d, want 0", totals.XP)
	}
}

func TestApplyExpense_TotalSpentIsExactSum(t *testing.T) {
	r := DefaultRules()
	amounts := []int64{1, 250, 3000, 19, 999_999}

	var totals Totals
	var sum int64
	for _, a := range amounts {
		var err error
		totals, _, _, err = ApplyExpense(r, totals, a, "item", CategoryNecessary)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum += a
	}

	if totals.TotalSpent != sum {
		t.Errorf("TotalSpent = %d, want %d", totals.TotalSpent, sum)
	}
}

func TestApplyExpense_Validation(t *testing.T) {
	r := DefaultRules()
	start := Totals{TotalSpent: 100, XP: 40}

	tests := []struct {
		name        string
		amount      int64
		description string
		category    Category
	}{
		{"zero amount", 0, "coffee", CategoryWant},
		{"negative amount", -5, "coffee", CategoryWant},
		{"empty description", 100, "", CategoryWant},
		{"whitespace description", 100, "   \t", CategoryWant},
		{"unknown category", 100, "coffee", Category("luxury")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, _, err := ApplyExpense(r, start, tt.amount, tt.description, tt.category)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if next != start {
				t.Errorf("totals mutated on rejected input: %+v", next)
			}
		})
	}
}

func TestBudgetProgress(t *testing.T) {
	tests := []struct {
		name          string
		budget, spent int64
		remaining     int64
		raw, clamped  float64
	}{
		{"untouched", 20000, 0, 20000, 0, 0},
		{"half", 20000, 10000, 10000, 50, 50},
		{"exact", 20000, 20000, 0, 100, 100},
		{"overspent", 20000, 30000, 0, 150, 100},
		{"zero budget", 0, 5000, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BudgetProgress(tt.budget, tt.spent)
			if s.Remaining != tt.remaining {
				t.Errorf("Remaining = %d, want %d", s.Remaining, tt.remaining)
			}
			if s.PercentRaw != tt.raw {
				t.Errorf("PercentRaw = %v, want %v", s.PercentRaw, tt.raw)
			}
			if s.PercentClamped != tt.clamped {
				t.Errorf("PercentClamped = %v, want %v", s.PercentClamped, tt.clamped)
			}
		})
	}
}

func TestBudgetProgress_ZeroBudgetIsFinite(t *testing.T) {
	s := BudgetProgress(0, 12345)
	if math.IsNaN(s.PercentRaw) || math.IsInf(s.PercentRaw, 0) {
		t.Fatalf("PercentRaw = %v, want finite 0", s.PercentRaw)
	}
}
