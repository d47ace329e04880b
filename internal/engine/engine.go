package engine

import (
	"fmt"
	"strings"
)

// Totals holds the running counters mutated by every logged expense.
type Totals struct {
	TotalSpent int64
	XP         int64
}

// Expense is the most recently logged entry. No history is kept; the
// session retains only this one for display.
type Expense struct {
	Amount      int64
	Description string
	Category    Category
	XPDelta     int64
}

// ValidationError rejects bad input synchronously. State is never touched
// when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ApplyExpense runs one expense through the rules and returns the updated
// totals, the retained expense record, and Chip's feedback line.
//
// The XP update is deliberately two sequential floored additions: the base
// delta is clamped to zero before the honesty bonus lands. Collapsing the
// two into one addition changes the observable result at xp near zero.
func ApplyExpense(r Rules, totals Totals, amount int64, description string, category Category) (Totals, Expense, string, error) {
	description = strings.TrimSpace(description)

	if amount <= 0 {
		return totals, Expense{}, "", &ValidationError{Field: "amount", Reason: "must be a positive amount"}
	}
	if description == "" {
		return totals, Expense{}, "", &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !category.Valid() {
		return totals, Expense{}, "", &ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", category)}
	}

	base := r.BaseXP[category]
	bonus := r.bonusFor(category)

	xpAfterBase := totals.XP + base
	if xpAfterBase < 0 {
		xpAfterBase = 0
	}
	newXP := xpAfterBase + bonus
	if newXP < 0 {
		newXP = 0
	}

	next := Totals{
		TotalSpent: totals.TotalSpent + amount,
		XP:         newXP,
	}
	entry := Expense{
		Amount:      amount,
		Description: description,
		Category:    category,
		XPDelta:     base + bonus,
	}

	return next, entry, r.Phrase(category), nil
}

// BudgetStatus describes how far the running spend has eaten into the
// daily budget.
type BudgetStatus struct {
	Remaining      int64
	PercentRaw     float64 // uncapped, shown numerically
	PercentClamped float64 // capped at 100 for bounded visual fills
}

// BudgetProgress computes budget consumption. A zero or negative budget
// yields 0%, never NaN or Inf.
func BudgetProgress(dailyBudget, totalSpent int64) BudgetStatus {
	var s BudgetStatus

	s.Remaining = dailyBudget - totalSpent
	if s.Remaining < 0 {
		s.Remaining = 0
	}

	if dailyBudget <= 0 {
		return s
	}

	s.PercentRaw = float64(totalSpent) / float64(dailyBudget) * 100
	s.PercentClamped = s.PercentRaw
	if s.PercentClamped > 100 {
		s.PercentClamped = 100
	}
	return s
}
