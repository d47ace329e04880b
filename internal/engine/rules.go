// Package engine implements the budget and leveling rules for chip.
// Everything in here is pure computation: callers pass state in and get
// new state out, which keeps the rules independently testable.
package engine

// Category classifies a logged expense.
type Category string

const (
	CategoryNecessary  Category = "necessary"
	CategoryWant       Category = "want"
	CategoryInvestment Category = "investment"
)

// Categories lists all valid categories in display order.
var Categories = []Category{CategoryNecessary, CategoryWant, CategoryInvestment}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryNecessary, CategoryWant, CategoryInvestment:
		return true
	}
	return false
}

// LevelPolicy selects how XP maps to levels.
type LevelPolicy string

const (
	// PolicyCycle is the unbounded modulo progression: level N covers
	// [(N-1)*perLevel, N*perLevel).
	PolicyCycle LevelPolicy = "cycle"
	// PolicyTiers walks a named tier table and synthesizes numeric
	// overflow levels once the table is exhausted.
	PolicyTiers LevelPolicy = "tiers"
)

// Tier is one named XP band with an inclusive [Min, Max] range.
type Tier struct {
	Name string
	Min  int64
	Max  int64
}

// Rules holds every tunable of the engine. Shifting reward constants or
// tier boundaries is a data change here, never a code branch elsewhere.
type Rules struct {
	BaseXP       map[Category]int64
	HonestyBonus int64 // granted only when logging a want-category expense
	XPPerLevel   int64
	Policy       LevelPolicy
	Tiers        []Tier
	Phrases      map[Category]string
}

// DefaultRules returns the stock rule set: disciplined categories earn XP,
// indulgent ones cost it, and honestly logging an indulgence claws a
// little back.
func DefaultRules() Rules {
	return Rules{
		BaseXP: map[Category]int64{
			CategoryNecessary:  20,
			CategoryWant:       -20,
			CategoryInvestment: 10,
		},
		HonestyBonus: 10,
		XPPerLevel:   100,
		Policy:       PolicyCycle,
		Tiers: []Tier{
			{Name: "Iron", Min: 0, Max: 100},
			{Name: "Bronze", Min: 101, Max: 300},
			{Name: "Silver", Min: 301, Max: 600},
		},
		Phrases: map[Category]string{
			CategoryNecessary:  "Nice one! That's money well spent.",
			CategoryWant:       "Really? Another treat? Your wallet is crying!",
			CategoryInvestment: "Good move! Thinking ahead counts too.",
		},
	}
}

// XPDelta returns the signed XP change for logging one expense of the
// given category, honesty bonus included. The bonus is gated to the want
// category and must never leak into any other.
func (r Rules) XPDelta(c Category) int64 {
	return r.BaseXP[c] + r.bonusFor(c)
}

func (r Rules) bonusFor(c Category) int64 {
	if c == CategoryWant {
		return r.HonestyBonus
	}
	return 0
}

// Phrase returns the feedback line Chip says for a category.
func (r Rules) Phrase(c Category) string {
	return r.Phrases[c]
}
