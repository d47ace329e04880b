package engine

import "fmt"

// Level describes the band the current XP falls into, plus progress
// toward the next one.
type Level struct {
	Name     string
	Index    int64   // 1-based
	XPInto   int64   // XP accumulated inside this level
	XPToNext int64   // XP still needed to leave it
	Progress float64 // XPInto / level span, clamped to [0,1]
}

// LevelFor maps an XP score to exactly one level. It is total over
// xp >= 0 for either policy: the cycle policy is unbounded by
// construction, and the tier policy synthesizes numeric overflow levels
// past the end of the table.
func (r Rules) LevelFor(xp int64) Level {
	if xp < 0 {
		xp = 0
	}

	if r.Policy == PolicyTiers && len(r.Tiers) > 0 {
		if lvl, ok := r.tierFor(xp); ok {
			return lvl
		}
		// Past the table: fall through to the numeric ladder so
		// leveling never dead-ends.
	}

	return r.cycleLevel(xp)
}

func (r Rules) cycleLevel(xp int64) Level {
	per := r.XPPerLevel
	if per <= 0 {
		per = 1
	}

	index := xp/per + 1
	into := mod(xp, per)

	return Level{
		Name:     fmt.Sprintf("Level %d", index),
		Index:    index,
		XPInto:   into,
		XPToNext: per - into,
		Progress: clamp01(float64(into) / float64(per)),
	}
}

func (r Rules) tierFor(xp int64) (Level, bool) {
	for i, t := range r.Tiers {
		if xp < t.Min || xp > t.Max {
			continue
		}

		span := t.Max - t.Min
		if span < 1 {
			span = 1
		}
		into := xp - t.Min

		toNext := int64(0)
		if i < len(r.Tiers)-1 {
			toNext = r.Tiers[i+1].Min - xp
		} else {
			toNext = t.Max + 1 - xp
		}

		return Level{
			Name:     t.Name,
			Index:    int64(i) + 1,
			XPInto:   into,
			XPToNext: toNext,
			Progress: clamp01(float64(into) / float64(span)),
		}, true
	}
	return Level{}, false
}

// mod is the always-non-negative remainder. xp is already guaranteed
// non-negative, but the arithmetic stays safe if that ever changes.
func mod(x, m int64) int64 {
	return ((x % m) + m) % m
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
