// Package resistance implements the five-tier resistance table that scales,
// zeroes, or inverts incoming damage per damage type.
package resistance

import (
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
)

// Tier is a target's discrete response level to a damage type.
// Stored values are always in [-1, 3].
type Tier int

const (
	TierWeak    Tier = -1
	TierNormal  Tier = 0
	TierResist  Tier = 1
	TierNullify Tier = 2
	TierDrain   Tier = 3
)

// IsValid reports whether t is one of the five defined tiers
func (t Tier) IsValid() bool {
	return t >= TierWeak && t <= TierDrain
}

// Clamp forces t into the stored range [-1, 3]
func (t Tier) Clamp() Tier {
	if t < TierWeak {
		return TierWeak
	}
	if t > TierDrain {
		return TierDrain
	}
	return t
}

func (t Tier) String() string {
	switch t {
	case TierWeak:
		return "weak"
	case TierNormal:
		return "normal"
	case TierResist:
		return "resist"
	case TierNullify:
		return "nullify"
	case TierDrain:
		return "drain"
	default:
		return "normal"
	}
}

// Table maps damage types to resistance tiers. A missing entry means normal.
type Table map[damage.Type]Tier

// Lookup returns the stored tier for dmgType, defaulting to normal when the
// entry is absent or holds an out-of-range value.
func (t Table) Lookup(dmgType damage.Type) Tier {
	tier, ok := t[dmgType]
	if !ok || !tier.IsValid() {
		return TierNormal
	}
	return tier
}

// Clone returns a copy of the table so callers can mutate without aliasing
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	copied := make(Table, len(t))
	for k, v := range t {
		copied[k] = v
	}
	return copied
}
