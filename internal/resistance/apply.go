package resistance

import (
	"math"

	"github.com/akashic-script/dasu-rules/internal/entities/damage"
)

// Result is the outcome of pushing a damage amount through a resistance tier.
// Damage is always a non-negative integer; for the drain tier it is the amount
// the target heals instead of loses.
type Result struct {
	// Damage is the final floored amount
	Damage int

	// IsHealing is true only for the drain tier
	IsHealing bool

	// Tier is the tier that was applied (after the normal fallback)
	Tier Tier

	// Multiplier is the magnitude that was applied to the base amount
	Multiplier float64
}

// TierName returns the applied tier's name
func (r Result) TierName() string {
	return r.Tier.String()
}

// Multiplier returns the damage multiplier magnitude for a tier. Critical hits
// double the weak/normal/resist multipliers and the drain magnitude; nullify
// is always 0. Undefined tiers fall back to the normal row.
func Multiplier(tier Tier, critical bool) float64 {
	switch tier {
	case TierWeak:
		if critical {
			return 4
		}
		return 2
	case TierResist:
		if critical {
			return 1
		}
		return 0.5
	case TierNullify:
		return 0
	case TierDrain:
		if critical {
			return 2
		}
		return 1
	default:
		if critical {
			return 2
		}
		return 1
	}
}

// Apply pushes baseDamage through the target's resistance tier for dmgType.
//
// The critical flag selects the crit-aware row of the multiplier table; this
// lookup is the only place the critical multiplier is applied, so callers must
// not pre-double baseDamage themselves.
func Apply(baseDamage int, table Table, dmgType damage.Type, critical bool) Result {
	if baseDamage < 0 {
		baseDamage = 0
	}

	tier := table.Lookup(dmgType)
	mult := Multiplier(tier, critical)

	scaled := float64(baseDamage) * mult
	amount := int(math.Floor(math.Abs(scaled)))
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) || amount < 0 {
		amount = 0
	}

	return Result{
		Damage:     amount,
		IsHealing:  tier == TierDrain,
		Tier:       tier,
		Multiplier: mult,
	}
}
