package combat

import (
	"math"

	"github.com/akashic-script/dasu-rules/internal/entities"
)

// CalculateBaseDamage computes the pre-resistance damage amount for a source
// combatant and optional item.
//
// The governing attribute resolves in precedence order: the modifiers'
// override (honored even when it is the skip sentinel), then the item's
// declared attribute, then pow. The resolved attribute's tick is added to the
// item's flat damage, the flat bonus is applied, and the sum is scaled by the
// multiplier.
//
// This is the best-effort entry point: it never errors. A nil source yields
// 0, malformed numeric input collapses to 0, and the result is always a
// non-negative integer. Call ValidateResolution first when failing fast
// matters.
func CalculateBaseDamage(source *entities.Combatant, item *entities.Item, mods *Modifiers) int {
	if source == nil {
		return 0
	}

	key := governingAttribute(item, mods)

	contribution := 0
	if !key.IsSkip() {
		contribution = source.TickFor(key)
	}

	itemDamage := 0
	if item != nil {
		itemDamage = item.DamageValue
	}

	flatBonus := 0
	multiplier := 1.0
	if mods != nil {
		flatBonus = mods.FlatBonus
		multiplier = mods.Multiplier
	}

	base := float64(itemDamage+contribution+flatBonus) * multiplier
	if math.IsNaN(base) || math.IsInf(base, 0) {
		return 0
	}

	result := int(math.Floor(base))
	if result < 0 {
		return 0
	}
	return result
}

// governingAttribute resolves which attribute key feeds the damage formula.
// An item that explicitly declares the skip sentinel skips; an item that
// declares nothing falls through to pow.
func governingAttribute(item *entities.Item, mods *Modifiers) entities.AttributeKey {
	if mods != nil && mods.AttributeOverride != nil {
		return *mods.AttributeOverride
	}
	if item != nil && item.GoverningAttribute != "" {
		return item.GoverningAttribute
	}
	return entities.AttributePow
}
