package entities

import (
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
)

// Item describes a weapon or ability used as a damage source
type Item struct {
	Key  string `json:"key"`
	Name string `json:"name"`

	// DamageValue is the item's declared flat damage
	DamageValue int `json:"damage_value"`

	// GoverningAttribute is the attribute whose tick is added to the item's
	// damage; the skip sentinel excludes attribute contribution entirely
	GoverningAttribute AttributeKey `json:"governing_attribute"`

	// DamageType is the damage-type key the item deals
	DamageType damage.Type `json:"damage_type"`

	// DiceCount and DiceSize describe rolled damage for items whose damage
	// derives from a dice pool evaluated once per resolution. Zero means the
	// item deals flat damage only.
	DiceCount int `json:"dice_count"`
	DiceSize  int `json:"dice_size"`
}

// HasRolledDamage reports whether the item's damage includes a dice pool
func (i *Item) HasRolledDamage() bool {
	return i != nil && i.DiceCount > 0 && i.DiceSize > 0
}
