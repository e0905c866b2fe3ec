// Package combat implements the damage-resolution pipeline: base damage from
// attribute ticks and item damage, critical hits, and per-target resistance.
package combat

import (
	"github.com/akashic-script/dasu-rules/internal/entities"
)

// Modifiers adjusts a single damage resolution. A fresh value is built per
// call from caller input (a dialog's live form state, an effect summary);
// the engine never stores one.
type Modifiers struct {
	// FlatBonus is added to the base damage before the multiplier
	FlatBonus int

	// Multiplier scales the base damage. Build Modifiers with NewModifiers
	// to get the default of 1; an explicit 0 zeroes the damage.
	Multiplier float64

	// IsCritical selects the crit-aware row of the resistance table
	IsCritical bool

	// IgnoreResistance resolves every target on the normal row
	IgnoreResistance bool

	// AttributeOverride replaces the item's governing attribute when non-nil.
	// Pointing it at the skip sentinel excludes attribute contribution.
	AttributeOverride *entities.AttributeKey
}

// NewModifiers returns modifiers with neutral defaults
func NewModifiers() *Modifiers {
	return &Modifiers{Multiplier: 1}
}

// WithFlatBonus sets the flat bonus (builder pattern)
func (m *Modifiers) WithFlatBonus(bonus int) *Modifiers {
	m.FlatBonus = bonus
	return m
}

// WithMultiplier sets the multiplier
func (m *Modifiers) WithMultiplier(mult float64) *Modifiers {
	m.Multiplier = mult
	return m
}

// WithCritical marks the resolution as a critical hit
func (m *Modifiers) WithCritical() *Modifiers {
	m.IsCritical = true
	return m
}

// WithAttributeOverride forces the governing attribute. Pass the skip
// sentinel to exclude attribute contribution entirely.
func (m *Modifiers) WithAttributeOverride(key entities.AttributeKey) *Modifiers {
	m.AttributeOverride = &key
	return m
}
