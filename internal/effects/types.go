// Package effects tracks stackable, round-scoped status effects. Durations
// are measured against a combat-round counter the caller supplies on every
// query; the package owns no clock and no round state.
package effects

import (
	"github.com/akashic-script/dasu-rules/internal/entities"
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	"github.com/akashic-script/dasu-rules/internal/resistance"
)

// Source represents where an effect comes from
type Source string

const (
	SourceAbility Source = "ability"
	SourceItem    Source = "item"
	SourceTag     Source = "tag"
	SourceOther   Source = "other"
)

// StackingRule defines how effects with the same name and source combine
type StackingRule string

const (
	// StackingReplace discards the old instance
	StackingReplace StackingRule = "replace"

	// StackingStack raises the existing instance's stack count
	StackingStack StackingRule = "stack"

	// StackingTakeHighest keeps whichever instance grants the larger damage bonus
	StackingTakeHighest StackingRule = "take_highest"
)

// ModifierTarget represents what an effect modifies
type ModifierTarget string

const (
	TargetDamage     ModifierTarget = "damage"
	TargetResistance ModifierTarget = "resistance"
	TargetAttribute  ModifierTarget = "attribute"
)

// Modifier represents a single modification an effect makes
type Modifier struct {
	Target ModifierTarget

	// Amount is the flat bonus for damage and attribute targets
	Amount int

	// DamageType selects which resistance entry a resistance shift touches
	DamageType damage.Type

	// Method is the parsed tier transform for resistance targets
	Method resistance.Method

	// Attribute selects which attribute an attribute bonus touches
	Attribute entities.AttributeKey
}

// ActiveEffect represents one applied effect instance
type ActiveEffect struct {
	ID          string
	Source      Source
	SourceID    string
	Name        string
	Description string

	// Stacks counts applications folded into this instance; always >= 1
	Stacks int

	// DurationRounds is how many rounds the effect lasts; 0 means permanent
	DurationRounds int

	// AppliedAtRound is the combat round the effect was applied on
	AppliedAtRound int

	StackingRule StackingRule
	Modifiers    []Modifier
}

// IsExpired checks the effect against the caller's round counter
func (e *ActiveEffect) IsExpired(currentRound int) bool {
	if e.DurationRounds <= 0 {
		return false
	}
	return currentRound >= e.AppliedAtRound+e.DurationRounds
}

// damageBonus sums the effect's flat damage modifiers across its stacks
func (e *ActiveEffect) damageBonus() int {
	total := 0
	for _, mod := range e.Modifiers {
		if mod.Target == TargetDamage {
			total += mod.Amount
		}
	}
	return total * e.Stacks
}
