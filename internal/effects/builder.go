package effects

import (
	"github.com/akashic-script/dasu-rules/internal/entities"
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	"github.com/akashic-script/dasu-rules/internal/resistance"
)

// Builder helps create active effects
type Builder struct {
	effect *ActiveEffect
}

// NewBuilder creates a new effect builder
func NewBuilder(name string) *Builder {
	return &Builder{
		effect: &ActiveEffect{
			Name:         name,
			Stacks:       1,
			StackingRule: StackingReplace,
			Modifiers:    []Modifier{},
		},
	}
}

// WithSource sets the effect source
func (b *Builder) WithSource(source Source, sourceID string) *Builder {
	b.effect.Source = source
	b.effect.SourceID = sourceID
	return b
}

// WithDescription adds a description
func (b *Builder) WithDescription(desc string) *Builder {
	b.effect.Description = desc
	return b
}

// WithDuration sets the duration in combat rounds; 0 means permanent
func (b *Builder) WithDuration(rounds int) *Builder {
	b.effect.DurationRounds = rounds
	return b
}

// AppliedAt records the round the effect lands on
func (b *Builder) AppliedAt(round int) *Builder {
	b.effect.AppliedAtRound = round
	return b
}

// WithStackingRule sets how this effect stacks
func (b *Builder) WithStackingRule(rule StackingRule) *Builder {
	b.effect.StackingRule = rule
	return b
}

// AddDamageBonus adds a flat damage modifier
func (b *Builder) AddDamageBonus(amount int) *Builder {
	b.effect.Modifiers = append(b.effect.Modifiers, Modifier{
		Target: TargetDamage,
		Amount: amount,
	})
	return b
}

// AddResistanceShift adds a tier shift for one damage type. The method
// string is parsed here, at the boundary; unrecognized strings become a
// no-op shift.
func (b *Builder) AddResistanceShift(dmgType damage.Type, method string) *Builder {
	b.effect.Modifiers = append(b.effect.Modifiers, Modifier{
		Target:     TargetResistance,
		DamageType: dmgType,
		Method:     resistance.ParseMethod(method),
	})
	return b
}

// AddAttributeBonus adds a flat bonus to one attribute
func (b *Builder) AddAttributeBonus(key entities.AttributeKey, amount int) *Builder {
	b.effect.Modifiers = append(b.effect.Modifiers, Modifier{
		Target:    TargetAttribute,
		Amount:    amount,
		Attribute: key,
	})
	return b
}

// Build returns the constructed effect
func (b *Builder) Build() *ActiveEffect {
	return b.effect
}

// Common effect builders

// BuildWardEffect raises a target's resistance to one damage type by one
// tier for three rounds.
func BuildWardEffect(dmgType damage.Type, round int) *ActiveEffect {
	return NewBuilder("Ward: " + dmgType.String()).
		WithSource(SourceAbility, "ward").
		WithDescription("A protective ward shifts the bearer's resistance one tier up.").
		WithDuration(3).
		AppliedAt(round).
		AddResistanceShift(dmgType, "upgrade").
		Build()
}

// BuildExposeEffect lowers a target's resistance to one damage type by one
// tier for three rounds.
func BuildExposeEffect(dmgType damage.Type, round int) *ActiveEffect {
	return NewBuilder("Expose: " + dmgType.String()).
		WithSource(SourceAbility, "expose").
		WithDescription("The target's guard is stripped, shifting its resistance one tier down.").
		WithDuration(3).
		AppliedAt(round).
		AddResistanceShift(dmgType, "downgrade").
		Build()
}

// BuildEmpowerEffect grants a stacking flat damage bonus until removed
func BuildEmpowerEffect(bonus, round int) *ActiveEffect {
	return NewBuilder("Empower").
		WithSource(SourceAbility, "empower").
		WithDescription("Each application adds a flat bonus to outgoing damage.").
		WithStackingRule(StackingStack).
		AppliedAt(round).
		AddDamageBonus(bonus).
		Build()
}
