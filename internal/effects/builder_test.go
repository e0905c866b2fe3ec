package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashic-script/dasu-rules/internal/entities"
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	"github.com/akashic-script/dasu-rules/internal/resistance"
)

func TestBuilder(t *testing.T) {
	effect := NewBuilder("Stormcall").
		WithSource(SourceAbility, "stormcall").
		WithDescription("Electric damage surges around the bearer.").
		WithDuration(2).
		AppliedAt(3).
		WithStackingRule(StackingStack).
		AddDamageBonus(3).
		AddResistanceShift(damage.TypeElectric, "drain").
		AddAttributeBonus(entities.AttributeWill, 1).
		Build()

	assert.Equal(t, "Stormcall", effect.Name)
	assert.Equal(t, SourceAbility, effect.Source)
	assert.Equal(t, "stormcall", effect.SourceID)
	assert.Equal(t, 2, effect.DurationRounds)
	assert.Equal(t, 3, effect.AppliedAtRound)
	assert.Equal(t, StackingStack, effect.StackingRule)
	assert.Equal(t, 1, effect.Stacks)
	require.Len(t, effect.Modifiers, 3)

	shift := effect.Modifiers[1]
	assert.Equal(t, TargetResistance, shift.Target)
	assert.Equal(t, damage.TypeElectric, shift.DamageType)
	assert.Equal(t, resistance.MethodForceDrain, shift.Method.Kind)
}

func TestBuilder_UnrecognizedMethodIsNoOp(t *testing.T) {
	effect := NewBuilder("Glitch").
		AddResistanceShift(damage.TypeDark, "wibble").
		Build()

	shift := effect.Modifiers[0]
	assert.Equal(t, resistance.MethodNone, shift.Method.Kind)
	assert.Equal(t, resistance.TierResist, shift.Method.Apply(resistance.TierResist))
}

func TestBuildWardEffect(t *testing.T) {
	effect := BuildWardEffect(damage.TypeFire, 4)

	assert.Equal(t, "Ward: fire", effect.Name)
	assert.Equal(t, 3, effect.DurationRounds)
	assert.Equal(t, 4, effect.AppliedAtRound)
	require.Len(t, effect.Modifiers, 1)
	assert.Equal(t, resistance.MethodUpgrade, effect.Modifiers[0].Method.Kind)
}

func TestBuildEmpowerEffect(t *testing.T) {
	effect := BuildEmpowerEffect(2, 1)

	assert.Equal(t, StackingStack, effect.StackingRule)
	assert.Equal(t, 0, effect.DurationRounds, "lasts until removed")
	assert.Equal(t, 2, effect.damageBonus())
}
