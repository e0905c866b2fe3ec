package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashic-script/dasu-rules/internal/entities"
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	"github.com/akashic-script/dasu-rules/internal/resistance"
)

func TestManager_Add(t *testing.T) {
	t.Run("adds simple effect and assigns an ID", func(t *testing.T) {
		manager := NewManager(nil)

		id, err := manager.Add(BuildWardEffect(damage.TypeFire, 1))
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		active := manager.Active(1)
		require.Len(t, active, 1)
		assert.Equal(t, "Ward: fire", active[0].Name)
	})

	t.Run("rejects effect without a name", func(t *testing.T) {
		manager := NewManager(nil)

		_, err := manager.Add(&ActiveEffect{Source: SourceAbility})
		assert.Error(t, err)
	})

	t.Run("rejects nil effect", func(t *testing.T) {
		manager := NewManager(nil)

		_, err := manager.Add(nil)
		assert.Error(t, err)
	})

	t.Run("replace discards the old instance", func(t *testing.T) {
		manager := NewManager(nil)

		first, err := manager.Add(BuildWardEffect(damage.TypeFire, 1))
		require.NoError(t, err)

		second, err := manager.Add(BuildWardEffect(damage.TypeFire, 2))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.Len(t, manager.Active(2), 1)
	})

	t.Run("stack folds into one instance", func(t *testing.T) {
		manager := NewManager(nil)

		first, err := manager.Add(BuildEmpowerEffect(2, 1))
		require.NoError(t, err)

		second, err := manager.Add(BuildEmpowerEffect(2, 3))
		require.NoError(t, err)

		assert.Equal(t, first, second)

		active := manager.Active(3)
		require.Len(t, active, 1)
		assert.Equal(t, 2, active[0].Stacks)
	})

	t.Run("take highest keeps the stronger bonus", func(t *testing.T) {
		manager := NewManager(nil)

		strong := NewBuilder("Battle Cry").
			WithStackingRule(StackingTakeHighest).
			AddDamageBonus(4).
			Build()
		weak := NewBuilder("Battle Cry").
			WithStackingRule(StackingTakeHighest).
			AddDamageBonus(2).
			Build()

		strongID, err := manager.Add(strong)
		require.NoError(t, err)

		keptID, err := manager.Add(weak)
		require.NoError(t, err)

		assert.Equal(t, strongID, keptID)
		assert.Equal(t, 4, manager.DamageBonus(1))
	})
}

func TestManager_RoundExpiry(t *testing.T) {
	manager := NewManager(nil)

	// Three-round ward applied on round 2: live on rounds 2-4, gone on 5.
	_, err := manager.Add(BuildWardEffect(damage.TypeIce, 2))
	require.NoError(t, err)

	assert.Len(t, manager.Active(2), 1)
	assert.Len(t, manager.Active(4), 1)
	assert.Len(t, manager.Active(5), 0)

	manager.ExpireRound(5)
	assert.Len(t, manager.Active(2), 0, "expired instance is dropped")
}

func TestManager_PermanentEffectsNeverExpire(t *testing.T) {
	manager := NewManager(nil)

	_, err := manager.Add(BuildEmpowerEffect(1, 1))
	require.NoError(t, err)

	assert.Len(t, manager.Active(999), 1)
}

func TestManager_RemoveBySource(t *testing.T) {
	manager := NewManager(nil)

	_, err := manager.Add(BuildWardEffect(damage.TypeFire, 1))
	require.NoError(t, err)
	_, err = manager.Add(BuildEmpowerEffect(2, 1))
	require.NoError(t, err)

	manager.RemoveBySource(SourceAbility, "ward")

	active := manager.Active(1)
	require.Len(t, active, 1)
	assert.Equal(t, "Empower", active[0].Name)
}

func TestManager_DamageBonus(t *testing.T) {
	manager := NewManager(nil)

	_, err := manager.Add(BuildEmpowerEffect(2, 1))
	require.NoError(t, err)
	_, err = manager.Add(BuildEmpowerEffect(2, 1))
	require.NoError(t, err)

	assert.Equal(t, 4, manager.DamageBonus(1), "two stacks of +2")
}

func TestManager_AttributeBonus(t *testing.T) {
	manager := NewManager(nil)

	effect := NewBuilder("Iron Stance").
		WithDuration(2).
		AppliedAt(1).
		AddAttributeBonus(entities.AttributeSta, 1).
		Build()

	_, err := manager.Add(effect)
	require.NoError(t, err)

	assert.Equal(t, 1, manager.AttributeBonus(entities.AttributeSta, 1))
	assert.Equal(t, 0, manager.AttributeBonus(entities.AttributePow, 1))
	assert.Equal(t, 0, manager.AttributeBonus(entities.AttributeSta, 4), "expired grants nothing")
}

func TestManager_ResistanceFor(t *testing.T) {
	base := resistance.Table{damage.TypeFire: resistance.TierNormal}

	t.Run("shift recomputes from the stored base", func(t *testing.T) {
		manager := NewManager(nil)

		_, err := manager.Add(BuildWardEffect(damage.TypeFire, 1))
		require.NoError(t, err)

		first := manager.ResistanceFor(base, damage.TypeFire, 1)
		second := manager.ResistanceFor(base, damage.TypeFire, 1)

		assert.Equal(t, resistance.TierResist, first)
		assert.Equal(t, first, second, "re-evaluation does not compound")
	})

	t.Run("latest applied shift wins", func(t *testing.T) {
		manager := NewManager(nil)

		_, err := manager.Add(BuildWardEffect(damage.TypeFire, 1))
		require.NoError(t, err)

		force := NewBuilder("Hellbrand").
			WithSource(SourceItem, "hellbrand").
			AddResistanceShift(damage.TypeFire, "weak").
			Build()
		_, err = manager.Add(force)
		require.NoError(t, err)

		assert.Equal(t, resistance.TierWeak, manager.ResistanceFor(base, damage.TypeFire, 1))
	})

	t.Run("expired shifts are ignored", func(t *testing.T) {
		manager := NewManager(nil)

		_, err := manager.Add(BuildWardEffect(damage.TypeFire, 1))
		require.NoError(t, err)

		assert.Equal(t, resistance.TierNormal, manager.ResistanceFor(base, damage.TypeFire, 10))
	})

	t.Run("untouched types keep the base tier", func(t *testing.T) {
		manager := NewManager(nil)
		assert.Equal(t, resistance.TierNormal, manager.ResistanceFor(base, damage.TypeIce, 1))
	})
}

func TestManager_MutatedTable(t *testing.T) {
	manager := NewManager(nil)
	base := resistance.Table{
		damage.TypeFire: resistance.TierResist,
		damage.TypeIce:  resistance.TierWeak,
	}

	_, err := manager.Add(BuildExposeEffect(damage.TypeFire, 1))
	require.NoError(t, err)

	mutated := manager.MutatedTable(base, 1)

	assert.Equal(t, resistance.TierNormal, mutated.Lookup(damage.TypeFire))
	assert.Equal(t, resistance.TierWeak, mutated.Lookup(damage.TypeIce))
	assert.Equal(t, resistance.TierResist, base.Lookup(damage.TypeFire), "base table untouched")
}
