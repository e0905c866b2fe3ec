package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashic-script/dasu-rules/internal/entities"
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	dasuerr "github.com/akashic-script/dasu-rules/internal/errors"
)

func TestValidateResolution(t *testing.T) {
	source := attacker(3)
	target := &entities.Combatant{
		ID:         "target-1",
		Attributes: entities.AttributeSet{Sta: entities.Attribute{Tick: 2}},
	}

	t.Run("valid input passes", func(t *testing.T) {
		err := ValidateResolution(source, []*entities.Combatant{target}, damage.TypeFire)
		assert.NoError(t, err)
	})

	t.Run("missing source", func(t *testing.T) {
		err := ValidateResolution(nil, []*entities.Combatant{target}, damage.TypeFire)
		require.Error(t, err)
		assert.True(t, dasuerr.IsMissingActor(err))
	})

	t.Run("source without attribute data", func(t *testing.T) {
		err := ValidateResolution(&entities.Combatant{ID: "empty"}, []*entities.Combatant{target}, damage.TypeFire)
		require.Error(t, err)
		assert.True(t, dasuerr.IsMissingAttributeData(err))
		assert.Equal(t, "empty", dasuerr.GetMeta(err)["combatant_id"])
	})

	t.Run("invalid damage type", func(t *testing.T) {
		err := ValidateResolution(source, []*entities.Combatant{target}, damage.Type("plasma"))
		require.Error(t, err)
		assert.True(t, dasuerr.IsInvalidDamageType(err))
	})

	t.Run("no targets", func(t *testing.T) {
		err := ValidateResolution(source, nil, damage.TypeFire)
		require.Error(t, err)
		assert.True(t, dasuerr.IsMissingTarget(err))
	})

	t.Run("nil target is an error in strict mode", func(t *testing.T) {
		err := ValidateResolution(source, []*entities.Combatant{target, nil}, damage.TypeFire)
		require.Error(t, err)
		assert.True(t, dasuerr.IsMissingTarget(err))
		assert.Equal(t, 1, dasuerr.GetMeta(err)["target_index"])
	})
}
