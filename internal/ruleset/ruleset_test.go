package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	dasuerr "github.com/akashic-script/dasu-rules/internal/errors"
	"github.com/akashic-script/dasu-rules/internal/resistance"
)

func TestLoadDefaults(t *testing.T) {
	registry, err := LoadDefaults()
	require.NoError(t, err)

	assert.Equal(t, []string{"frost", "pyre", "revenant", "seraph", "stoneguard"}, registry.Names())

	pyre, ok := registry.Get("pyre")
	require.True(t, ok)

	table := pyre.Table()
	assert.Equal(t, resistance.TierDrain, table.Lookup(damage.TypeFire))
	assert.Equal(t, resistance.TierWeak, table.Lookup(damage.TypeIce))
	assert.Equal(t, resistance.TierNormal, table.Lookup(damage.TypeDark), "unlisted types default to normal")
}

func TestParse(t *testing.T) {
	t.Run("clamps out-of-range tiers", func(t *testing.T) {
		registry, err := Parse([]byte(`
profiles:
  - name: overtuned
    resistances:
      fire: 9
      ice: -4
`))
		require.NoError(t, err)

		profile, ok := registry.Get("overtuned")
		require.True(t, ok)

		table := profile.Table()
		assert.Equal(t, resistance.TierDrain, table.Lookup(damage.TypeFire))
		assert.Equal(t, resistance.TierWeak, table.Lookup(damage.TypeIce))
	})

	t.Run("rejects unknown damage types", func(t *testing.T) {
		_, err := Parse([]byte(`
profiles:
  - name: broken
    resistances:
      plasma: 1
`))
		require.Error(t, err)
		assert.True(t, dasuerr.IsInvalidDamageType(err))
	})

	t.Run("rejects unnamed profiles", func(t *testing.T) {
		_, err := Parse([]byte(`
profiles:
  - resistances:
      fire: 1
`))
		require.Error(t, err)
		assert.Equal(t, dasuerr.CodeInvalidArgument, dasuerr.GetCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("profiles: ["))
		assert.Error(t, err)
	})

	t.Run("missing profile lookup", func(t *testing.T) {
		registry, err := Parse([]byte("profiles: []"))
		require.NoError(t, err)

		_, ok := registry.Get("nobody")
		assert.False(t, ok)
	})
}
