package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_Damage(t *testing.T) {
	t.Run("consumes temporary points first", func(t *testing.T) {
		pool := Pool{Current: 20, Max: 20, Temporary: 5}

		dealt := pool.Damage(8)

		assert.Equal(t, 8, dealt)
		assert.Equal(t, 0, pool.Temporary)
		assert.Equal(t, 17, pool.Current)
	})

	t.Run("fully absorbed by temporary points", func(t *testing.T) {
		pool := Pool{Current: 20, Max: 20, Temporary: 10}

		dealt := pool.Damage(6)

		assert.Equal(t, 6, dealt)
		assert.Equal(t, 4, pool.Temporary)
		assert.Equal(t, 20, pool.Current)
	})

	t.Run("never goes below zero", func(t *testing.T) {
		pool := Pool{Current: 3, Max: 20}

		pool.Damage(50)

		assert.Equal(t, 0, pool.Current)
	})

	t.Run("ignores non-positive amounts", func(t *testing.T) {
		pool := Pool{Current: 10, Max: 20}

		assert.Equal(t, 0, pool.Damage(0))
		assert.Equal(t, 0, pool.Damage(-4))
		assert.Equal(t, 10, pool.Current)
	})
}

func TestPool_Heal(t *testing.T) {
	t.Run("caps at max", func(t *testing.T) {
		pool := Pool{Current: 18, Max: 20}

		healed := pool.Heal(6)

		assert.Equal(t, 2, healed)
		assert.Equal(t, 20, pool.Current)
	})

	t.Run("no effect at full", func(t *testing.T) {
		pool := Pool{Current: 20, Max: 20}

		assert.Equal(t, 0, pool.Heal(5))
	})
}

func TestPool_AddTemporary(t *testing.T) {
	pool := Pool{Current: 10, Max: 20, Temporary: 4}

	pool.AddTemporary(2)
	assert.Equal(t, 4, pool.Temporary, "lower grant doesn't stack")

	pool.AddTemporary(7)
	assert.Equal(t, 7, pool.Temporary, "higher grant wins")
}

func TestDeriveStats(t *testing.T) {
	attrs := AttributeSet{
		Sta:  Attribute{Tick: 3},
		Will: Attribute{Tick: 2},
	}

	stats := DeriveStats(attrs)

	assert.Equal(t, 35, stats.HPMax)
	assert.Equal(t, 20, stats.WPMax)

	t.Run("recomputed from live attributes", func(t *testing.T) {
		attrs.Sta.Tick = 5
		assert.Equal(t, 45, DeriveStats(attrs).HPMax)
	})
}
