package effects

import (
	"sync"

	"github.com/akashic-script/dasu-rules/internal/entities"
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	dasuerr "github.com/akashic-script/dasu-rules/internal/errors"
	"github.com/akashic-script/dasu-rules/internal/resistance"
	"github.com/akashic-script/dasu-rules/internal/uuid"
)

// Manager manages the active effects on a single combatant
type Manager struct {
	mu            sync.RWMutex
	effects       map[string]*ActiveEffect
	order         map[string]int // application sequence, for deterministic wins
	nextSeq       int
	uuidGenerator uuid.Generator
}

// NewManager creates a new effect manager. A nil generator falls back to
// the real UUID implementation.
func NewManager(gen uuid.Generator) *Manager {
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	return &Manager{
		effects:       make(map[string]*ActiveEffect),
		order:         make(map[string]int),
		uuidGenerator: gen,
	}
}

// Add applies an effect instance, honoring its stacking rule against any
// existing instance with the same name and source. It returns the ID of the
// instance that ends up active.
func (m *Manager) Add(effect *ActiveEffect) (string, error) {
	if effect == nil {
		return "", dasuerr.InvalidArgument("effect cannot be nil")
	}
	if effect.Name == "" {
		return "", dasuerr.InvalidArgument("effect must have a name")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if effect.Stacks < 1 {
		effect.Stacks = 1
	}

	for id, existing := range m.effects {
		if existing.Name != effect.Name || existing.Source != effect.Source {
			continue
		}
		switch effect.StackingRule {
		case StackingStack:
			existing.Stacks += effect.Stacks
			existing.AppliedAtRound = effect.AppliedAtRound
			return existing.ID, nil
		case StackingTakeHighest:
			if existing.damageBonus() >= effect.damageBonus() {
				return existing.ID, nil
			}
			delete(m.effects, id)
			delete(m.order, id)
		case StackingReplace:
			delete(m.effects, id)
			delete(m.order, id)
		}
	}

	if effect.ID == "" {
		effect.ID = m.uuidGenerator.New()
	}

	m.effects[effect.ID] = effect
	m.order[effect.ID] = m.nextSeq
	m.nextSeq++

	return effect.ID, nil
}

// Remove removes an effect instance by ID
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.effects, id)
	delete(m.order, id)
}

// RemoveBySource removes all effects from a specific source
func (m *Manager) RemoveBySource(source Source, sourceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, effect := range m.effects {
		if effect.Source == source && effect.SourceID == sourceID {
			delete(m.effects, id)
			delete(m.order, id)
		}
	}
}

// ExpireRound drops every effect whose duration has run out at the given
// round. Callers invoke this once per round transition.
func (m *Manager) ExpireRound(currentRound int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, effect := range m.effects {
		if effect.IsExpired(currentRound) {
			delete(m.effects, id)
			delete(m.order, id)
		}
	}
}

// Active returns all non-expired effects at the given round
func (m *Manager) Active(currentRound int) []*ActiveEffect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := []*ActiveEffect{}
	for _, effect := range m.effects {
		if !effect.IsExpired(currentRound) {
			active = append(active, effect)
		}
	}
	return active
}

// DamageBonus sums the flat damage bonuses of all active effects, stacks
// included. Feed the result into combat.Modifiers.FlatBonus.
func (m *Manager) DamageBonus(currentRound int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, effect := range m.effects {
		if effect.IsExpired(currentRound) {
			continue
		}
		total += effect.damageBonus()
	}
	return total
}

// AttributeBonus sums the flat bonuses active effects grant to one attribute
func (m *Manager) AttributeBonus(key entities.AttributeKey, currentRound int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, effect := range m.effects {
		if effect.IsExpired(currentRound) {
			continue
		}
		for _, mod := range effect.Modifiers {
			if mod.Target == TargetAttribute && mod.Attribute == key {
				total += mod.Amount * effect.Stacks
			}
		}
	}
	return total
}

// ResistanceFor resolves the effective resistance tier for one damage type.
// Every shift recomputes from the stored base tier, never from a previously
// shifted value, so re-evaluating within a pass cannot compound. When several
// active effects shift the same type, the most recently applied one wins.
func (m *Manager) ResistanceFor(base resistance.Table, dmgType damage.Type, currentRound int) resistance.Tier {
	m.mu.RLock()
	defer m.mu.RUnlock()

	baseTier := base.Lookup(dmgType)

	result := baseTier
	bestSeq := -1
	for id, effect := range m.effects {
		if effect.IsExpired(currentRound) {
			continue
		}
		for _, mod := range effect.Modifiers {
			if mod.Target != TargetResistance || mod.DamageType != dmgType {
				continue
			}
			if seq := m.order[id]; seq > bestSeq {
				bestSeq = seq
				result = mod.Method.Apply(baseTier)
			}
		}
	}

	return result
}

// MutatedTable returns a copy of the base table with every active resistance
// shift applied. The base table is never written.
func (m *Manager) MutatedTable(base resistance.Table, currentRound int) resistance.Table {
	mutated := base.Clone()
	if mutated == nil {
		mutated = resistance.Table{}
	}
	for _, dmgType := range damage.AllTypes {
		tier := m.ResistanceFor(base, dmgType, currentRound)
		if tier != base.Lookup(dmgType) {
			mutated[dmgType] = tier
		}
	}
	return mutated
}
