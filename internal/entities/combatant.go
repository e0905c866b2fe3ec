package entities

import (
	"github.com/akashic-script/dasu-rules/internal/resistance"
)

// Combatant is the attribute/resistance snapshot the rules engine reads.
// It is a plain data record populated by the host-integration layer; the
// engine never writes it.
type Combatant struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Attributes AttributeSet     `json:"attributes"`
	Resistance resistance.Table `json:"resistance"`
	Resources  Resources        `json:"resources"`
}

// TickFor resolves the tick contributed by the given attribute key.
// The skip sentinel and unknown keys contribute zero.
func (c *Combatant) TickFor(key AttributeKey) int {
	if c == nil {
		return 0
	}
	attr, ok := c.Attributes.Get(key)
	if !ok {
		return 0
	}
	return attr.EffectiveTick()
}

// HasAttributeData reports whether the combatant carries any usable attribute
// state at all. The strict validation path refuses combatants without it.
func (c *Combatant) HasAttributeData() bool {
	if c == nil {
		return false
	}
	for _, key := range AttributeKeys {
		attr, _ := c.Attributes.Get(key)
		if attr.Tick >= 1 || attr.Current > 0 {
			return true
		}
	}
	return false
}
