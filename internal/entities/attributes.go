package entities

// AttributeKey identifies one of the four governing attributes
type AttributeKey string

const (
	AttributePow  AttributeKey = "pow"
	AttributeDex  AttributeKey = "dex"
	AttributeWill AttributeKey = "will"
	AttributeSta  AttributeKey = "sta"

	// AttributeNone is the skip sentinel: no attribute contributes to damage
	AttributeNone AttributeKey = "none"
)

// AttributeKeys lists the four real attributes (the skip sentinel excluded)
var AttributeKeys = []AttributeKey{AttributePow, AttributeDex, AttributeWill, AttributeSta}

// IsSkip reports whether the key is the skip sentinel. Both the empty string
// and the literal "none" token mean skip.
func (k AttributeKey) IsSkip() bool {
	return k == "" || k == AttributeNone
}

// IsValid reports whether k names one of the four attributes
func (k AttributeKey) IsValid() bool {
	switch k {
	case AttributePow, AttributeDex, AttributeWill, AttributeSta:
		return true
	}
	return false
}

// Attribute holds one attribute's state. Tick is the attribute's level in
// [1, 6]; Current is the raw point total the tick is derived from.
type Attribute struct {
	Tick    int `json:"tick"`
	Current int `json:"current"`
}

// EffectiveTick resolves the tick used by the damage formula. A stored tick
// wins; otherwise the tick derives from the raw point total (5 points per
// tick, floor 1); with neither, the tick defaults to 1.
func (a Attribute) EffectiveTick() int {
	if a.Tick >= 1 {
		return a.Tick
	}
	if a.Current > 0 {
		tick := a.Current / 5
		if tick < 1 {
			tick = 1
		}
		return tick
	}
	return 1
}

// AttributeSet is a combatant's four governing attributes
type AttributeSet struct {
	Pow  Attribute `json:"pow"`
	Dex  Attribute `json:"dex"`
	Will Attribute `json:"will"`
	Sta  Attribute `json:"sta"`
}

// Get returns the attribute for key; ok is false for the skip sentinel and
// any unrecognized key.
func (s AttributeSet) Get(key AttributeKey) (Attribute, bool) {
	switch key {
	case AttributePow:
		return s.Pow, true
	case AttributeDex:
		return s.Dex, true
	case AttributeWill:
		return s.Will, true
	case AttributeSta:
		return s.Sta, true
	}
	return Attribute{}, false
}
