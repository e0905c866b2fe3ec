package damage

// Type represents a damage type key
type Type string

const (
	TypePhysical Type = "physical"
	TypeFire     Type = "fire"
	TypeIce      Type = "ice"
	TypeElectric Type = "electric"
	TypeWind     Type = "wind"
	TypeEarth    Type = "earth"
	TypeLight    Type = "light"
	TypeDark     Type = "dark"
	TypeUntyped  Type = "untyped"
)

// AllTypes lists every recognized damage type
var AllTypes = []Type{
	TypePhysical,
	TypeFire,
	TypeIce,
	TypeElectric,
	TypeWind,
	TypeEarth,
	TypeLight,
	TypeDark,
	TypeUntyped,
}

// IsValid reports whether t is one of the recognized damage types
func (t Type) IsValid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	return string(t)
}
