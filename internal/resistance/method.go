package resistance

import "strconv"

// MethodKind identifies a tier-mutation operation
type MethodKind int

const (
	// MethodNone leaves the base tier unchanged
	MethodNone MethodKind = iota

	// MethodUpgrade moves the tier one step toward drain
	MethodUpgrade

	// MethodDowngrade moves the tier one step toward weak
	MethodDowngrade

	// MethodForceWeak sets the tier to weak
	MethodForceWeak

	// MethodForceResist sets the tier to resist
	MethodForceResist

	// MethodForceNullify sets the tier to nullify
	MethodForceNullify

	// MethodForceDrain sets the tier to drain
	MethodForceDrain

	// MethodNumeric sets the tier to a literal value, clamped to [-1, 3]
	MethodNumeric
)

// Method is a parsed tier-mutation operation. Parse free-form method strings
// once at the boundary with ParseMethod; the resolution logic only ever sees
// this closed form.
type Method struct {
	Kind  MethodKind
	Value Tier // only set for MethodNumeric
}

// ParseMethod converts a method string into its closed form. Numeric strings
// parse to a clamped literal tier; unrecognized strings parse to MethodNone.
func ParseMethod(s string) Method {
	switch s {
	case "upgrade":
		return Method{Kind: MethodUpgrade}
	case "downgrade":
		return Method{Kind: MethodDowngrade}
	case "weak":
		return Method{Kind: MethodForceWeak}
	case "resist":
		return Method{Kind: MethodForceResist}
	case "nullify":
		return Method{Kind: MethodForceNullify}
	case "drain":
		return Method{Kind: MethodForceDrain}
	}

	if n, err := strconv.Atoi(s); err == nil {
		return Method{Kind: MethodNumeric, Value: Tier(n).Clamp()}
	}

	return Method{Kind: MethodNone}
}

// Apply computes the mutated tier from the stored base tier. The base is
// always the input, never a previously mutated value, so applying the same
// method twice in one evaluation pass is not cumulative.
func (m Method) Apply(base Tier) Tier {
	switch m.Kind {
	case MethodUpgrade:
		return (base + 1).Clamp()
	case MethodDowngrade:
		return (base - 1).Clamp()
	case MethodForceWeak:
		return TierWeak
	case MethodForceResist:
		return TierResist
	case MethodForceNullify:
		return TierNullify
	case MethodForceDrain:
		return TierDrain
	case MethodNumeric:
		return m.Value.Clamp()
	default:
		return base
	}
}
