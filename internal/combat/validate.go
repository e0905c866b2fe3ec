package combat

import (
	"github.com/akashic-script/dasu-rules/internal/entities"
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	dasuerr "github.com/akashic-script/dasu-rules/internal/errors"
)

// ValidateResolution is the strict, fail-fast counterpart of the best-effort
// calculators. Call it before committing a resource mutation; the preview
// paths skip it so partial input still renders a (zeroed) result.
func ValidateResolution(source *entities.Combatant, targets []*entities.Combatant, dmgType damage.Type) error {
	if source == nil {
		return dasuerr.MissingActor("damage resolution requires a source combatant")
	}

	if !source.HasAttributeData() {
		return dasuerr.MissingAttributeData("source combatant has no attribute data").
			WithMeta("combatant_id", source.ID)
	}

	if !dmgType.IsValid() {
		return dasuerr.InvalidDamageTypef("unrecognized damage type %q", dmgType)
	}

	if len(targets) == 0 {
		return dasuerr.MissingTarget("damage resolution requires at least one target")
	}

	for i, target := range targets {
		if target == nil {
			return dasuerr.MissingTarget("target combatant is missing").
				WithMeta("target_index", i)
		}
	}

	return nil
}
