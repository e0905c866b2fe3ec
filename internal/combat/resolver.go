package combat

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/akashic-script/dasu-rules/internal/dice"
	"github.com/akashic-script/dasu-rules/internal/entities"
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	dasuerr "github.com/akashic-script/dasu-rules/internal/errors"
	"github.com/akashic-script/dasu-rules/internal/resistance"
	"github.com/akashic-script/dasu-rules/internal/uuid"
)

//go:generate mockgen -destination=mock/mock_resolver.go -package=mockcombat -source=resolver.go

// Service resolves damage against a batch of targets
type Service interface {
	// Check rolls the source's accuracy pool for an item
	Check(source *entities.Combatant, item *entities.Item, threshold int) (*dice.CheckResult, error)

	// Resolve runs the per-target pipeline sequentially
	Resolve(input *ResolveInput) (*ResolveOutput, error)

	// ResolveConcurrent runs the per-target pipeline with a goroutine per
	// target; results are identical to Resolve
	ResolveConcurrent(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}

// ResolveInput describes one damage resolution: one source, zero or one
// item, N independent targets.
type ResolveInput struct {
	Source     *entities.Combatant
	Item       *entities.Item
	DamageType damage.Type
	Modifiers  *Modifiers
	Targets    []*entities.Combatant

	// BaseOverride supplies a precomputed base damage shared across every
	// target, e.g. when damage derives from a dice roll evaluated once and
	// then distributed. Nil means the base is computed from source and item.
	BaseOverride *int
}

// TargetResult is the engine's verdict for a single target. Ephemeral: the
// caller persists the derived resource delta, not the record.
type TargetResult struct {
	TargetID string `json:"target_id"`

	// Damage is the final non-negative amount. When IsHealing is true the
	// caller must add it to the target's pool instead of subtracting.
	Damage     int             `json:"damage"`
	IsHealing  bool            `json:"is_healing"`
	Tier       resistance.Tier `json:"tier"`
	TierName   string          `json:"tier_name"`
	Multiplier float64         `json:"multiplier"`
}

// ResolveOutput is the ordered batch result. Results follow the input target
// order with nil targets omitted.
type ResolveOutput struct {
	ID         string         `json:"id"`
	BaseDamage int            `json:"base_damage"`
	Results    []TargetResult `json:"results"`
}

// resolver is the Service implementation
type resolver struct {
	diceRoller    dice.Roller
	uuidGenerator uuid.Generator
}

// ResolverConfig holds configuration for the resolver service
type ResolverConfig struct {
	DiceRoller    dice.Roller
	UUIDGenerator uuid.Generator
}

// NewResolver creates a new resolver service. Missing collaborators fall
// back to the real implementations.
func NewResolver(cfg *ResolverConfig) Service {
	r := &resolver{}
	if cfg != nil {
		r.diceRoller = cfg.DiceRoller
		r.uuidGenerator = cfg.UUIDGenerator
	}
	if r.diceRoller == nil {
		r.diceRoller = dice.NewRandomRoller()
	}
	if r.uuidGenerator == nil {
		r.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	return r
}

// Check rolls the source's accuracy pool: one d6 per tick of the item's
// governing attribute (minimum one die). The check's critical flag is what
// callers feed into Modifiers.IsCritical.
func (r *resolver) Check(source *entities.Combatant, item *entities.Item, threshold int) (*dice.CheckResult, error) {
	if source == nil {
		return nil, dasuerr.MissingActor("check requires a source combatant")
	}

	pool := 0
	key := governingAttribute(item, nil)
	if !key.IsSkip() {
		pool = source.TickFor(key)
	}
	if pool < 1 {
		pool = 1
	}

	return dice.RollCheck(r.diceRoller, pool, threshold)
}

// Resolve runs the pipeline once per target. Base damage is computed a
// single time and shared; each target's outcome depends only on its own
// resistance table, never on other targets.
//
// The critical multiplier is applied at exactly one point: the resistance
// table's tier-and-crit lookup. Base damage is never pre-doubled.
func (r *resolver) Resolve(input *ResolveInput) (*ResolveOutput, error) {
	base, err := r.baseDamage(input)
	if err != nil {
		return nil, err
	}

	out := &ResolveOutput{
		ID:         r.uuidGenerator.New(),
		BaseDamage: base,
		Results:    make([]TargetResult, 0, len(input.Targets)),
	}

	for _, target := range input.Targets {
		if target == nil {
			// Absent targets are skipped, not an error, in batch mode.
			continue
		}
		out.Results = append(out.Results, resolveTarget(base, target, input))
	}

	return out, nil
}

// ResolveConcurrent fans the per-target step out across goroutines. The
// per-target computation is pure, so ordering and concurrency cannot change
// the outcome; output order still matches input order.
func (r *resolver) ResolveConcurrent(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	base, err := r.baseDamage(input)
	if err != nil {
		return nil, err
	}

	slots := make([]*TargetResult, len(input.Targets))
	g, _ := errgroup.WithContext(ctx)

	for i, target := range input.Targets {
		if target == nil {
			continue
		}
		i, target := i, target
		g.Go(func() error {
			result := resolveTarget(base, target, input)
			slots[i] = &result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &ResolveOutput{
		ID:         r.uuidGenerator.New(),
		BaseDamage: base,
		Results:    make([]TargetResult, 0, len(input.Targets)),
	}
	for _, slot := range slots {
		if slot != nil {
			out.Results = append(out.Results, *slot)
		}
	}

	return out, nil
}

// baseDamage computes the shared base amount for a resolution. An override
// wins; otherwise items with rolled damage are evaluated once and the total
// joins the declared flat value before the formula runs.
func (r *resolver) baseDamage(input *ResolveInput) (int, error) {
	if input == nil {
		return 0, dasuerr.InvalidArgument("input cannot be nil")
	}

	if input.BaseOverride != nil {
		base := *input.BaseOverride
		if base < 0 {
			base = 0
		}
		return base, nil
	}

	item := input.Item
	if item.HasRolledDamage() {
		rolled, err := dice.RollDamagePool(r.diceRoller, item.DiceCount, item.DiceSize)
		if err != nil {
			return 0, dasuerr.Wrap(err, "failed to roll item damage")
		}
		withRoll := *item
		withRoll.DamageValue += rolled
		item = &withRoll
	}

	return CalculateBaseDamage(input.Source, item, input.Modifiers), nil
}

// resolveTarget applies resistance for a single target
func resolveTarget(base int, target *entities.Combatant, input *ResolveInput) TargetResult {
	critical := input.Modifiers != nil && input.Modifiers.IsCritical

	table := target.Resistance
	if input.Modifiers != nil && input.Modifiers.IgnoreResistance {
		// Forces the normal row; the crit-aware multiplier still applies.
		table = nil
	}

	applied := resistance.Apply(base, table, input.DamageType, critical)

	return TargetResult{
		TargetID:   target.ID,
		Damage:     applied.Damage,
		IsHealing:  applied.IsHealing,
		Tier:       applied.Tier,
		TierName:   applied.TierName(),
		Multiplier: applied.Multiplier,
	}
}
