// dasu-preview prints a damage-resolution preview for a quick scenario:
// one attacker, one item, and a set of targets built from archetype
// profiles. Handy for eyeballing resistance math without a host session.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/akashic-script/dasu-rules/internal/combat"
	"github.com/akashic-script/dasu-rules/internal/config"
	"github.com/akashic-script/dasu-rules/internal/entities"
	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	"github.com/akashic-script/dasu-rules/internal/ruleset"
)

func main() {
	var (
		powTick    = flag.Int("pow", 3, "attacker pow tick (1-6)")
		itemDamage = flag.Int("damage", 5, "item flat damage value")
		dmgType    = flag.String("type", "fire", "damage type key")
		flatBonus  = flag.Int("bonus", 0, "flat damage bonus")
		critical   = flag.Bool("crit", false, "resolve as a critical hit")
		targets    = flag.String("targets", "", "comma-separated profile names (default: the configured profile)")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	registry, err := ruleset.LoadDefaults()
	if err != nil {
		log.Fatalf("Failed to load profiles: %v", err)
	}

	names := []string{cfg.Preview.Profile}
	if *targets != "" {
		names = strings.Split(*targets, ",")
	}

	source := &entities.Combatant{
		ID:   "preview-attacker",
		Name: "Attacker",
		Attributes: entities.AttributeSet{
			Pow: entities.Attribute{Tick: *powTick},
		},
	}
	item := &entities.Item{
		Key:                "preview-item",
		DamageValue:        *itemDamage,
		GoverningAttribute: entities.AttributePow,
		DamageType:         damage.Type(*dmgType),
	}

	var targetList []*entities.Combatant
	for _, name := range names {
		name = strings.TrimSpace(name)
		profile, ok := registry.Get(name)
		if !ok {
			log.Fatalf("Unknown profile %q (have: %s)", name, strings.Join(registry.Names(), ", "))
		}
		targetList = append(targetList, &entities.Combatant{
			ID:         name,
			Name:       name,
			Attributes: entities.AttributeSet{Sta: entities.Attribute{Tick: 2}},
			Resistance: profile.Table(),
		})
	}

	mods := combat.NewModifiers().WithFlatBonus(*flatBonus)
	if *critical {
		mods = mods.WithCritical()
	}

	if err := combat.ValidateResolution(source, targetList, item.DamageType); err != nil {
		log.Fatalf("Invalid scenario: %v", err)
	}

	resolver := combat.NewResolver(nil)

	check, err := resolver.Check(source, item, cfg.Preview.SuccessThreshold)
	if err != nil {
		log.Fatalf("Check failed: %v", err)
	}
	fmt.Printf("Accuracy check: rolls %v, %d success(es), critical=%v\n",
		check.Rolls, check.Successes, check.IsCritical)

	input := &combat.ResolveInput{
		Source:     source,
		Item:       item,
		DamageType: item.DamageType,
		Modifiers:  mods,
		Targets:    targetList,
	}

	var out *combat.ResolveOutput
	if cfg.Preview.Concurrent {
		out, err = resolver.ResolveConcurrent(context.Background(), input)
	} else {
		out, err = resolver.Resolve(input)
	}
	if err != nil {
		log.Fatalf("Resolve failed: %v", err)
	}

	fmt.Printf("Resolution %s: base damage %d (%s%s)\n",
		out.ID, out.BaseDamage, item.DamageType, critLabel(*critical))
	for _, result := range out.Results {
		verb := "takes"
		if result.IsHealing {
			verb = "is healed for"
		}
		fmt.Printf("  %-12s %s %d  [%s x%.1f]\n",
			result.TargetID, verb, result.Damage, result.TierName, result.Multiplier)
	}
}

func critLabel(critical bool) string {
	if critical {
		return ", critical"
	}
	return ""
}
