// Package ruleset loads named archetype resistance profiles from YAML.
// The embedded defaults back the preview tool and test fixtures; hosts can
// parse their own documents through the same entry point.
package ruleset

import (
	_ "embed"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/akashic-script/dasu-rules/internal/entities/damage"
	dasuerr "github.com/akashic-script/dasu-rules/internal/errors"
	"github.com/akashic-script/dasu-rules/internal/resistance"
)

//go:embed profiles.yaml
var defaultProfiles []byte

// Profile is a named resistance archetype
type Profile struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Resistances map[string]int `yaml:"resistances"`
}

// Table converts the profile's resistance entries into an engine table.
// Tier values outside the stored range clamp.
func (p *Profile) Table() resistance.Table {
	table := make(resistance.Table, len(p.Resistances))
	for key, tier := range p.Resistances {
		table[damage.Type(key)] = resistance.Tier(tier).Clamp()
	}
	return table
}

// Registry holds the loaded profiles by name
type Registry struct {
	profiles map[string]*Profile
}

type document struct {
	Profiles []*Profile `yaml:"profiles"`
}

// Parse reads a profiles document and validates its damage-type keys
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, dasuerr.Wrap(err, "failed to parse profiles document")
	}

	registry := &Registry{profiles: make(map[string]*Profile, len(doc.Profiles))}
	for _, profile := range doc.Profiles {
		if profile.Name == "" {
			return nil, dasuerr.InvalidArgument("profile must have a name")
		}
		for key := range profile.Resistances {
			if !damage.Type(key).IsValid() {
				return nil, dasuerr.InvalidDamageTypef("profile %q: unrecognized damage type %q", profile.Name, key)
			}
		}
		registry.profiles[profile.Name] = profile
	}

	return registry, nil
}

// LoadDefaults parses the embedded default profiles
func LoadDefaults() (*Registry, error) {
	return Parse(defaultProfiles)
}

// Get returns the named profile
func (r *Registry) Get(name string) (*Profile, bool) {
	profile, ok := r.profiles[name]
	return profile, ok
}

// Names returns all profile names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
