package entities

// Pool tracks a depletable resource with a temporary buffer. Damage consumes
// the temporary buffer first; healing never exceeds Max.
type Pool struct {
	Current   int `json:"current"`
	Max       int `json:"max"`
	Temporary int `json:"temporary"`
}

// Damage applies damage, using the temporary buffer first, and returns the
// total amount dealt.
func (p *Pool) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}

	dealt := amount

	if p.Temporary > 0 {
		if p.Temporary >= amount {
			p.Temporary -= amount
			return dealt
		}
		amount -= p.Temporary
		p.Temporary = 0
	}

	p.Current -= amount
	if p.Current < 0 {
		p.Current = 0
	}

	return dealt
}

// Heal restores the pool up to Max and returns the amount actually restored
func (p *Pool) Heal(amount int) int {
	if amount <= 0 || p.Current >= p.Max {
		return 0
	}

	before := p.Current
	p.Current += amount
	if p.Current > p.Max {
		p.Current = p.Max
	}

	return p.Current - before
}

// AddTemporary grants temporary points. Grants don't stack; the higher
// value wins.
func (p *Pool) AddTemporary(amount int) {
	if amount > p.Temporary {
		p.Temporary = amount
	}
}

// Resources holds a combatant's expendable pools: hit points and willpower
type Resources struct {
	HP Pool `json:"hp"`
	WP Pool `json:"wp"`
}

// StatBlock holds attribute-derived resource maximums
type StatBlock struct {
	HPMax int `json:"hp_max"`
	WPMax int `json:"wp_max"`
}

// DeriveStats computes resource maximums from the attribute set. This is a
// pure function; derived values are recomputed on demand rather than cached,
// so they can never go stale against the live attribute state.
func DeriveStats(attrs AttributeSet) StatBlock {
	return StatBlock{
		HPMax: 20 + 5*attrs.Sta.EffectiveTick(),
		WPMax: 10 + 5*attrs.Will.EffectiveTick(),
	}
}
