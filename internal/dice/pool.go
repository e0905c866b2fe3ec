package dice

// DefaultSuccessThreshold is the minimum face value that counts as a success
// on a d6 check pool.
const DefaultSuccessThreshold = 4

// critSixes is how many sixes a check pool needs to count as critical
const critSixes = 2

// CheckResult holds the outcome of a success-counting check pool
type CheckResult struct {
	// Rolls are the individual d6 results
	Rolls []int

	// Successes is the number of dice at or above the threshold
	Successes int

	// IsCritical is true when the pool shows two or more sixes
	IsCritical bool

	// Threshold is the success threshold that was applied
	Threshold int
}

// Succeeded reports whether the check produced at least one success
func (c *CheckResult) Succeeded() bool {
	return c.Successes > 0
}

// RollCheck rolls a d6 check pool and counts successes. Pool size is the
// number of dice, normally an attribute tick plus situational dice. A
// threshold below 1 falls back to the default.
func RollCheck(roller Roller, pool, threshold int) (*CheckResult, error) {
	if threshold < 1 {
		threshold = DefaultSuccessThreshold
	}

	result, err := roller.Roll(pool, 6)
	if err != nil {
		return nil, err
	}

	successes := 0
	sixes := 0
	for _, roll := range result.Rolls {
		if roll >= threshold {
			successes++
		}
		if roll == 6 {
			sixes++
		}
	}

	return &CheckResult{
		Rolls:      result.Rolls,
		Successes:  successes,
		IsCritical: sixes >= critSixes,
		Threshold:  threshold,
	}, nil
}

// RollDamagePool evaluates an item's rolled damage once. The total is meant
// to be shared across every target of the resolution.
func RollDamagePool(roller Roller, count, sides int) (int, error) {
	result, err := roller.Roll(count, sides)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
