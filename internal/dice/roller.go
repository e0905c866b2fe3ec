package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// RollResult holds the outcome of a single dice roll
type RollResult struct {
	// Rolls are the individual die results, in roll order
	Rolls []int

	// Total is the sum of all rolls
	Total int

	// Count and Sides record what was rolled
	Count int
	Sides int
}

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides
	Roll(count, sides int) (*RollResult, error)
}
