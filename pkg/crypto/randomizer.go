package crypto

// Randomizer abstracts the random source of domain logic, so tests can
// substitute a deterministic sequence.
type Randomizer interface {
	// Intn returns a uniform random value in [0, n).
	Intn(n int) int

	// Range returns a uniform random value in [a, b).
	Range(a, b int) int
}

type defaultRandomizer struct{}

func NewRandomizer() Randomizer {
	return defaultRandomizer{}
}

func (defaultRandomizer) Intn(n int) int {
	return RandIntn(n)
}

func (defaultRandomizer) Range(a, b int) int {
	return RandRange(a, b)
}
