package device

import "math/rand/v2"

// Source supplies uniformly distributed readings for device sampling.
//
// Sample returns a value in the half-open range [low, high). Any
// implementation that honours the range contract is substitutable;
// tests inject deterministic sources.
type Source interface {
	Sample(low, high float64) float64
}

// randSource samples from the shared math/rand/v2 generator.
type randSource struct{}

func (randSource) Sample(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}

// DefaultSource returns the process-wide entropy source used by the
// plain variant constructors.
func DefaultSource() Source {
	return randSource{}
}
