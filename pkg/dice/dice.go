// Package dice provides the injectable random source used by the crafting
// engine. All randomness (condition sampling, action failure rolls) flows
// through a Roller supplied by the caller, so simulations are deterministic
// under a seeded source and analysis code can avoid randomness entirely.
package dice

import "math/rand"

// Roller produces uniform rolls on 1..sides inclusive.
type Roller interface {
	Roll(sides int) int
}

// Source is a Roller backed by a seeded math/rand generator.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a seeded Source. The same seed always yields the same
// roll sequence.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform value in 1..sides.
func (s *Source) Roll(sides int) int {
	return s.rng.Intn(sides) + 1
}

// Fixed is a Roller that replays a fixed sequence of rolls, cycling when
// exhausted. Useful for pinning conditions and failure outcomes in tests.
type Fixed struct {
	Rolls []int
	next  int
}

// NewFixed creates a Fixed roller from the given sequence.
func NewFixed(rolls ...int) *Fixed {
	return &Fixed{Rolls: rolls}
}

// Roll returns the next value in the sequence, ignoring sides. Values are
// expected to already be legal for the die they will be used with.
func (f *Fixed) Roll(sides int) int {
	if len(f.Rolls) == 0 {
		return sides
	}
	v := f.Rolls[f.next%len(f.Rolls)]
	f.next++
	return v
}
