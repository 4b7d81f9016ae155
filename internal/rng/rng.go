// Package rng bundles the run's random sources. Every stage of a synthesis
// run draws from one Source so that a fixed seed reproduces the dataset
// byte for byte.
package rng

import (
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
)

// Source wraps a seeded PRNG and a faker seeded from the same value.
type Source struct {
	rand  *rand.Rand
	faker *gofakeit.Faker
}

// New returns a Source where both the numeric stream and the faker stream
// derive from seed.
func New(seed int64) *Source {
	return &Source{
		rand:  rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
	}
}

// Float64 returns a uniform draw in [0,1).
func (s *Source) Float64() float64 { return s.rand.Float64() }

// Intn returns a uniform draw in [0,n).
func (s *Source) Intn(n int) int { return s.rand.Intn(n) }

// IntBetween returns a uniform draw in [lo,hi], inclusive on both ends.
func (s *Source) IntBetween(lo, hi int) int {
	return lo + s.rand.Intn(hi-lo+1)
}

// FloatBetween returns a uniform draw in [lo,hi).
func (s *Source) FloatBetween(lo, hi float64) float64 {
	return lo + s.rand.Float64()*(hi-lo)
}

// NormFloat64 returns a standard normal draw.
func (s *Source) NormFloat64() float64 { return s.rand.NormFloat64() }

// Perm returns a uniform permutation of [0,n).
func (s *Source) Perm(n int) []int { return s.rand.Perm(n) }

// Faker passthroughs.

func (s *Source) Name() string        { return s.faker.Name() }
func (s *Source) Email() string       { return s.faker.Email() }
func (s *Source) Phone() string       { return s.faker.PhoneFormatted() }
func (s *Source) IPv4() string        { return s.faker.IPv4Address() }
func (s *Source) ProductName() string { return s.faker.ProductName() }

// Address returns a single-line postal address.
func (s *Source) Address() string { return s.faker.Address().Address }
