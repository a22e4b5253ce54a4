package bandit

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source supplies all randomness the simulation consumes: uniform reals for
// reward draws, uniform ints for exploratory arm picks, and Beta posterior
// samples for Thompson sampling. Tests substitute seeded or scripted sources.
type Source interface {
	Float64() float64
	Intn(n int) int
	Beta(alpha, beta float64) float64
}

type rngSource struct {
	rng *rand.Rand
}

// NewSource returns a seeded Source backed by x/exp/rand and gonum's Beta
// sampler.
func NewSource(seed uint64) Source {
	return &rngSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *rngSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *rngSource) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *rngSource) Beta(alpha, beta float64) float64 {
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: s.rng}.Rand()
}
