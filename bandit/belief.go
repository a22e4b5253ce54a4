package bandit

import "gonum.org/v1/gonum/mat"

// Belief holds the per-arm Beta posterior parameters as a K x 2 matrix:
// column 0 counts successes, column 1 failures. Both columns are seeded with
// prior mass so mean and variance computations never divide by zero.
type Belief struct {
	params *mat.Dense
}

// NewBelief seeds every arm with the given prior.
func NewBelief(arms int, priorA, priorB float64) *Belief {
	if arms <= 0 {
		panic("arm count must be positive")
	}
	if priorA <= 0 || priorB <= 0 {
		panic("prior mass must be positive")
	}

	params := mat.NewDense(arms, 2, nil)
	for k := 0; k < arms; k++ {
		params.Set(k, 0, priorA)
		params.Set(k, 1, priorB)
	}
	return &Belief{params: params}
}

func (b *Belief) Arms() int {
	arms, _ := b.params.Dims()
	return arms
}

func (b *Belief) Successes(arm int) float64 {
	return b.params.At(arm, 0)
}

func (b *Belief) Failures(arm int) float64 {
	return b.params.At(arm, 1)
}

// Total returns one arm's successes plus failures: its pull count plus prior
// mass.
func (b *Belief) Total(arm int) float64 {
	return b.params.At(arm, 0) + b.params.At(arm, 1)
}

// GrandTotal sums the parameters over all arms, the t in confidence bounds.
func (b *Belief) GrandTotal() float64 {
	return mat.Sum(b.params)
}

// Mean returns one arm's empirical success rate, smoothed by the prior.
func (b *Belief) Mean(arm int) float64 {
	return b.Successes(arm) / b.Total(arm)
}

// Update records one observed pull of arm.
func (b *Belief) Update(arm int, success bool) {
	col := 1
	if success {
		col = 0
	}
	b.params.Set(arm, col, b.params.At(arm, col)+1)
}
