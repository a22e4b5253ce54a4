package bandit

import "gonum.org/v1/gonum/mat"

// NewProbabilities draws the hidden success probability of each arm for one
// experiment.
func NewProbabilities(arms int, src Source) []float64 {
	probs := make([]float64, arms)
	for k := range probs {
		probs[k] = src.Float64()
	}
	return probs
}

// GenerateRewards precomputes all Bernoulli outcomes for one experiment as a
// samples x K matrix of 0/1 entries. Drawing every reward ahead of time keeps
// outcomes independent of policy choice, so competing policies are compared
// on identical luck.
func GenerateRewards(samples int, probs []float64, src Source) *mat.Dense {
	rewards := mat.NewDense(samples, len(probs), nil)
	for i := 0; i < samples; i++ {
		for k, p := range probs {
			if src.Float64() < p {
				rewards.Set(i, k, 1)
			}
		}
	}
	return rewards
}
