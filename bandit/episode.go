package bandit

import "gonum.org/v1/gonum/mat"

// EpisodeResult carries both cumulative regret sequences from one episode.
//
// Realized is the oracle signal and the sequence that gets reported: +1 for a
// round where the best arm would have paid out and the chosen arm did not,
// -1 for the reverse, 0 otherwise. Expected is the classical gap between the
// best arm's true probability and the chosen arm's true probability.
type EpisodeResult struct {
	Realized []float64
	Expected []float64
}

// RunEpisode plays every round of one experiment with a single policy: pick
// an arm, look up the precomputed reward, update the posterior, and score the
// round against the oracle that always pulls the best true arm.
func RunEpisode(policy Policy, probs []float64, rewards *mat.Dense, priorA, priorB float64, src Source) EpisodeResult {
	samples, arms := rewards.Dims()
	if arms != len(probs) {
		panic("reward matrix width must match probability vector length")
	}

	belief := NewBelief(arms, priorA, priorB)
	bestArm := argmax(probs)

	realized := make([]float64, samples)
	expected := make([]float64, samples)
	var cumRealized, cumExpected float64

	for i := 0; i < samples; i++ {
		choice := policy.Select(belief, src)
		won := rewards.At(i, choice) == 1
		belief.Update(choice, won)

		cumExpected += probs[bestArm] - probs[choice]
		oracleWon := rewards.At(i, bestArm) == 1
		switch {
		case oracleWon && !won:
			cumRealized++
		case !oracleWon && won:
			cumRealized--
		}
		realized[i] = cumRealized
		expected[i] = cumExpected
	}

	return EpisodeResult{Realized: realized, Expected: expected}
}

func argmax(values []float64) int {
	best := 0
	for k, v := range values {
		if v > values[best] {
			best = k
		}
	}
	return best
}
