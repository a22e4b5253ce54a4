package bandit

import "math"

// UCBTuned scores each arm with the UCB1-TUNED rule: empirical mean plus a
// Chernoff-Hoeffding confidence bonus, with the variance estimate capped at
// the worst-case Bernoulli variance of 0.25.
type UCBTuned struct{}

func NewUCBTuned() UCBTuned {
	return UCBTuned{}
}

func (UCBTuned) Name() string { return "(1 - 1/t) UCB" }

func (UCBTuned) Select(b *Belief, _ Source) int {
	t := b.GrandTotal()
	best, bestScore := 0, math.Inf(-1)
	for k := 0; k < b.Arms(); k++ {
		n := b.Total(k)
		mean := b.Mean(k)
		variance := mean - mean*mean
		bonus := math.Sqrt(math.Min(variance+math.Sqrt(2*math.Log(t)/n), 0.25) * math.Log(t) / n)
		if score := mean + bonus; score > bestScore {
			best, bestScore = k, score
		}
	}
	return best
}

// UCBBernoulli scores each arm with a fixed 95% confidence interval: the
// empirical mean plus 1.96 standard errors.
type UCBBernoulli struct{}

func NewUCBBernoulli() UCBBernoulli {
	return UCBBernoulli{}
}

func (UCBBernoulli) Name() string { return "95% UCB" }

func (UCBBernoulli) Select(b *Belief, _ Source) int {
	best, bestScore := 0, math.Inf(-1)
	for k := 0; k < b.Arms(); k++ {
		mean := b.Mean(k)
		variance := mean - mean*mean
		if score := mean + 1.96*math.Sqrt(variance/b.Total(k)); score > bestScore {
			best, bestScore = k, score
		}
	}
	return best
}
