package bandit

// Policy picks the arm to pull next from the current posterior. Implementations
// hold their tunables but no per-episode state, so one instance can serve
// concurrent experiments.
type Policy interface {
	Name() string
	Select(b *Belief, src Source) int
}

// Random pulls a uniformly random arm every round. No exploitation at all;
// baseline only.
type Random struct{}

func NewRandom() Random {
	return Random{}
}

func (Random) Name() string { return "Random" }

func (Random) Select(b *Belief, src Source) int {
	return src.Intn(b.Arms())
}

// Naive pulls the least-pulled arm until every arm has met a fixed exploration
// budget, then commits permanently to the arm with the best empirical mean.
// Once committed it never explores again, even if the estimate is wrong.
type Naive struct {
	exploreBudget float64
}

// NewNaive builds a Naive policy. The budget counts pulls plus prior mass.
func NewNaive(exploreBudget float64) Naive {
	if exploreBudget <= 0 {
		panic("exploration budget must be positive")
	}
	return Naive{exploreBudget: exploreBudget}
}

func (Naive) Name() string { return "Naive" }

func (p Naive) Select(b *Belief, _ Source) int {
	least := 0
	for k := 1; k < b.Arms(); k++ {
		if b.Total(k) < b.Total(least) {
			least = k
		}
	}
	if b.Total(least) < p.exploreBudget {
		return least
	}
	return bestMean(b)
}

// EpsilonGreedy exploits the best empirical mean, except with probability
// epsilon it explores a uniformly random arm other than the current best.
type EpsilonGreedy struct {
	epsilon float64
}

func NewEpsilonGreedy(epsilon float64) EpsilonGreedy {
	if epsilon < 0 || epsilon > 1 {
		panic("epsilon must be in [0, 1]")
	}
	return EpsilonGreedy{epsilon: epsilon}
}

func (EpsilonGreedy) Name() string { return "Epsilon-Greedy" }

func (p EpsilonGreedy) Select(b *Belief, src Source) int {
	best := bestMean(b)
	if b.Arms() == 1 || src.Float64() >= p.epsilon {
		return best
	}

	// Resample until the exploratory pick differs from the current best.
	other := src.Intn(b.Arms())
	for other == best {
		other = src.Intn(b.Arms())
	}
	return other
}

// bestMean returns the arm with the highest empirical success rate, first
// index winning ties.
func bestMean(b *Belief) int {
	best := 0
	for k := 1; k < b.Arms(); k++ {
		if b.Mean(k) > b.Mean(best) {
			best = k
		}
	}
	return best
}
