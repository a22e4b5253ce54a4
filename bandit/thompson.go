package bandit

// Thompson samples each arm's Beta posterior once per round and pulls the arm
// with the highest draw.
type Thompson struct{}

func NewThompson() Thompson {
	return Thompson{}
}

func (Thompson) Name() string { return "thompson-sampling" }

func (Thompson) Select(b *Belief, src Source) int {
	best, bestDraw := 0, -1.0
	for k := 0; k < b.Arms(); k++ {
		if draw := src.Beta(b.Successes(k), b.Failures(k)); draw > bestDraw {
			best, bestDraw = k, draw
		}
	}
	return best
}
