package bandit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCBTuned(t *testing.T) {
	t.Run("prefers the higher mean at equal pull counts", func(t *testing.T) {
		b := NewBelief(2, 1, 1)
		pull(b, 0, 3, 1)
		pull(b, 1, 1, 3)

		require.Equal(t, 0, NewUCBTuned().Select(b, nil))
	})

	t.Run("matches the hand-computed bound", func(t *testing.T) {
		b := NewBelief(2, 1, 1)
		pull(b, 0, 3, 1) // mean 4/6
		pull(b, 1, 1, 3) // mean 2/6

		score := func(mean, n, total float64) float64 {
			variance := mean - mean*mean
			return mean + math.Sqrt(math.Min(variance+math.Sqrt(2*math.Log(total)/n), 0.25)*math.Log(total)/n)
		}
		score0 := score(4.0/6.0, 6, 12)
		score1 := score(2.0/6.0, 6, 12)
		require.Greater(t, score0, score1)
		require.Equal(t, 0, NewUCBTuned().Select(b, nil))
	})

	t.Run("under-sampled arm earns a larger bonus", func(t *testing.T) {
		b := NewBelief(2, 1, 1)
		pull(b, 0, 10, 10) // mean 0.5 from many pulls
		// arm 1 untouched: mean 0.5 from prior mass alone

		require.Equal(t, 1, NewUCBTuned().Select(b, nil),
			"equal means should favor the less-sampled arm")
	})
}

func TestUCBBernoulli(t *testing.T) {
	t.Run("prefers the higher mean at equal pull counts", func(t *testing.T) {
		b := NewBelief(2, 1, 1)
		pull(b, 0, 3, 1)
		pull(b, 1, 1, 3)

		require.Equal(t, 0, NewUCBBernoulli().Select(b, nil))
	})

	t.Run("breaks score ties by first index", func(t *testing.T) {
		b := NewBelief(3, 1, 1)
		require.Equal(t, 0, NewUCBBernoulli().Select(b, nil))
	})

	t.Run("wide interval can beat a better mean", func(t *testing.T) {
		b := NewBelief(2, 1, 1)
		pull(b, 0, 60, 40) // mean ~0.6, tight interval
		// arm 1 untouched: mean 0.5 with 1.96*sqrt(0.25/2) ~ 0.69 bonus

		score0 := 61.0/102.0 + 1.96*math.Sqrt((61.0/102.0)*(41.0/102.0)/102.0)
		score1 := 0.5 + 1.96*math.Sqrt(0.25/2.0)
		require.Greater(t, score1, score0)
		require.Equal(t, 1, NewUCBBernoulli().Select(b, nil))
	})
}
