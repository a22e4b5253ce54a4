package experiments

import (
	"testing"

	"banditsim/bandit"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testConfig() Config {
	return Config{
		Samples:     200,
		Arms:        3,
		Experiments: 5,
		PriorA:      1,
		PriorB:      1,
		Seed:        17,
	}
}

func testPolicies() []bandit.Policy {
	return []bandit.Policy{
		bandit.NewRandom(),
		bandit.NewUCBTuned(),
		bandit.NewThompson(),
	}
}

type fakeReporter struct {
	result Result
	called bool
}

func (r *fakeReporter) Report(result Result) error {
	r.result = result
	r.called = true
	return nil
}

func TestNewDriver(t *testing.T) {
	t.Run("panics with invalid config", func(t *testing.T) {
		require.Panics(t, func() {
			NewDriver(Config{}, testPolicies())
		})
	})

	t.Run("panics without policies", func(t *testing.T) {
		require.Panics(t, func() {
			NewDriver(testConfig(), nil)
		})
	})
}

func TestDriverRun(t *testing.T) {
	t.Run("averages over all experiments", func(t *testing.T) {
		config := testConfig()
		policies := testPolicies()

		result, err := NewDriver(config, policies).Run()
		require.NoError(t, err)

		rows, cols := result.Regret.Dims()
		require.Equal(t, config.Samples, rows)
		require.Equal(t, len(policies), cols)

		// Rebuild the same trials from the exported pieces and compare.
		want := mat.NewDense(config.Samples, len(policies), nil)
		for trial := 0; trial < config.Experiments; trial++ {
			src := bandit.NewSource(config.Seed + uint64(trial))
			probs := bandit.NewProbabilities(config.Arms, src)
			rewards := bandit.GenerateRewards(config.Samples, probs, src)
			for j, policy := range policies {
				episode := bandit.RunEpisode(policy, probs, rewards, config.PriorA, config.PriorB, src)
				for i, cum := range episode.Realized {
					want.Set(i, j, want.At(i, j)+cum)
				}
			}
		}
		want.Scale(1/float64(config.Experiments), want)

		require.True(t, mat.Equal(want, result.Regret),
			"driver output should be the mean of per-trial cumulative regret")
	})

	t.Run("labels follow policy order", func(t *testing.T) {
		result, err := NewDriver(testConfig(), testPolicies()).Run()
		require.NoError(t, err)

		require.Equal(t, []string{"Random", "(1 - 1/t) UCB", "thompson-sampling"}, result.Labels)
	})

	t.Run("parallel run matches sequential run", func(t *testing.T) {
		config := testConfig()

		sequential, err := NewDriver(config, testPolicies()).Run()
		require.NoError(t, err)

		parallel, err := NewDriver(config, testPolicies(), WithGoroutines(4)).Run()
		require.NoError(t, err)

		// Per-trial regret is integer-valued, so the reduction is exact in
		// either schedule.
		require.True(t, mat.Equal(sequential.Regret, parallel.Regret))
	})

	t.Run("hands the result to the reporter", func(t *testing.T) {
		reporter := &fakeReporter{}

		result, err := NewDriver(testConfig(), testPolicies(), WithReporter(reporter)).Run()
		require.NoError(t, err)

		require.True(t, reporter.called)
		require.True(t, mat.Equal(result.Regret, reporter.result.Regret))
		require.Equal(t, result.Labels, reporter.result.Labels)
	})
}
