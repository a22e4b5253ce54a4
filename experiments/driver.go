package experiments

import (
	"fmt"
	"sync"

	"banditsim/bandit"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// Config fixes the shape of one comparison run.
type Config struct {
	Samples     int // rounds per episode
	Arms        int
	Experiments int // independent trials to average over
	PriorA      float64
	PriorB      float64
	Seed        uint64
}

func DefaultConfig() Config {
	return Config{
		Samples:     10000,
		Arms:        5,
		Experiments: 100,
		PriorA:      1,
		PriorB:      1,
		Seed:        1,
	}
}

// Result is the hand-off to the reporting collaborator: mean cumulative
// realized regret per round (rows) per policy (columns), plus column labels.
type Result struct {
	Regret *mat.Dense
	Labels []string
}

// Reporter consumes a finished comparison. Implementations live outside the
// core loop; see the report subpackage.
type Reporter interface {
	Report(result Result) error
}

type Option func(d *Driver)

func WithGoroutines(goroutines int) Option {
	return func(d *Driver) {
		if goroutines > 0 {
			d.goroutines = goroutines
		}
	}
}

func WithReporter(reporter Reporter) Option {
	return func(d *Driver) {
		d.reporter = reporter
	}
}

// Driver repeats independent bandit experiments and averages each policy's
// cumulative regret across them.
type Driver struct {
	config     Config
	policies   []bandit.Policy
	goroutines int
	reporter   Reporter
}

func NewDriver(config Config, policies []bandit.Policy, options ...Option) *Driver {
	if config.Samples <= 0 || config.Arms <= 0 || config.Experiments <= 0 {
		panic("samples, arms and experiments must be positive")
	}
	if len(policies) == 0 {
		panic("must specify at least one policy")
	}

	d := &Driver{
		config:     config,
		policies:   policies,
		goroutines: 1,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Run executes every experiment, averages the accumulated regret, and hands
// the result to the reporter if one is configured.
func (d *Driver) Run() (Result, error) {
	accumulator := mat.NewDense(d.config.Samples, len(d.policies), nil)

	if d.goroutines > 1 {
		d.runParallel(accumulator)
	} else {
		for trial := 0; trial < d.config.Experiments; trial++ {
			log.Info().Msgf("running experiment %d of %d", trial+1, d.config.Experiments)
			accumulator.Add(accumulator, d.runExperiment(trial))
		}
	}

	accumulator.Scale(1/float64(d.config.Experiments), accumulator)

	result := Result{Regret: accumulator, Labels: d.labels()}
	if d.reporter != nil {
		if err := d.reporter.Report(result); err != nil {
			return Result{}, fmt.Errorf("failed to report results: %w", err)
		}
	}
	return result, nil
}

// runExperiment runs one trial: a fresh probability vector and reward matrix,
// shared across all policies for a fair comparison. Each trial derives its
// own stream from the run seed, so trials stay independent and the parallel
// and sequential schedules produce identical sums.
func (d *Driver) runExperiment(trial int) *mat.Dense {
	src := bandit.NewSource(d.config.Seed + uint64(trial))
	probs := bandit.NewProbabilities(d.config.Arms, src)
	rewards := bandit.GenerateRewards(d.config.Samples, probs, src)

	partial := mat.NewDense(d.config.Samples, len(d.policies), nil)
	for j, policy := range d.policies {
		episode := bandit.RunEpisode(policy, probs, rewards, d.config.PriorA, d.config.PriorB, src)
		partial.SetCol(j, episode.Realized)
	}
	return partial
}

// runParallel fans trials out to a worker pool. Workers own their belief and
// reward data exclusively and never touch the accumulator; partial sums merge
// by a final reduction on the results channel.
func (d *Driver) runParallel(accumulator *mat.Dense) {
	trials := make(chan int, d.config.Experiments)
	for trial := 0; trial < d.config.Experiments; trial++ {
		trials <- trial
	}
	close(trials)

	partials := make(chan *mat.Dense, d.config.Experiments)
	var wg sync.WaitGroup
	for i := 0; i < d.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for trial := range trials {
				log.Info().Msgf("running experiment %d of %d", trial+1, d.config.Experiments)
				partials <- d.runExperiment(trial)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(partials)
	}()

	for partial := range partials {
		accumulator.Add(accumulator, partial)
	}
}

func (d *Driver) labels() []string {
	labels := make([]string, len(d.policies))
	for j, policy := range d.policies {
		labels[j] = policy.Name()
	}
	return labels
}
