package main

import (
	"os"

	"banditsim/bandit"
	"banditsim/experiments"
	"banditsim/experiments/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	config := experiments.DefaultConfig()
	var goroutines int
	var outDir string

	cmd := &cobra.Command{
		Use:   "banditsim",
		Short: "Compare bandit action-selection policies on simulated Bernoulli rewards",
		Run: func(cmd *cobra.Command, args []string) {
			run(config, goroutines, outDir)
		},
	}

	cmd.Flags().IntVar(&config.Samples, "samples", config.Samples, "rounds per episode")
	cmd.Flags().IntVar(&config.Arms, "arms", config.Arms, "number of arms")
	cmd.Flags().IntVar(&config.Experiments, "experiments", config.Experiments, "independent experiments to average over")
	cmd.Flags().Uint64Var(&config.Seed, "seed", config.Seed, "random seed")
	cmd.Flags().IntVar(&goroutines, "goroutines", 1, "goroutines for parallel experiments")
	cmd.Flags().StringVar(&outDir, "out", "results", "output directory for CSV results")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(config experiments.Config, goroutines int, outDir string) {
	writer, err := report.NewWriter(outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create report writer")
	}

	err = writer.WriteRunConfig(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store run config")
	}

	// Policies in the order their results are reported
	policies := []bandit.Policy{
		bandit.NewRandom(),
		bandit.NewNaive(100),
		bandit.NewEpsilonGreedy(0.01),
		bandit.NewUCBTuned(),
		bandit.NewUCBBernoulli(),
		bandit.NewThompson(),
	}

	driver := experiments.NewDriver(config, policies,
		experiments.WithGoroutines(goroutines),
		experiments.WithReporter(writer))

	_, err = driver.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("comparison run failed")
	}

	log.Info().Msgf("stored results under %s", writer.BaseDir())
}
