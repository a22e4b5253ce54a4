package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"banditsim/experiments"
)

// Writer persists a finished comparison as CSV files under a timestamped
// directory: the numeric hand-off an external plotter consumes.
type Writer struct {
	baseDir string
}

var _ experiments.Reporter = (*Writer)(nil)

func NewWriter(outDir string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WriteRunConfig stores the run's configuration alongside its results.
func (w *Writer) WriteRunConfig(config experiments.Config) error {
	path := filepath.Join(w.baseDir, "run_config.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run config file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"samples", "arms", "experiments", "prior_a", "prior_b", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run config header: %w", err)
	}

	row := []string{
		strconv.Itoa(config.Samples),
		strconv.Itoa(config.Arms),
		strconv.Itoa(config.Experiments),
		strconv.FormatFloat(config.PriorA, 'g', -1, 64),
		strconv.FormatFloat(config.PriorB, 'g', -1, 64),
		strconv.FormatUint(config.Seed, 10),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write run config row: %w", err)
	}

	return nil
}

// Report writes one row per round: the round index followed by each policy's
// mean cumulative regret.
func (w *Writer) Report(result experiments.Result) error {
	path := filepath.Join(w.baseDir, "regret.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create regret file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := append([]string{"round"}, result.Labels...)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write regret header: %w", err)
	}

	rows, cols := result.Regret.Dims()
	for i := 0; i < rows; i++ {
		row := make([]string, 0, cols+1)
		row = append(row, strconv.Itoa(i))
		for j := 0; j < cols; j++ {
			row = append(row, strconv.FormatFloat(result.Regret.At(i, j), 'g', -1, 64))
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write regret row: %w", err)
		}
	}

	return nil
}
