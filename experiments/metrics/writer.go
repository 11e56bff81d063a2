package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores batch results as CSV files in a timestamped run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>/ and returns a writer bound
// to it.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the run directory files are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteWalkRecords stores one row per walk in walks.csv. The efficiency cell
// is left empty for walks that never sampled.
func (w *Writer) WriteWalkRecords(records []WalkRecord) error {
	path := filepath.Join(w.baseDir, "walks.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create walk records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"walk", "seed", "steps_taken", "blocked_attempts", "final_x", "final_y", "euclidean", "manhattan", "efficiency", "completed", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write walk records header: %w", err)
	}

	for _, record := range records {
		efficiency := ""
		if record.Sampled() {
			efficiency = strconv.FormatFloat(record.Efficiency, 'f', 2, 64)
		}
		row := []string{
			strconv.Itoa(record.Walk),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.StepsTaken),
			strconv.Itoa(record.BlockedAttempts),
			strconv.Itoa(record.FinalX),
			strconv.Itoa(record.FinalY),
			strconv.FormatFloat(record.Euclidean, 'f', 4, 64),
			strconv.Itoa(record.Manhattan),
			efficiency,
			strconv.FormatBool(record.Completed),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write walk record row: %w", err)
		}
	}

	return nil
}

// WriteSummary stores the batch aggregates in summary.csv.
func (w *Writer) WriteSummary(summary Summary) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"run_id", "walks", "completed", "total_steps", "total_blocked", "mean_steps", "mean_euclidean", "max_euclidean", "mean_manhattan", "mean_efficiency", "elapsed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	row := []string{
		summary.RunID,
		strconv.Itoa(summary.Walks),
		strconv.Itoa(summary.Completed),
		strconv.Itoa(summary.TotalSteps),
		strconv.Itoa(summary.TotalBlocked),
		strconv.FormatFloat(summary.MeanSteps, 'f', 2, 64),
		strconv.FormatFloat(summary.MeanEuclidean, 'f', 4, 64),
		strconv.FormatFloat(summary.MaxEuclidean, 'f', 4, 64),
		strconv.FormatFloat(summary.MeanManhattan, 'f', 2, 64),
		strconv.FormatFloat(summary.MeanEfficiency, 'f', 2, 64),
		summary.Elapsed.String(),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write summary row: %w", err)
	}

	return nil
}

// WriteScalingRecords stores one row per worker-count run in scaling.csv.
func (w *Writer) WriteScalingRecords(records []ScalingRecord) error {
	path := filepath.Join(w.baseDir, "scaling.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create scaling records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"workers", "walks", "elapsed", "walks_per_second"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write scaling records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Workers),
			strconv.Itoa(record.Walks),
			record.Elapsed.String(),
			strconv.FormatFloat(record.WalksPerSecond, 'f', 2, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write scaling record row: %w", err)
		}
	}

	return nil
}
