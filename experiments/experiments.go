package experiments

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"randomwalk/experiments/metrics"
	"randomwalk/grid"
	"randomwalk/walker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultWalks is the batch size used when a config leaves it unset.
	DefaultWalks = 30

	progressEvery     = 10 // walks between progress log lines
	maxDefaultWorkers = 8
)

// ErrInvalidConfig is returned when a batch config cannot be run.
var ErrInvalidConfig = errors.New("invalid batch configuration")

// Config describes one batch of independent walks.
type Config struct {
	Name        string // label used in logs and output paths
	Width       int
	Height      int
	Start       *grid.Point // nil means the region center
	Walks       int
	Steps       int
	MaxAttempts int    // non-positive means walker.DefaultMaxAttempts
	Workers     int    // non-positive means min(NumCPU, 8)
	Seed        uint64 // base seed; walk i runs on Seed+i
}

// Run executes cfg.Walks independent walks across a fixed pool of workers
// and aggregates their statistics. Walk i runs on its own engine seeded
// with cfg.Seed+i, so the batch is reproducible as a whole while every walk
// stays independent of its neighbors.
func Run(cfg Config) (metrics.Summary, []metrics.WalkRecord, error) {
	region, err := regionFor(cfg)
	if err != nil {
		return metrics.Summary{}, nil, err
	}
	if cfg.Walks <= 0 {
		return metrics.Summary{}, nil, fmt.Errorf("%w: walks must be positive, got %d", ErrInvalidConfig, cfg.Walks)
	}
	if cfg.Steps <= 0 {
		return metrics.Summary{}, nil, fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidConfig, cfg.Steps)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > maxDefaultWorkers {
			workers = maxDefaultWorkers
		}
	}

	runID := uuid.NewString()
	log.Info().Str("run_id", runID).Msgf("starting %s batch: %d walks of %d steps on %dx%d with %d workers...",
		name(cfg), cfg.Walks, cfg.Steps, cfg.Width, cfg.Height, workers)

	records := make([]metrics.WalkRecord, cfg.Walks)
	jobs := make(chan int)
	progress := &metrics.Progress{}
	var wg sync.WaitGroup

	start := time.Now()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i] = runWalk(region, cfg, i)
				if n := progress.Add(); n%progressEvery == 0 || n == cfg.Walks {
					log.Info().Msgf("completed %d of %d walks", n, cfg.Walks)
				}
			}
		}()
	}
	for i := 0; i < cfg.Walks; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary := metrics.Summarize(runID, records, time.Since(start))
	log.Info().Msgf("completed %s batch: %d of %d walks ran to completion in %s",
		name(cfg), summary.Completed, summary.Walks, summary.Elapsed)

	return summary, records, nil
}

// runWalk executes one seeded walk and flattens it into a record. Each walk
// gets its own engine: engines are not safe to share across goroutines.
func runWalk(region grid.Region, cfg Config, index int) metrics.WalkRecord {
	seed := cfg.Seed + uint64(index)
	e := walker.New(region, walker.WithSeed(seed))

	started := time.Now()
	stats, err := e.Simulate(cfg.Steps, cfg.MaxAttempts)
	elapsed := time.Since(started)

	if err != nil {
		log.Warn().Uint64("seed", seed).Msgf("walk %d stopped early: %v", index+1, err)
	}

	return metrics.NewWalkRecord(index+1, seed, stats, err == nil, elapsed)
}

func regionFor(cfg Config) (grid.Region, error) {
	if cfg.Start != nil {
		return grid.NewRegion(cfg.Width, cfg.Height, grid.WithStart(*cfg.Start))
	}
	return grid.NewRegion(cfg.Width, cfg.Height)
}

func name(cfg Config) string {
	if cfg.Name == "" {
		return "walks"
	}
	return cfg.Name
}
