package experiments

import (
	"time"

	"randomwalk/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// scalingWorkerCounts is the pool-size sweep used by RunScalingExperiment.
var scalingWorkerCounts = []int{1, 2, 4, 8, 16}

// RunScalingExperiment runs the same batch once per worker count and
// measures throughput. The walk records are identical across pool sizes
// because seeding depends on walk index, not on scheduling; only elapsed
// time varies.
func RunScalingExperiment(cfg Config) ([]metrics.ScalingRecord, error) {
	log.Info().Msgf("starting scaling experiment: %d walks of %d steps per pool size...", cfg.Walks, cfg.Steps)

	records := []metrics.ScalingRecord{}
	for _, workers := range scalingWorkerCounts {
		run := cfg
		run.Workers = workers

		start := time.Now()
		summary, _, err := Run(run)
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		records = append(records, metrics.ScalingRecord{
			Workers:        workers,
			Walks:          summary.Walks,
			Elapsed:        elapsed,
			WalksPerSecond: float64(summary.Walks) / elapsed.Seconds(),
		})
		log.Info().Msgf("pool size %d finished %d walks in %s", workers, summary.Walks, elapsed)
	}

	log.Info().Msg("completed scaling experiment")
	return records, nil
}
