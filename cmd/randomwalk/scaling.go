package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"randomwalk/experiments"
	"randomwalk/experiments/metrics"
)

// scalingCmd measures how batch throughput responds to the pool size.
var scalingCmd = &cobra.Command{
	Use:   "scaling",
	Short: "Measure batch throughput across worker pool sizes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, out := batchConfig(cmd, "scaling")

		records, err := experiments.RunScalingExperiment(cfg)
		if err != nil {
			return err
		}

		for _, record := range records {
			log.Info().Msgf("workers %d: %d walks in %s (%.2f walks/s)",
				record.Workers, record.Walks, record.Elapsed, record.WalksPerSecond)
		}

		if out == "" {
			return nil
		}
		writer, err := metrics.NewWriter(out, cfg.Name)
		if err != nil {
			return err
		}
		if err := writer.WriteScalingRecords(records); err != nil {
			return err
		}
		log.Info().Msgf("stored results in %s", writer.Dir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scalingCmd)

	addBatchFlags(scalingCmd)
}
