package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"randomwalk/grid"
	"randomwalk/render"
	"randomwalk/walker"
)

// runCmd performs a single walk and reports the resulting statistics.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single walk and report its statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		steps, _ := cmd.Flags().GetInt("steps")
		maxAttempts, _ := cmd.Flags().GetInt("max-attempts")
		seed, _ := cmd.Flags().GetUint64("seed")
		startX, _ := cmd.Flags().GetInt("start-x")
		startY, _ := cmd.Flags().GetInt("start-y")
		view, _ := cmd.Flags().GetString("view")
		every, _ := cmd.Flags().GetInt("every")

		if view != "none" && view != "ascii" && view != "live" {
			return fmt.Errorf("unknown view %q (want none, ascii or live)", view)
		}

		regionOpts := []grid.Option{}
		if startX >= 0 || startY >= 0 {
			if startX < 0 || startY < 0 {
				return fmt.Errorf("start-x and start-y must be given together")
			}
			regionOpts = append(regionOpts, grid.WithStart(grid.Point{X: startX, Y: startY}))
		}
		region, err := grid.NewRegion(width, height, regionOpts...)
		if err != nil {
			return err
		}

		walkOpts := []walker.Option{}
		if seed != 0 {
			walkOpts = append(walkOpts, walker.WithSeed(seed))
		}
		if every > 0 {
			walkOpts = append(walkOpts, walker.WithStepHook(progressHook(every)))
		}
		e := walker.New(region, walkOpts...)

		log.Info().Msgf("starting walk: %d steps on %dx%d from %s...", steps, width, height, region.Start())

		stats, err := e.Simulate(steps, maxAttempts)
		if err != nil {
			if !errors.Is(err, walker.ErrRetryExhausted) {
				return err
			}
			log.Warn().Msgf("walk stopped early: %v", err)
		}

		logStatistics(region, stats)

		switch view {
		case "ascii":
			fmt.Print(render.ASCII(region, stats))
		case "live":
			viewer, err := render.NewViewer(region, stats)
			if err != nil {
				return err
			}
			return viewer.Run()
		}
		return nil
	},
}

// progressHook logs every nth committed step and every failed one.
func progressHook(every int) walker.StepHook {
	return func(ev walker.StepEvent) {
		if !ev.Committed {
			log.Warn().Msgf("no valid move found after %d attempts at %s", ev.Attempts, ev.Position)
			return
		}
		if ev.StepsTaken%every == 0 {
			log.Info().Msgf("step %d: position %s, blocked %d", ev.StepsTaken, ev.Position, ev.BlockedAttempts)
		}
	}
}

// logStatistics reports the final snapshot through the structured logger.
func logStatistics(region grid.Region, stats walker.Statistics) {
	width, height := region.Dimensions()
	event := log.Info().
		Str("region", fmt.Sprintf("%dx%d", width, height)).
		Int("steps", stats.StepsTaken).
		Int("blocked", stats.BlockedAttempts).
		Str("start", stats.Start.String()).
		Str("position", stats.Position.String()).
		Float64("euclidean", stats.Euclidean).
		Int("manhattan", stats.Manhattan)
	if efficiency, ok := stats.Efficiency(); ok {
		event = event.Float64("efficiency_pct", efficiency)
	}
	event.Msg("walk finished")
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("width", envs.Width, "Region width in cells")
	runCmd.Flags().Int("height", envs.Height, "Region height in cells")
	runCmd.Flags().Int("steps", envs.Steps, "Number of steps to attempt")
	runCmd.Flags().Int("max-attempts", envs.MaxAttempts, "Sampling budget per step")
	runCmd.Flags().Uint64("seed", envs.Seed, "Random seed (0 means wall clock)")
	runCmd.Flags().Int("start-x", -1, "Start column (defaults to the center)")
	runCmd.Flags().Int("start-y", -1, "Start row (defaults to the center)")
	runCmd.Flags().String("view", "ascii", "How to show the finished walk: none, ascii or live")
	runCmd.Flags().Int("every", 10, "Log progress every n steps (0 disables)")
}
