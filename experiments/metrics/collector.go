package metrics

import (
	"sync/atomic"
	"time"

	"randomwalk/walker"
)

// WalkRecord is the per-walk row of a batch run.
type WalkRecord struct {
	Walk            int    // 1-based index within the batch
	Seed            uint64 // seed the walk's source was built from
	StepsTaken      int
	BlockedAttempts int
	FinalX          int
	FinalY          int
	Euclidean       float64
	Manhattan       int
	Efficiency      float64 // meaningful only when Sampled() is true
	Completed       bool    // whether every requested step committed
	Duration        time.Duration
}

// NewWalkRecord flattens a snapshot into a record.
func NewWalkRecord(walk int, seed uint64, stats walker.Statistics, completed bool, duration time.Duration) WalkRecord {
	efficiency, _ := stats.Efficiency()
	return WalkRecord{
		Walk:            walk,
		Seed:            seed,
		StepsTaken:      stats.StepsTaken,
		BlockedAttempts: stats.BlockedAttempts,
		FinalX:          stats.Position.X,
		FinalY:          stats.Position.Y,
		Euclidean:       stats.Euclidean,
		Manhattan:       stats.Manhattan,
		Efficiency:      efficiency,
		Completed:       completed,
		Duration:        duration,
	}
}

// Sampled reports whether the walk drew any candidate at all; Efficiency is
// undefined otherwise.
func (r WalkRecord) Sampled() bool {
	return r.StepsTaken+r.BlockedAttempts > 0
}

// Summary aggregates one batch run.
type Summary struct {
	RunID          string
	Walks          int
	Completed      int
	TotalSteps     int
	TotalBlocked   int
	MeanSteps      float64
	MeanEuclidean  float64
	MaxEuclidean   float64
	MeanManhattan  float64
	MeanEfficiency float64 // over walks that sampled at least once
	Elapsed        time.Duration
}

// Summarize folds the records of one batch run into a summary.
func Summarize(runID string, records []WalkRecord, elapsed time.Duration) Summary {
	summary := Summary{RunID: runID, Walks: len(records), Elapsed: elapsed}
	if len(records) == 0 {
		return summary
	}

	sampled := 0
	for _, record := range records {
		if record.Completed {
			summary.Completed++
		}
		summary.TotalSteps += record.StepsTaken
		summary.TotalBlocked += record.BlockedAttempts
		summary.MeanEuclidean += record.Euclidean
		if record.Euclidean > summary.MaxEuclidean {
			summary.MaxEuclidean = record.Euclidean
		}
		summary.MeanManhattan += float64(record.Manhattan)
		if record.Sampled() {
			summary.MeanEfficiency += record.Efficiency
			sampled++
		}
	}

	walks := float64(len(records))
	summary.MeanSteps = float64(summary.TotalSteps) / walks
	summary.MeanEuclidean /= walks
	summary.MeanManhattan /= walks
	if sampled > 0 {
		summary.MeanEfficiency /= float64(sampled)
	}
	return summary
}

// ScalingRecord is one worker-count measurement of a scaling experiment.
type ScalingRecord struct {
	Workers        int
	Walks          int
	Elapsed        time.Duration
	WalksPerSecond float64
}

// Progress counts completed walks across worker goroutines.
type Progress struct {
	completed atomic.Int64
}

// Add records one more completed walk and returns the running total.
func (p *Progress) Add() int {
	return int(p.completed.Add(1))
}

// Completed returns the number of walks finished so far.
func (p *Progress) Completed() int {
	return int(p.completed.Load())
}
