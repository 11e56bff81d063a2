package walker

import (
	"math"

	"randomwalk/grid"
)

// Statistics is a point-in-time snapshot of a walk. Path is a copy; mutating
// it does not touch the engine.
type Statistics struct {
	StepsTaken      int
	BlockedAttempts int
	Start           grid.Point
	Position        grid.Point
	Path            []grid.Point
	Euclidean       float64 // straight-line distance from start to position
	Manhattan       int     // |dx| + |dy| from start to position
}

// Efficiency returns committed steps as a percentage of all sampling
// attempts. The bool is false only when nothing has been sampled yet.
func (s Statistics) Efficiency() (float64, bool) {
	total := s.StepsTaken + s.BlockedAttempts
	if total == 0 {
		return 0, false
	}
	return float64(s.StepsTaken) / float64(total) * 100, true
}

// Statistics computes a fresh snapshot of the current walk state. It never
// mutates the engine and the result shares no memory with it.
func (e *Engine) Statistics() Statistics {
	path := make([]grid.Point, len(e.path))
	copy(path, e.path)
	dx := e.position.X - e.region.Start().X
	dy := e.position.Y - e.region.Start().Y
	return Statistics{
		StepsTaken:      e.steps,
		BlockedAttempts: e.blocked,
		Start:           e.region.Start(),
		Position:        e.position,
		Path:            path,
		Euclidean:       math.Hypot(float64(dx), float64(dy)),
		Manhattan:       intAbs(dx) + intAbs(dy),
	}
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
