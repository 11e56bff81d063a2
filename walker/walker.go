package walker

import (
	"errors"
	"fmt"

	"randomwalk/grid"
)

// DefaultMaxAttempts is the per-step sampling budget used when the caller
// passes a non-positive one.
const DefaultMaxAttempts = 1000

// ErrRetryExhausted is returned by Simulate when a step used its whole
// attempt budget without finding a cell inside the region. It reports a
// plausible outcome on cramped regions, not a programming error.
var ErrRetryExhausted = errors.New("retry budget exhausted")

// StepEvent describes the outcome of one Step call.
type StepEvent struct {
	Committed       bool           // whether a move was committed
	Direction       grid.Direction // committed direction; meaningless when Committed is false
	Position        grid.Point     // position after the call
	Attempts        int            // direction samples consumed by the call
	StepsTaken      int            // lifetime committed steps after the call
	BlockedAttempts int            // lifetime blocked attempts after the call
}

// StepHook observes step outcomes. Hooks run synchronously on the walking
// goroutine and cannot alter the walk.
type StepHook func(StepEvent)

// Engine performs a bounded random walk: one agent, uniform direction
// sampling, candidates outside the region rejected and resampled. An Engine
// is not safe for concurrent use; run parallel walks on separate engines
// with independently seeded sources.
type Engine struct {
	region grid.Region
	src    Source
	hook   StepHook

	position grid.Point
	path     []grid.Point
	steps    int
	blocked  int
}

type Option func(e *Engine)

// WithSource injects the randomness source used for direction sampling.
func WithSource(src Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.src = src
		}
	}
}

// WithSeed injects a deterministic source built from seed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.src = NewSeededSource(seed)
	}
}

// WithStepHook registers a per-step observer.
func WithStepHook(hook StepHook) Option {
	return func(e *Engine) {
		e.hook = hook
	}
}

// New returns an engine positioned on the region's start cell, which is
// also the first entry of its path. Without WithSource or WithSeed the
// engine walks on a wall-clock seeded source.
func New(region grid.Region, opts ...Option) *Engine {
	e := &Engine{
		region: region,
		src:    newClockSource(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()
	return e
}

// Step attempts to commit exactly one move. Directions are sampled uniformly
// until a candidate lands inside the region; every rejected candidate counts
// against the blocked total and the budget, and the sampler keeps no memory
// of failed candidates within the call. maxAttempts <= 0 means
// DefaultMaxAttempts.
//
// Returns true when a move committed, false when the budget ran out.
// Rejection counts persist either way; position, path and the step counter
// only change on success.
func (e *Engine) Step(maxAttempts int) bool {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		direction := grid.Directions[e.src.Intn(len(grid.Directions))]
		candidate := e.position.Add(direction.Delta())
		if !e.region.Contains(candidate) {
			e.blocked++
			continue
		}
		e.position = candidate
		e.path = append(e.path, candidate)
		e.steps++
		e.fireHook(StepEvent{
			Committed:       true,
			Direction:       direction,
			Position:        candidate,
			Attempts:        attempt,
			StepsTaken:      e.steps,
			BlockedAttempts: e.blocked,
		})
		return true
	}
	e.fireHook(StepEvent{
		Committed:       false,
		Position:        e.position,
		Attempts:        maxAttempts,
		StepsTaken:      e.steps,
		BlockedAttempts: e.blocked,
	})
	return false
}

// Simulate runs up to numSteps sequential steps, stopping at the first step
// that exhausts its attempt budget. The returned snapshot reflects however
// many steps actually completed; on an early stop the error wraps
// ErrRetryExhausted with the ordinal of the failed step.
func (e *Engine) Simulate(numSteps, maxAttempts int) (Statistics, error) {
	for i := 1; i <= numSteps; i++ {
		if !e.Step(maxAttempts) {
			return e.Statistics(), fmt.Errorf("step %d of %d: %w", i, numSteps, ErrRetryExhausted)
		}
	}
	return e.Statistics(), nil
}

// Reset puts the walker back on the start cell with zeroed counters and a
// path holding only the start. The random source keeps its stream; callers
// that want an exact replay build a new engine with the same seed.
func (e *Engine) Reset() {
	e.position = e.region.Start()
	e.path = []grid.Point{e.position}
	e.steps = 0
	e.blocked = 0
}

// Position returns the walker's current cell.
func (e *Engine) Position() grid.Point {
	return e.position
}

// Region returns the region the walk is bounded by.
func (e *Engine) Region() grid.Region {
	return e.region
}

func (e *Engine) fireHook(event StepEvent) {
	if e.hook != nil {
		e.hook(event)
	}
}
