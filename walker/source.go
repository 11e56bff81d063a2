package walker

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source is the randomness capability an engine draws directions from.
// *rand.Rand from golang.org/x/exp/rand satisfies it; tests inject scripted
// implementations.
type Source interface {
	Intn(n int) int
}

// NewSeededSource returns a deterministic source. Two sources built from the
// same seed produce identical draw sequences.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// newClockSource seeds from the wall clock, for engines that did not ask
// for reproducibility.
func newClockSource() Source {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
