package walker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeededSourcesMatch(t *testing.T) {
	a := NewSeededSource(5)
	b := NewSeededSource(5)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(4), b.Intn(4), "Draw %d diverged between equally seeded sources", i)
	}
}

func TestSeededSourcesDiverge(t *testing.T) {
	a := NewSeededSource(1)
	b := NewSeededSource(2)

	same := true
	for i := 0; i < 100; i++ {
		if a.Intn(4) != b.Intn(4) {
			same = false
			break
		}
	}
	require.False(t, same, "Different seeds should not replay the same stream")
}
