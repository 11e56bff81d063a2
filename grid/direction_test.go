package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionDelta(t *testing.T) {
	require.Equal(t, Point{X: 0, Y: -1}, Up.Delta(), "Up should decrease Y")
	require.Equal(t, Point{X: 0, Y: 1}, Down.Delta(), "Down should increase Y")
	require.Equal(t, Point{X: -1, Y: 0}, Left.Delta())
	require.Equal(t, Point{X: 1, Y: 0}, Right.Delta())
}

func TestDirectionString(t *testing.T) {
	names := map[Direction]string{Up: "up", Down: "down", Left: "left", Right: "right"}
	for d, want := range names {
		require.Equal(t, want, d.String())
	}
	require.Equal(t, "unknown", Direction(42).String())
}

func TestDirectionsOrder(t *testing.T) {
	// Sampling relies on this order: index 0 through 3 must map to
	// up, down, left, right.
	want := [4]Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	for i, d := range Directions {
		require.Equal(t, want[i], d.Delta(), "Directions[%d]", i)
	}
}

func TestDeltasAreUnitDisplacements(t *testing.T) {
	for _, d := range Directions {
		delta := d.Delta()
		require.Equal(t, 1, abs(delta.X)+abs(delta.Y), "%s should displace by exactly one cell", d)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
