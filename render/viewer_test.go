package render

import (
	"strings"
	"testing"

	"randomwalk/grid"
	"randomwalk/walker"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	return screen
}

func replayFixture(t *testing.T) (grid.Region, walker.Statistics) {
	t.Helper()
	region, err := grid.NewRegion(4, 3, grid.WithStart(grid.Point{X: 0, Y: 0}))
	require.NoError(t, err)
	stats := walker.Statistics{
		StepsTaken:      3,
		BlockedAttempts: 5,
		Start:           grid.Point{X: 0, Y: 0},
		Position:        grid.Point{X: 2, Y: 1},
		Path: []grid.Point{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		},
	}
	return region, stats
}

func screenText(screen tcell.SimulationScreen) string {
	width, height := screen.Size()
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			primary, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(primary)
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func TestViewerReplaysFrameByFrame(t *testing.T) {
	screen := simScreen(t)
	region, stats := replayFixture(t)
	v := newViewer(screen, region, stats)

	v.draw()
	text := screenText(screen)
	require.Contains(t, text, "step 0/3")
	require.Contains(t, text, "S", "The start marker shows from the first frame")
	require.Equal(t, 0, strings.Count(text, string(cellVisited)), "Nothing is visited before the first step plays")

	v.advance()
	v.advance()
	v.draw()
	text = screenText(screen)
	require.Contains(t, text, "step 2/3")
	require.Equal(t, 1, strings.Count(text, string(cellVisited)), "Start and head cover all but one visited point")

	v.advance()
	v.draw()
	require.True(t, v.done())
	text = screenText(screen)
	require.Contains(t, text, "step 3/3")
	require.Contains(t, text, "blocked 5")
	require.Contains(t, text, "[q quit, r replay]")

	v.advance()
	require.True(t, v.done(), "The final frame holds")
}

func TestViewerControls(t *testing.T) {
	screen := simScreen(t)
	region, stats := replayFixture(t)

	t.Run("space pauses and resumes", func(t *testing.T) {
		v := newViewer(screen, region, stats)

		require.True(t, v.handleInput(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
		v.advance()
		require.Equal(t, 1, v.frame, "A paused replay must not advance")

		require.True(t, v.handleInput(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
		v.advance()
		require.Equal(t, 2, v.frame)
	})

	t.Run("r restarts the replay", func(t *testing.T) {
		v := newViewer(screen, region, stats)
		v.advance()
		v.advance()

		require.True(t, v.handleInput(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
		require.Equal(t, 1, v.frame)
		require.False(t, v.paused)
	})

	t.Run("quit keys stop the loop", func(t *testing.T) {
		v := newViewer(screen, region, stats)

		require.False(t, v.handleInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
		require.False(t, v.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
		require.False(t, v.handleInput(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	})

	t.Run("resize keeps the loop alive", func(t *testing.T) {
		v := newViewer(screen, region, stats)
		require.True(t, v.handleInput(tcell.NewEventResize(40, 12)))
	})
}

func TestViewerIntervalOption(t *testing.T) {
	screen := simScreen(t)
	region, stats := replayFixture(t)

	v := newViewer(screen, region, stats, WithInterval(0))
	require.Equal(t, defaultFrameInterval, v.interval, "Non-positive intervals fall back to the default")
}
