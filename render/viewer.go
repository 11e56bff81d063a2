package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"randomwalk/grid"
	"randomwalk/walker"
)

const defaultFrameInterval = 40 * time.Millisecond

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePath   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStart  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Viewer replays a finished walk in the terminal, one path point per frame.
type Viewer struct {
	screen   tcell.Screen
	region   grid.Region
	stats    walker.Statistics
	interval time.Duration

	frame  int // path points currently shown, at least 1
	paused bool
}

type ViewerOption func(v *Viewer)

// WithInterval sets the delay between replay frames.
func WithInterval(interval time.Duration) ViewerOption {
	return func(v *Viewer) {
		if interval > 0 {
			v.interval = interval
		}
	}
}

// NewViewer takes over the terminal and prepares a replay of stats. Call Run
// to start it; Run restores the terminal when it returns.
func NewViewer(region grid.Region, stats walker.Statistics, opts ...ViewerOption) (*Viewer, error) {
	if len(stats.Path) == 0 {
		return nil, fmt.Errorf("nothing to replay: empty path")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	return newViewer(screen, region, stats, opts...), nil
}

// newViewer wires a viewer to any screen; tests pass a simulation screen.
func newViewer(screen tcell.Screen, region grid.Region, stats walker.Statistics, opts ...ViewerOption) *Viewer {
	v := &Viewer{
		screen:   screen,
		region:   region,
		stats:    stats,
		interval: defaultFrameInterval,
		frame:    1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run drives the replay until the user quits with q, Escape or Ctrl-C.
// Space pauses, r restarts from the first frame. The final frame stays on
// screen until quit.
func (v *Viewer) Run() error {
	defer v.screen.Fini()

	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return nil
			}
			v.draw()

		case <-ticker.C:
			v.advance()
			v.draw()
		}
	}
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'r':
				v.frame = 1
				v.paused = false
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

func (v *Viewer) advance() {
	if v.paused {
		return
	}
	if v.frame < len(v.stats.Path) {
		v.frame++
	}
}

func (v *Viewer) done() bool {
	return v.frame == len(v.stats.Path)
}

func (v *Viewer) draw() {
	v.screen.Clear()

	width, height := v.region.Dimensions()
	screenWidth, screenHeight := v.screen.Size()
	offsetX := (screenWidth - width - 2) / 2
	offsetY := (screenHeight - height - 2) / 2
	if offsetX < 0 {
		offsetX = 0
	}
	if offsetY < 0 {
		offsetY = 0
	}

	v.drawBorder(offsetX, offsetY, width, height)

	shown := v.stats.Path[:v.frame]
	for _, p := range shown {
		v.screen.SetContent(offsetX+1+p.X, offsetY+1+p.Y, cellVisited, nil, stylePath)
	}
	start := v.stats.Start
	v.screen.SetContent(offsetX+1+start.X, offsetY+1+start.Y, cellStart, nil, styleStart)
	head := shown[len(shown)-1]
	if head != start || v.frame > 1 {
		v.screen.SetContent(offsetX+1+head.X, offsetY+1+head.Y, ' ', nil, styleHead)
	}

	v.drawFooter(offsetX, offsetY+height+2, head)

	v.screen.Show()
}

func (v *Viewer) drawBorder(x, y, width, height int) {
	for col := 1; col <= width; col++ {
		v.screen.SetContent(x+col, y, '-', nil, styleBorder)
		v.screen.SetContent(x+col, y+height+1, '-', nil, styleBorder)
	}
	for row := 1; row <= height; row++ {
		v.screen.SetContent(x, y+row, '|', nil, styleBorder)
		v.screen.SetContent(x+width+1, y+row, '|', nil, styleBorder)
	}
	for _, corner := range [][2]int{{0, 0}, {width + 1, 0}, {0, height + 1}, {width + 1, height + 1}} {
		v.screen.SetContent(x+corner[0], y+corner[1], '+', nil, styleBorder)
	}
}

func (v *Viewer) drawFooter(x, y int, head grid.Point) {
	text := fmt.Sprintf("step %d/%d  position %s", v.frame-1, v.stats.StepsTaken, head)
	if v.paused {
		text += "  [paused]"
	}
	if v.done() {
		text += fmt.Sprintf("  blocked %d  [q quit, r replay]", v.stats.BlockedAttempts)
	}
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, styleText)
	}
}
