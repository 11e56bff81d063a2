package render

import (
	"strings"

	"randomwalk/grid"
	"randomwalk/walker"
)

const (
	cellEmpty   = ' '
	cellVisited = '·'
	cellStart   = 'S'
	cellEnd     = 'E'
)

// ASCII renders a finished walk as a bordered character grid. Row zero is
// printed first, so Y grows downward exactly like walk coordinates. The
// final position marker wins over the start marker when the walk ends where
// it began.
func ASCII(region grid.Region, stats walker.Statistics) string {
	width, height := region.Dimensions()

	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = cellEmpty
		}
	}

	mark := func(p grid.Point, r rune) {
		if region.Contains(p) {
			cells[p.Y][p.X] = r
		}
	}
	for _, p := range stats.Path {
		mark(p, cellVisited)
	}
	mark(stats.Start, cellStart)
	mark(stats.Position, cellEnd)

	var b strings.Builder
	border := "+" + strings.Repeat("-", width) + "+\n"
	b.WriteString(border)
	for _, row := range cells {
		b.WriteRune('|')
		b.WriteString(string(row))
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
