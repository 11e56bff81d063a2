package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a region cannot be constructed,
// such as non-positive dimensions or a start cell outside the rectangle.
var ErrInvalidConfiguration = errors.New("invalid region configuration")

// Point is a cell coordinate. X grows rightward and Y grows downward, so
// (0, 0) is the top-left cell.
type Point struct {
	X int
	Y int
}

// Add returns the point displaced by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Region is a bounded rectangle of walkable cells. A Region is immutable
// after construction.
type Region struct {
	width  int
	height int
	start  Point
}

type Option func(r *Region)

// WithStart overrides the default start cell (the integer center).
func WithStart(p Point) Option {
	return func(r *Region) {
		r.start = p
	}
}

// NewRegion validates the configuration and returns the region. Dimensions
// must be at least 1x1 and the start cell must lie inside the rectangle.
func NewRegion(width, height int, opts ...Option) (Region, error) {
	if width <= 0 || height <= 0 {
		return Region{}, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidConfiguration, width, height)
	}
	r := Region{
		width:  width,
		height: height,
		start:  Point{X: width / 2, Y: height / 2},
	}
	for _, opt := range opts {
		opt(&r)
	}
	if !r.Contains(r.start) {
		return Region{}, fmt.Errorf("%w: start %s outside %dx%d", ErrInvalidConfiguration, r.start, width, height)
	}
	return r, nil
}

// Contains reports whether p lies inside the region. Cells on the boundary
// rows and columns are inside; x == width or y == height is already outside.
func (r Region) Contains(p Point) bool {
	return p.X >= 0 && p.X < r.width && p.Y >= 0 && p.Y < r.height
}

// Dimensions returns the width and height of the region.
func (r Region) Dimensions() (width, height int) {
	return r.width, r.height
}

// Start returns the cell a walk begins on.
func (r Region) Start() Point {
	return r.start
}

// Size returns the number of cells in the region.
func (r Region) Size() int {
	return r.width * r.height
}
