package grid

// Direction is one of the four cardinal moves a walker can attempt.
type Direction int

const (
	Up    Direction = iota // (0, -1)
	Down                   // (0, 1)
	Left                   // (-1, 0)
	Right                  // (1, 0)
)

// Directions lists every direction in canonical order. Sampling an index in
// [0, len(Directions)) yields the uniform step distribution.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit displacement of the direction. Up decreases Y
// because Y grows downward.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
