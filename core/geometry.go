package core

// Point is a board cell coordinate, y grows upward
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Direction is a cardinal unit move, DirNone is a stationary move
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var directionDeltas = [...]Point{
	DirNone:  {0, 0},
	DirUp:    {0, 1},
	DirDown:  {0, -1},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
}

var directionNames = [...]string{
	DirNone:  "none",
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// Delta returns the unit vector of the direction
func (d Direction) Delta() Point {
	if int(d) >= len(directionDeltas) {
		return Point{}
	}
	return directionDeltas[d]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// Approach classifies how a mover enters an occupied cell
type Approach uint8

const (
	ApproachAny Approach = iota
	ApproachTop
	ApproachBottom
	ApproachSide
)

func (a Approach) String() string {
	switch a {
	case ApproachTop:
		return "top"
	case ApproachBottom:
		return "bottom"
	case ApproachSide:
		return "side"
	}
	return "any"
}

// ApproachOf derives the approach class purely from the move delta
// A mover above its target (moving down) arrives on top of the occupant
func ApproachOf(from, to Point) Approach {
	switch {
	case from.X != to.X:
		return ApproachSide
	case from.Y > to.Y:
		return ApproachTop
	default:
		return ApproachBottom
	}
}

// Sign returns -1, 0 or 1
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Abs returns the absolute value of v
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
