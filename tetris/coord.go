package tetris

import "fmt"

// Coord is a playfield cell. X grows to the right and Y grows downward,
// with (0,0) the top-left cell.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

var (
	Up    = Coord{X: 0, Y: -1}
	Down  = Coord{X: 0, Y: 1}
	Left  = Coord{X: -1, Y: 0}
	Right = Coord{X: 1, Y: 0}
)

// compareCoords orders coordinates row-major: by Y, then by X.
func compareCoords(a, b Coord) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
