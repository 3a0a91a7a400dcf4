package tetris

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"strings"
)

// Shape is one tetromino, either the falling piece or a settled fragment.
// Shapes are values: every operation returns a new Shape and never writes
// through to the receiver's cells.
type Shape struct {
	kind  Kind
	cells []Coord // row-major, no duplicates
	pivot Coord
}

// Spawn returns the canonical layout of k at the origin.
func Spawn(k Kind) Shape {
	if !k.Valid() {
		panic(fmt.Sprintf("tetris: invalid kind %d", k))
	}
	l := layouts[k]
	return newShape(k, l.cells[:], l.pivot)
}

// RandomShape picks one of the seven kinds uniformly using rng.
func RandomShape(rng *rand.Rand) Shape {
	return Spawn(Kinds[rng.IntN(len(Kinds))])
}

func newShape(k Kind, cells []Coord, pivot Coord) Shape {
	sorted := slices.Clone(cells)
	slices.SortFunc(sorted, compareCoords)
	return Shape{
		kind:  k,
		cells: slices.Compact(sorted),
		pivot: pivot,
	}
}

func (s Shape) Kind() Kind {
	return s.kind
}

// Pivot returns the rotation center. It need not be one of the cells.
func (s Shape) Pivot() Coord {
	return s.pivot
}

// Len returns the number of occupied cells.
func (s Shape) Len() int {
	return len(s.cells)
}

// Cells returns a row-major copy of the occupied cells.
func (s Shape) Cells() []Coord {
	return slices.Clone(s.cells)
}

// All iterates the occupied cells in row-major order.
func (s Shape) All() iter.Seq[Coord] {
	return slices.Values(s.cells)
}

// Translate offsets every cell and the pivot by delta.
func (s Shape) Translate(delta Coord) Shape {
	cells := make([]Coord, len(s.cells))
	for i, c := range s.cells {
		cells[i] = c.Add(delta)
	}
	// Translation preserves row-major order.
	return Shape{kind: s.kind, cells: cells, pivot: s.pivot.Add(delta)}
}

// Rotate turns the shape 90 degrees clockwise about its pivot using
// (x, y) -> (-y + py + px, x - px + py). The pivot is the fixed point.
func (s Shape) Rotate() Shape {
	p := s.pivot
	cells := make([]Coord, len(s.cells))
	for i, c := range s.cells {
		cells[i] = Coord{X: -c.Y + p.Y + p.X, Y: c.X - p.X + p.Y}
	}
	return newShape(s.kind, cells, p)
}

// CollidesWith reports whether s and other share any cell.
func (s Shape) CollidesWith(other Shape) bool {
	for _, c := range s.cells {
		if other.Contains(c) {
			return true
		}
	}
	return false
}

// Contains reports whether c is one of the shape's cells.
func (s Shape) Contains(c Coord) bool {
	_, found := slices.BinarySearchFunc(s.cells, c, compareCoords)
	return found
}

// RemoveRow drops every cell on row y and moves the cells above it down one
// row. Cells below y are untouched. The pivot is left where it is.
func (s Shape) RemoveRow(y int) Shape {
	cells := make([]Coord, 0, len(s.cells))
	for _, c := range s.cells {
		switch {
		case c.Y == y:
			continue
		case c.Y < y:
			cells = append(cells, Coord{X: c.X, Y: c.Y + 1})
		default:
			cells = append(cells, c)
		}
	}
	return newShape(s.kind, cells, s.pivot)
}

// Equal reports whether both shapes have the same kind, cells and pivot.
func (s Shape) Equal(other Shape) bool {
	return s.kind == other.kind && s.pivot == other.pivot && slices.Equal(s.cells, other.cells)
}

func (s Shape) String() string {
	var b strings.Builder
	b.WriteString(s.kind.String())
	b.WriteByte('{')
	for i, c := range s.cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteString(" @")
	b.WriteString(s.pivot.String())
	b.WriteByte('}')
	return b.String()
}
