package tetris

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/kamstrup/intmap"
)

// Direction is a horizontal shift.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) delta() Coord {
	if d == DirectionLeft {
		return Left
	}
	return Right
}

// Stats holds running counters since the last reset.
type Stats struct {
	Pieces    int // settle events
	Lines     int // rows cleared
	LastClear int // rows cleared by the most recent settle
}

// Engine owns the playfield: the falling shape, the settled fragments,
// the score and the game-over flag. It is not safe for concurrent use;
// callers serialize every mutation.
type Engine struct {
	width    int
	height   int
	active   Shape
	settled  []Shape
	score    int
	gameOver bool
	stats    Stats
	src      *rand.PCG
	rng      *rand.Rand
}

// New creates an engine with a time-seeded piece sequence.
// It panics if width or height is not positive.
func New(width, height int) *Engine {
	return newEngine(width, height, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeeded creates an engine whose piece sequence is determined by seed.
func NewSeeded(width, height int, seed uint64) *Engine {
	return newEngine(width, height, rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newEngine(width, height int, src *rand.PCG) *Engine {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid field size %dx%d", width, height))
	}
	e := &Engine{
		width:  width,
		height: height,
		src:    src,
		rng:    rand.New(src),
	}
	e.spawn()
	return e
}

func (e *Engine) Width() int {
	return e.width
}

func (e *Engine) Height() int {
	return e.height
}

func (e *Engine) Score() int {
	return e.score
}

func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

func (e *Engine) Stats() Stats {
	return e.stats
}

// Active returns the falling shape.
func (e *Engine) Active() Shape {
	return e.active
}

// Settled returns the settled fragments in insertion order.
func (e *Engine) Settled() []Shape {
	return slices.Clone(e.settled)
}

// Clone returns an independent copy of the engine, including the state of
// its piece generator.
func (e *Engine) Clone() *Engine {
	c := *e
	c.settled = slices.Clone(e.settled)
	src := *e.src
	c.src = &src
	c.rng = rand.New(c.src)
	return &c
}

// Reset discards the settled shapes, zeroes score and counters and spawns a
// fresh piece. The field size is kept.
func (e *Engine) Reset() {
	e.settled = nil
	e.score = 0
	e.stats = Stats{}
	e.gameOver = false
	e.spawn()
}

// Coords iterates every cell of the field row by row, left to right.
func (e *Engine) Coords() iter.Seq[Coord] {
	width, height := e.width, e.height
	return func(yield func(Coord) bool) {
		for y := range height {
			for x := range width {
				if !yield(Coord{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// CellAt returns the kind occupying c. The falling shape wins over settled
// ones; among settled shapes the earliest inserted wins.
func (e *Engine) CellAt(c Coord) (Kind, bool) {
	if e.active.Contains(c) {
		return e.active.Kind(), true
	}
	for _, s := range e.settled {
		if s.Contains(c) {
			return s.Kind(), true
		}
	}
	return 0, false
}

// IsOutOfBounds reports whether any cell of s lies outside the field.
func (e *Engine) IsOutOfBounds(s Shape) bool {
	for c := range s.All() {
		if c.X < 0 || c.X >= e.width || c.Y < 0 || c.Y >= e.height {
			return true
		}
	}
	return false
}

// IsColliding reports whether s overlaps any settled shape.
func (e *Engine) IsColliding(s Shape) bool {
	for _, settled := range e.settled {
		if settled.CollidesWith(s) {
			return true
		}
	}
	return false
}

func (e *Engine) fits(s Shape) bool {
	return !e.IsOutOfBounds(s) && !e.IsColliding(s)
}

// Step moves the falling shape down one row. When it cannot move, it settles,
// full rows are cleared and scored, and a new shape is spawned.
func (e *Engine) Step() {
	if e.gameOver {
		return
	}
	next := e.active.Translate(Down)
	if e.fits(next) {
		e.active = next
		return
	}
	e.settle()
}

// Shift moves the falling shape one column if the target is free.
func (e *Engine) Shift(d Direction) {
	if e.gameOver {
		return
	}
	if next := e.active.Translate(d.delta()); e.fits(next) {
		e.active = next
	}
}

// Rotate turns the falling shape clockwise if the target is free.
// There is no wall kick.
func (e *Engine) Rotate() {
	if e.gameOver {
		return
	}
	if next := e.active.Rotate(); e.fits(next) {
		e.active = next
	}
}

// HardDrop moves the falling shape to the lowest free position and settles it.
func (e *Engine) HardDrop() {
	if e.gameOver {
		return
	}
	for {
		next := e.active.Translate(Down)
		if !e.fits(next) {
			break
		}
		e.active = next
	}
	e.Step()
}

// IsRowFull reports whether settled cells cover every column of row y.
func (e *Engine) IsRowFull(y int) bool {
	columns := intmap.New[int, struct{}](e.width)
	for _, s := range e.settled {
		for c := range s.All() {
			if c.Y == y {
				columns.Put(c.X, struct{}{})
			}
		}
	}
	return columns.Len() == e.width
}

func (e *Engine) settle() {
	e.settled = append(e.settled, e.active)
	cleared := e.clearFullRows()

	e.score += Points(cleared)
	e.stats.Pieces++
	e.stats.Lines += cleared
	e.stats.LastClear = cleared

	e.spawn()
}

// clearFullRows makes one pass over the original row indices, top to bottom,
// removing each row that is full against the already compacted fragments.
func (e *Engine) clearFullRows() int {
	cleared := 0
	for y := range e.height {
		if !e.IsRowFull(y) {
			continue
		}
		for i, s := range e.settled {
			e.settled[i] = s.RemoveRow(y)
		}
		cleared++
	}
	if cleared > 0 {
		e.settled = slices.DeleteFunc(e.settled, func(s Shape) bool {
			return s.Len() == 0
		})
	}
	return cleared
}

func (e *Engine) spawn() {
	e.active = RandomShape(e.rng).Translate(Coord{X: e.width / 2, Y: 0})
	if !e.fits(e.active) {
		e.gameOver = true
	}
}

// Points returns the score awarded for clearing lines rows in one settle.
func Points(lines int) int {
	switch lines {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	case 4:
		return 800
	default:
		return 0
	}
}
