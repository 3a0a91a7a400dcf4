package bot

import "github.com/plus3/blockfall/tetris"

// board is the settled occupancy of a field, indexed [y][x].
type board [][]bool

func newBoard(e *tetris.Engine) board {
	b := make(board, e.Height())
	for y := range b {
		b[y] = make([]bool, e.Width())
	}
	for _, s := range e.Settled() {
		for c := range s.All() {
			if c.Y >= 0 && c.Y < len(b) && c.X >= 0 && c.X < e.Width() {
				b[c.Y][c.X] = true
			}
		}
	}
	return b
}

// columnHeights returns, per column, the distance from the floor to the
// highest filled cell.
func (b board) columnHeights() []int {
	height := len(b)
	if height == 0 {
		return nil
	}
	heights := make([]int, len(b[0]))
	for x := range heights {
		for y := range height {
			if b[y][x] {
				heights[x] = height - y
				break
			}
		}
	}
	return heights
}

type feature func(b board, cleared int) float64

// aggregateHeight sums every column height.
func aggregateHeight(b board, _ int) float64 {
	var sum int
	for _, h := range b.columnHeights() {
		sum += h
	}
	return float64(sum)
}

// holes counts empty cells with a filled cell somewhere above them.
func holes(b board, _ int) float64 {
	var count int
	if len(b) == 0 {
		return 0
	}
	for x := range b[0] {
		covered := false
		for y := range b {
			switch {
			case b[y][x]:
				covered = true
			case covered:
				count++
			}
		}
	}
	return float64(count)
}

// bumpiness sums the height differences between neighboring columns.
func bumpiness(b board, _ int) float64 {
	heights := b.columnHeights()
	var sum int
	for x := 1; x < len(heights); x++ {
		d := heights[x] - heights[x-1]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return float64(sum)
}

func linesCleared(_ board, cleared int) float64 {
	return float64(cleared)
}

// Strategy weighs board features. Higher scores are better.
type Strategy struct {
	features []feature
	weights  []float64
}

// DefaultStrategy uses the four classic features with weights tuned by
// Yiyuan Lee for the 10x20 field.
func DefaultStrategy() Strategy {
	return Strategy{
		features: []feature{aggregateHeight, linesCleared, holes, bumpiness},
		weights:  []float64{-0.510066, 0.760666, -0.35663, -0.184483},
	}
}

func (s Strategy) evaluate(b board, cleared int) float64 {
	var score float64
	for i, f := range s.features {
		score += s.weights[i] * f(b, cleared)
	}
	return score
}
