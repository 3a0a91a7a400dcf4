// Package term is the real-time terminal front-end. Each playfield cell is
// drawn as two terminal columns so pieces look square.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

const (
	originX    = 1
	originY    = 1
	cellWidth  = 2
	panelGap   = 3
	panelWidth = 24
)

var controls = []string{
	"Controls:",
	"  <- ->  a d  move",
	"  ^      w    rotate",
	"  v      s    soft drop",
	"  space  x    hard drop",
	"  r           restart",
	"  q  esc      quit",
}

// Renderer draws the engine onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Size returns the terminal area needed for a field of the given size.
func Size(width, height int) (int, int) {
	return originX + width*cellWidth + 1 + panelGap + panelWidth, originY + height + 1
}

func (r *Renderer) Render(e *tetris.Engine) {
	r.screen.Clear()
	r.drawFrame(e.Width(), e.Height())

	for c := range e.Coords() {
		kind, filled := e.CellAt(c)
		style := cellStyle(kind, filled)
		x, y := originX+c.X*cellWidth, originY+c.Y
		for i := range cellWidth {
			r.screen.SetContent(x+i, y, ' ', nil, style)
		}
	}

	r.drawPanel(e)
	r.screen.Show()
}

func (r *Renderer) drawFrame(width, height int) {
	left, right := originX-1, originX+width*cellWidth
	top, bottom := originY-1, originY+height
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, frameStyle)
		r.screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, frameStyle)
		r.screen.SetContent(right, y, '│', nil, frameStyle)
	}
	r.screen.SetContent(left, top, '┌', nil, frameStyle)
	r.screen.SetContent(right, top, '┐', nil, frameStyle)
	r.screen.SetContent(left, bottom, '└', nil, frameStyle)
	r.screen.SetContent(right, bottom, '┘', nil, frameStyle)
}

func (r *Renderer) drawPanel(e *tetris.Engine) {
	x := originX + e.Width()*cellWidth + 1 + panelGap
	y := originY

	r.text(x, y, "BLOCKFALL", textStyle.Bold(true))
	r.text(x, y+2, fmt.Sprintf("Score: %d", e.Score()), scoreStyle)
	r.text(x, y+3, fmt.Sprintf("Lines: %d", e.Stats().Lines), textStyle)

	if e.IsGameOver() {
		r.text(x, y+5, "GAME OVER", overStyle)
		r.text(x, y+6, "r to restart, q to quit", hintStyle)
	} else {
		r.text(x, y+5, "Playing", playStyle)
	}

	for i, line := range controls {
		r.text(x, y+8+i, line, hintStyle)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
