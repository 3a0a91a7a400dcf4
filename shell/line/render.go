// Package line is a line-based text front-end: the board is printed after
// every command and gravity catches up on the time spent typing.
package line

import (
	"fmt"
	"io"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

const clearScreen = "\x1b[2J\x1b[H"

var glyphs = map[tetris.Kind]string{
	tetris.KindI: "II",
	tetris.KindO: "OO",
	tetris.KindT: "TT",
	tetris.KindJ: "JJ",
	tetris.KindL: "LL",
	tetris.KindS: "SS",
	tetris.KindZ: "ZZ",
}

const emptyGlyph = " ."

var controls = []string{
	"Controls:",
	"  a/d  move left/right",
	"  w    rotate",
	"  s    soft drop",
	"  x    hard drop",
	"  r    restart",
	"  q    quit",
}

// Renderer prints the board as text. The first write error is kept and
// reported by Err; later frames are not written.
type Renderer struct {
	w     io.Writer
	clear bool
	err   error
}

// NewRenderer writes frames to w. When clear is set each frame starts with an
// ANSI clear-screen sequence.
func NewRenderer(w io.Writer, clear bool) *Renderer {
	return &Renderer{w: w, clear: clear}
}

func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) Render(e *tetris.Engine) {
	if r.err != nil {
		return
	}
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(&b, "Score: %d  Lines: %d\n", e.Score(), e.Stats().Lines)

	border := strings.Repeat("─", e.Width()*len(emptyGlyph))
	b.WriteString("┌" + border + "┐\n")
	for y := range e.Height() {
		b.WriteString("│")
		for x := range e.Width() {
			b.WriteString(glyph(e.CellAt(tetris.Coord{X: x, Y: y})))
		}
		b.WriteString("│\n")
	}
	b.WriteString("└" + border + "┘\n")

	if e.IsGameOver() {
		fmt.Fprintf(&b, "GAME OVER! Final score: %d\n", e.Score())
	} else {
		b.WriteString(strings.Join(controls, "\n") + "\n")
	}

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		r.err = fmt.Errorf("write frame: %w", err)
	}
}

func glyph(kind tetris.Kind, filled bool) string {
	if !filled {
		return emptyGlyph
	}
	return glyphs[kind]
}
