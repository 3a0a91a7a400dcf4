package window

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

var kindColors = map[tetris.Kind]color.RGBA{
	tetris.KindI: {R: 102, G: 191, B: 255, A: 255},
	tetris.KindO: {R: 255, G: 203, B: 0, A: 255},
	tetris.KindT: {R: 135, G: 60, B: 190, A: 255},
	tetris.KindJ: {R: 0, G: 121, B: 241, A: 255},
	tetris.KindL: {R: 255, G: 161, B: 0, A: 255},
	tetris.KindS: {R: 0, G: 228, B: 48, A: 255},
	tetris.KindZ: {R: 255, G: 109, B: 194, A: 255},
}

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	boardColor      = color.RGBA{R: 32, G: 32, B: 44, A: 255}
	gridColor       = color.RGBA{A: 255}
	frameColor      = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	textColor       = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	gameOverColor   = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

func cellColor(kind tetris.Kind, filled bool) color.RGBA {
	if !filled {
		return boardColor
	}
	return kindColors[kind]
}
