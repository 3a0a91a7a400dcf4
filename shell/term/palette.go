package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var kindColors = map[tetris.Kind]tcell.Color{
	tetris.KindI: tcell.NewRGBColor(0, 212, 255),
	tetris.KindO: tcell.NewRGBColor(255, 215, 0),
	tetris.KindT: tcell.NewRGBColor(168, 85, 247),
	tetris.KindS: tcell.NewRGBColor(16, 185, 129),
	tetris.KindZ: tcell.NewRGBColor(239, 68, 68),
	tetris.KindJ: tcell.NewRGBColor(59, 130, 246),
	tetris.KindL: tcell.NewRGBColor(249, 115, 22),
}

var (
	emptyStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(15, 52, 96))
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	scoreStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 200, 255)).Bold(true)
	overStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(239, 68, 68)).Bold(true)
	playStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(16, 185, 129))
	hintStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func cellStyle(kind tetris.Kind, filled bool) tcell.Style {
	if !filled {
		return emptyStyle
	}
	return tcell.StyleDefault.Background(kindColors[kind])
}
