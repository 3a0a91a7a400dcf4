// Package window is the real-time windowed front-end built on ebiten.
package window

import (
	"image"

	"github.com/plus3/blockfall/tetris"
)

const (
	CellSize   = 30
	margin     = 20
	panelWidth = 180
	lineHeight = 20
)

// ScreenSize returns the logical screen size for a field of the given size.
func ScreenSize(width, height int) (int, int) {
	return margin*3 + width*CellSize + panelWidth, margin*2 + height*CellSize
}

// cellRect returns the screen rectangle covered by a playfield cell.
func cellRect(c tetris.Coord) image.Rectangle {
	origin := image.Pt(margin+c.X*CellSize, margin+c.Y*CellSize)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(CellSize, CellSize))}
}

// boardRect is the area of the whole playfield.
func boardRect(width, height int) image.Rectangle {
	return image.Rect(margin, margin, margin+width*CellSize, margin+height*CellSize)
}

// panelOrigin is where the score panel text starts.
func panelOrigin(width int) image.Point {
	return image.Pt(margin*2+width*CellSize, margin)
}
