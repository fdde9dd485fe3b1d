package render

import (
	"image/color"

	"github.com/lixenwraith/snake/components"
)

// TextStyle describes game over text
type TextStyle struct {
	Color color.Color
	Bold  bool
	// Size in points, ignored by character surfaces
	Size float64
}

// Surface is a drawing target addressed in grid cells.
// Cells outside the surface are clipped silently.
type Surface interface {
	// Clear fills the whole surface with the background colour
	Clear()
	// DrawCell fills one grid cell with a solid colour
	DrawCell(col, row int, c color.Color)
	// DrawText draws text centred on the top-left corner of cell at
	DrawText(at components.Position, text string, style TextStyle)
	// Show flushes the frame to its destination
	Show() error
}
