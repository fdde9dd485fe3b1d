package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// ColorToTcell converts any colour to a truecolor tcell.Color
func ColorToTcell(c color.Color) tcell.Color {
	rgba := toRGBA(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
