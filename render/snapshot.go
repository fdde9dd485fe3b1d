package render

import (
	"github.com/lixenwraith/snake/engine"
)

// SaveSnapshot paints the session's final board and game over lines on a fresh
// raster canvas and writes it as an image to path
func SaveSnapshot(s *engine.Session, palette Palette, cellSize int, path string, scale float64) error {
	canvas, err := NewCanvasSurface(s.Width, s.Height, cellSize, palette)
	if err != nil {
		return err
	}
	if err := NewPainter(canvas, palette).PresentFinal(s); err != nil {
		return err
	}
	return canvas.SavePNG(path, scale)
}
