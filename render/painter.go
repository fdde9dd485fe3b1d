package render

import (
	"fmt"

	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// Painter is the rendering step of the game loop: it reads a session and draws it onto a Surface
type Painter struct {
	surface Surface
	palette Palette
}

// NewPainter creates a painter for surface
func NewPainter(surface Surface, palette Palette) *Painter {
	return &Painter{surface: surface, palette: palette}
}

// SetPalette replaces the colours used from the next frame on
func (p *Painter) SetPalette(palette Palette) {
	p.palette = palette
	if bg, ok := p.surface.(interface{ SetBackground(Palette) }); ok {
		bg.SetBackground(palette)
	}
}

// Palette returns the current colours
func (p *Painter) Palette() Palette { return p.palette }

// PresentFrame clears the surface and draws every snake segment, then the food
func (p *Painter) PresentFrame(s *engine.Session) error {
	p.drawBoard(s)
	return p.surface.Show()
}

// PresentGameOver draws the game over lines over the last frame
func (p *Painter) PresentGameOver(s *engine.Session) error {
	center := components.Position{X: s.Width / 2, Y: s.Height / 2}
	style := TextStyle{Color: p.palette.Text, Bold: true, Size: constants.GameOverFontSize}

	p.surface.DrawText(center.Add(0, -constants.GameOverTextOffsetRows), constants.GameOverText, style)
	p.surface.DrawText(center.Add(0, constants.GameOverTextOffsetRows), fmt.Sprintf(constants.ScoreTextFormat, s.Score()), style)
	return p.surface.Show()
}

// PresentFinal draws the board and the game over lines in one frame
func (p *Painter) PresentFinal(s *engine.Session) error {
	p.drawBoard(s)
	return p.PresentGameOver(s)
}

// drawBoard paints the grid; segments that left the grid are not drawn
func (p *Painter) drawBoard(s *engine.Session) {
	p.surface.Clear()
	s.Snake.Segments(func(seg components.Position) {
		if seg.InBounds(s.Width, s.Height) {
			p.surface.DrawCell(seg.X, seg.Y, p.palette.Snake)
		}
	})
	food := s.Food.Position()
	p.surface.DrawCell(food.X, food.Y, p.palette.Food)
}

var _ engine.FramePresenter = (*Painter)(nil)
