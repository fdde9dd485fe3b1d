package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/components"
	"github.com/lixenwraith/snake/constants"
	"github.com/mattn/go-runewidth"
)

// ScreenSurface draws the grid on a tcell screen, two columns per cell
type ScreenSurface struct {
	screen           tcell.Screen
	originX, originY int
	background       tcell.Color
}

// NewScreenSurface creates a surface whose cell (0,0) is at terminal (originX, originY)
func NewScreenSurface(screen tcell.Screen, originX, originY int, palette Palette) *ScreenSurface {
	return &ScreenSurface{
		screen:     screen,
		originX:    originX,
		originY:    originY,
		background: ColorToTcell(palette.Background),
	}
}

// SetBackground applies the palette background from the next Clear
func (s *ScreenSurface) SetBackground(palette Palette) {
	s.background = ColorToTcell(palette.Background)
}

func (s *ScreenSurface) Clear() {
	s.screen.SetStyle(tcell.StyleDefault.Background(s.background))
	s.screen.Clear()
}

func (s *ScreenSurface) DrawCell(col, row int, c color.Color) {
	x, y := s.toScreen(col, row)
	style := s.cellStyle(c)
	for i := 0; i < constants.TerminalCellWidth; i++ {
		s.setContent(x+i, y, constants.CellGlyph, style)
	}
}

func (s *ScreenSurface) DrawText(at components.Position, text string, style TextStyle) {
	x, y := s.toScreen(at.X, at.Y)
	x -= runewidth.StringWidth(text) / 2

	ts := tcell.StyleDefault.Foreground(ColorToTcell(style.Color)).Background(s.background).Bold(style.Bold)
	for _, r := range text {
		s.setContent(x, y, r, ts)
		x += runewidth.RuneWidth(r)
	}
}

func (s *ScreenSurface) Show() error {
	s.screen.Show()
	return nil
}

// Sync repaints the whole terminal, used after resize
func (s *ScreenSurface) Sync() {
	s.screen.Sync()
}

func (s *ScreenSurface) toScreen(col, row int) (int, int) {
	return s.originX + col*constants.TerminalCellWidth, s.originY + row
}

func (s *ScreenSurface) cellStyle(c color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(ColorToTcell(c)).Background(s.background)
}

// setContent drops cells outside the terminal; the snake may leave the grid
func (s *ScreenSurface) setContent(x, y int, r rune, style tcell.Style) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}
