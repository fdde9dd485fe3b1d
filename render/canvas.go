package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lixenwraith/snake/components"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// CanvasSurface draws the grid into an in-memory raster, one square per cell
type CanvasSurface struct {
	dc         *gg.Context
	cellSize   int
	background color.Color

	bold    *truetype.Font
	regular *truetype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// NewCanvasSurface creates a width x height grid canvas with cellSize pixel squares
func NewCanvasSurface(width, height, cellSize int, palette Palette) (*CanvasSurface, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}

	return &CanvasSurface{
		dc:         gg.NewContext(width*cellSize, height*cellSize),
		cellSize:   cellSize,
		background: palette.Background,
		bold:       bold,
		regular:    regular,
		faces:      make(map[faceKey]font.Face),
	}, nil
}

// SetBackground applies the palette background from the next Clear
func (c *CanvasSurface) SetBackground(palette Palette) {
	c.background = palette.Background
}

func (c *CanvasSurface) Clear() {
	c.dc.SetColor(c.background)
	c.dc.Clear()
}

func (c *CanvasSurface) DrawCell(col, row int, clr color.Color) {
	size := float64(c.cellSize)
	c.dc.SetColor(clr)
	c.dc.DrawRectangle(float64(col)*size, float64(row)*size, size, size)
	c.dc.Fill()
}

func (c *CanvasSurface) DrawText(at components.Position, text string, style TextStyle) {
	c.dc.SetFontFace(c.face(style))
	c.dc.SetColor(style.Color)
	x := float64(at.X * c.cellSize)
	y := float64(at.Y * c.cellSize)
	c.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// Show is a no-op, the raster is always current
func (c *CanvasSurface) Show() error { return nil }

// Image returns the current raster
func (c *CanvasSurface) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the raster to path, scaled by scale when it is not 1
func (c *CanvasSurface) SavePNG(path string, scale float64) error {
	img := c.dc.Image()
	if scale > 0 && scale != 1 {
		b := img.Bounds()
		w := int(math.Round(float64(b.Dx()) * scale))
		h := int(math.Round(float64(b.Dy()) * scale))
		img = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

func (c *CanvasSurface) face(style TextStyle) font.Face {
	size := style.Size
	if size <= 0 {
		size = 12
	}
	key := faceKey{size: size, bold: style.Bold}
	if f, ok := c.faces[key]; ok {
		return f
	}

	ttf := c.regular
	if style.Bold {
		ttf = c.bold
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: size})
	c.faces[key] = f
	return f
}
