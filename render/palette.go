package render

import (
	"fmt"
	"image/color"

	"github.com/lixenwraith/snake/constants"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours used to paint a frame
type Palette struct {
	Background color.Color
	Snake      color.Color
	Food       color.Color
	Text       color.Color
}

// DefaultPalette returns the reference colours: green snake, red food, white text on black
func DefaultPalette() Palette {
	p, err := ParsePalette(constants.DefaultBackgroundHex, constants.DefaultSnakeHex, constants.DefaultFoodHex, constants.DefaultTextHex)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette builds a palette from "#rrggbb" strings
func ParsePalette(background, snake, food, text string) (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background", background, &p.Background},
		{"snake", snake, &p.Snake},
		{"food", food, &p.Food},
		{"text", text, &p.Text},
	}

	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s %q: %w", f.name, f.hex, err)
		}
		*f.dst = toRGBA(c)
	}
	return p, nil
}

// toRGBA flattens any colour to 8-bit opaque RGBA
func toRGBA(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
}
