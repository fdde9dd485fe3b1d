package render

import (
	"image/color"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		name string
		got  color.Color
		want color.RGBA
	}{
		{"background", p.Background, color.RGBA{0, 0, 0, 255}},
		{"snake", p.Snake, color.RGBA{0, 128, 0, 255}},
		{"food", p.Food, color.RGBA{255, 0, 0, 255}},
		{"text", p.Text, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if !sameRGB(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestParsePaletteRejectsBadHex(t *testing.T) {
	if _, err := ParsePalette("#000000", "green", "#ff0000", "#ffffff"); err == nil {
		t.Error("ParsePalette accepted a colour name")
	}
	if _, err := ParsePalette("#000", "#00ff00", "#ff0000", "#ffffff"); err != nil {
		t.Errorf("ParsePalette rejected short hex: %v", err)
	}
}
