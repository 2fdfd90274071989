package maskedit

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color.NRGBA
	}{
		{"short white", "#fff", color.NRGBA{255, 255, 255, 255}},
		{"short with alpha", "f008", color.NRGBA{255, 0, 0, 136}},
		{"marker blue", "#4FAFFC", color.NRGBA{0x4f, 0xaf, 0xfc, 255}},
		{"mask with alpha", "F0444466", MaskColor},
		{"lowercase", "f04444", color.NRGBA{240, 68, 68, 255}},
		{"invalid length", "#12345", color.NRGBA{A: 255}},
		{"empty", "", color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestNearMaskColor(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    bool
	}{
		{240, 68, 68, true},
		{255, 88, 48, true},
		{220, 48, 88, true},
		{219, 68, 68, false},
		{240, 89, 68, false},
		{0, 0, 255, false},
		{255, 255, 255, false},
	}
	for _, tt := range tests {
		if got := nearMaskColor(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("nearMaskColor(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

// TestMaskColorValue pins the canonical mask pixel to rgba(240,68,68,0.4).
func TestMaskColorValue(t *testing.T) {
	want := color.NRGBA{R: 240, G: 68, B: 68, A: 102}
	if MaskColor != want {
		t.Errorf("MaskColor = %v, want %v", MaskColor, want)
	}
	if maskFillColor.A != 255 || maskFillColor.R != MaskColor.R {
		t.Errorf("maskFillColor = %v, want opaque MaskColor", maskFillColor)
	}
}
