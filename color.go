package maskedit

import "image/color"

// MaskColor is the canonical mask pixel: rgba(240, 68, 68, 0.4) in
// straight alpha. Every quantized pixel converges to exactly this value,
// so brush and lasso output are indistinguishable.
var MaskColor = color.NRGBA{R: 240, G: 68, B: 68, A: 102}

const (
	// opaqueThreshold is the alpha a pixel must exceed to be quantized.
	opaqueThreshold = 128

	// maskTolerance is the per-channel distance from MaskColor within
	// which a stroke pixel counts as already painted.
	maskTolerance = 20
)

var (
	// maskFillColor is MaskColor at full opacity, used for polygon fills
	// before quantization brings alpha back to MaskColor.A.
	maskFillColor = color.NRGBA{R: MaskColor.R, G: MaskColor.G, B: MaskColor.B, A: 0xff}

	edgeColor         = Hex("#fff")
	markerFillColor   = Hex("#fff")
	markerStrokeColor = Hex("#4FAFFC")
)

// nearMaskColor reports whether r, g, b are each within maskTolerance
// of the MaskColor channels.
func nearMaskColor(r, g, b uint8) bool {
	return within(r, MaskColor.R) && within(g, MaskColor.G) && within(b, MaskColor.B)
}

func within(v, target uint8) bool {
	d := int(v) - int(target)
	return d >= -maskTolerance && d <= maskTolerance
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or
// without a leading '#'. Unparseable input yields opaque black.
func Hex(hex string) color.NRGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return color.NRGBA{A: 255}
	}

	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)} //nolint:gosec // each value is at most 255
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}
