package maskedit

import (
	"image"

	"github.com/gogpu/maskedit/internal/parallel"
)

// FillMode selects the quantization predicate.
type FillMode int

const (
	// StrokeMode snaps only pixels whose color is already close to
	// MaskColor, so anti-aliased brush edges converge without recoloring
	// unrelated painted pixels.
	StrokeMode FillMode = iota

	// EnclosedFill snaps every sufficiently opaque pixel unconditionally.
	EnclosedFill
)

// String returns the mode name.
func (m FillMode) String() string {
	switch m {
	case StrokeMode:
		return "stroke"
	case EnclosedFill:
		return "enclosedFill"
	default:
		return "unknown"
	}
}

// Regions at least this many rows tall and this many pixels in area are
// quantized in parallel row bands.
const (
	parallelMinRows = 256
	parallelMinArea = parallelMinRows * 1024
)

// Quantize rewrites every pixel of p that passes the predicate for mode
// to exactly MaskColor: alpha must exceed 128, and in StrokeMode each
// color channel must also lie within 20 of MaskColor. Other pixels are
// left untouched.
func Quantize(p *Pixmap, mode FillMode) {
	QuantizeRegion(p, p.Bounds(), mode)
}

// QuantizeRegion is like Quantize but only visits pixels inside r.
// r is clipped to the pixmap bounds.
func QuantizeRegion(p *Pixmap, r image.Rectangle, mode FillMode) {
	r = r.Intersect(p.Bounds())
	if r.Empty() {
		return
	}

	var bands []parallel.Band
	if r.Dy() >= parallelMinRows && r.Dx()*r.Dy() >= parallelMinArea {
		bands = parallel.Split(r.Min.Y, r.Max.Y, 0, parallelMinRows/4)
	} else {
		bands = []parallel.Band{{Y0: r.Min.Y, Y1: r.Max.Y}}
	}

	parallel.ForEachBand(bands, func(b parallel.Band) {
		quantizeRows(p.img, r.Min.X, r.Max.X, b.Y0, b.Y1, mode)
	})
}

func quantizeRows(img *image.NRGBA, x0, x1, y0, y1 int, mode FillMode) {
	for y := y0; y < y1; y++ {
		row := img.Pix[img.PixOffset(x0, y):img.PixOffset(x1, y)]
		for i := 0; i < len(row); i += 4 {
			px := row[i : i+4 : i+4]
			if px[3] <= opaqueThreshold {
				continue
			}
			if mode == StrokeMode && !nearMaskColor(px[0], px[1], px[2]) {
				continue
			}
			px[0] = MaskColor.R
			px[1] = MaskColor.G
			px[2] = MaskColor.B
			px[3] = MaskColor.A
		}
	}
}
