package maskedit

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// Surface errors.
var (
	// ErrInvalidSize is returned when a surface is created with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("maskedit: invalid surface size")

	// ErrSizeMismatch is returned when pixel data does not match the
	// dimensions of the buffer it is written to.
	ErrSizeMismatch = errors.New("maskedit: size mismatch")
)

// LayerKind identifies one of the three surface layers.
type LayerKind int

const (
	// LayerInteraction holds ephemeral guides such as the lasso rubber
	// band. It is never exported or snapshotted.
	LayerInteraction LayerKind = iota

	// LayerMask is the authoritative mask. It is snapshotted by History
	// and exported.
	LayerMask

	// LayerBase holds the user-supplied image.
	LayerBase

	layerCount
)

// String returns the layer name.
func (k LayerKind) String() string {
	switch k {
	case LayerInteraction:
		return "interaction"
	case LayerMask:
		return "mask"
	case LayerBase:
		return "base"
	default:
		return fmt.Sprintf("LayerKind(%d)", int(k))
	}
}

// lineStyle describes how a polyline is stroked.
type lineStyle struct {
	width float64
	color color.NRGBA
	cap   rasterx.CapFunc
	join  rasterx.JoinMode
}

// Line styles used by the tools.
const (
	edgeWidth         = 2
	markerRadius      = 2
	markerStrokeWidth = 1
)

func brushStyle(width float64) lineStyle {
	return lineStyle{width: width, color: MaskColor, cap: rasterx.RoundCap, join: rasterx.Round}
}

var (
	edgeStyle   = lineStyle{width: edgeWidth, color: edgeColor, cap: rasterx.ButtCap, join: rasterx.Miter}
	markerStyle = lineStyle{width: markerStrokeWidth, color: markerStrokeColor, cap: rasterx.ButtCap, join: rasterx.Miter}
)

// Surface owns the three equally sized layers of an editing session and
// the rasterizer that draws on them.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	width, height int
	layers        [layerCount]*Pixmap

	// quantizeAll widens post-draw quantization from the dirty rectangle
	// to the whole mask layer.
	quantizeAll bool

	// Rasterizer scratch state, shared by all layers. The coverage buffer
	// is kept zeroed between draws.
	coverage *image.Alpha
	scanner  *rasterx.ScannerGV
	dasher   *rasterx.Dasher
}

// NewSurface creates a surface with three transparent layers.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	s := &Surface{width: width, height: height}
	for k := range s.layers {
		s.layers[k] = NewPixmap(width, height)
	}
	s.coverage = image.NewAlpha(image.Rect(0, 0, width, height))
	s.scanner = rasterx.NewScannerGV(width, height, s.coverage, s.coverage.Bounds())
	s.dasher = rasterx.NewDasher(width, height, s.scanner)
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

// Layer returns the pixmap for the given layer.
func (s *Surface) Layer(k LayerKind) *Pixmap {
	return s.layers[k]
}

// Interaction returns the interaction layer.
func (s *Surface) Interaction() *Pixmap { return s.layers[LayerInteraction] }

// Mask returns the mask layer.
func (s *Surface) Mask() *Pixmap { return s.layers[LayerMask] }

// Base returns the base image layer.
func (s *Surface) Base() *Pixmap { return s.layers[LayerBase] }

// ReadPixels returns a copy of the whole buffer of layer k.
func (s *Surface) ReadPixels(k LayerKind) []uint8 {
	return append([]uint8(nil), s.layers[k].Data()...)
}

// Clear makes every pixel of layer k transparent.
func (s *Surface) Clear(k LayerKind) {
	s.layers[k].Clear()
}

// Composite returns a new image with the mask layer drawn over the base
// layer. Neither layer is modified.
func (s *Surface) Composite() *image.NRGBA {
	out := s.Base().ToImage()
	xdraw.Draw(out, out.Bounds(), s.Mask().img, image.Point{}, xdraw.Over)
	return out
}

// paintSegment draws one brush segment on the mask layer and quantizes
// the touched pixels in StrokeMode.
func (s *Surface) paintSegment(from, to Point, width float64) image.Rectangle {
	r := s.stroke(LayerMask, []Point{from, to}, false, brushStyle(width))
	s.quantize(r, StrokeMode)
	return r
}

// drawEdge draws a lasso edge on layer k.
func (s *Surface) drawEdge(k LayerKind, from, to Point) image.Rectangle {
	return s.stroke(k, []Point{from, to}, false, edgeStyle)
}

// drawMarker draws the vertex marker: a white disc with a blue outline.
func (s *Surface) drawMarker(k LayerKind, at Point) image.Rectangle {
	rasterx.AddCircle(at.X, at.Y, markerRadius, &s.dasher.Filler)
	r := s.render(k, markerFillColor)

	s.setStroke(markerStyle)
	rasterx.AddCircle(at.X, at.Y, markerRadius, s.dasher)
	return r.Union(s.render(k, markerStyle.color))
}

// fillPolygon fills the closed polygon through pts with opaque mask color
// and quantizes region (or the whole mask) in EnclosedFill mode. The first
// point is repeated at the end so that the path is closed explicitly.
func (s *Surface) fillPolygon(pts []Point, region image.Rectangle) image.Rectangle {
	if len(pts) < 3 {
		return image.Rectangle{}
	}
	f := &s.dasher.Filler
	f.SetWinding(true)
	f.Start(pts[0].fixed())
	for _, p := range pts[1:] {
		f.Line(p.fixed())
	}
	f.Line(pts[0].fixed())
	f.Stop(true)
	r := s.render(LayerMask, maskFillColor)
	s.quantize(r.Union(region), EnclosedFill)
	return r
}

// quantize applies the quantizer to r on the mask layer, or to the whole
// mask layer when the surface is configured to do so.
func (s *Surface) quantize(r image.Rectangle, mode FillMode) {
	if s.quantizeAll {
		Quantize(s.Mask(), mode)
		return
	}
	QuantizeRegion(s.Mask(), r, mode)
}

func (s *Surface) setStroke(st lineStyle) {
	s.dasher.SetStroke(fixed.Int26_6(math.Round(st.width*64)), 4*64, st.cap, st.cap, rasterx.RoundGap, st.join, nil, 0)
}

// stroke strokes the polyline pts on layer k and returns the dirty
// rectangle. Zero-length polylines draw nothing.
func (s *Surface) stroke(k LayerKind, pts []Point, closed bool, st lineStyle) image.Rectangle {
	if len(pts) < 2 || (len(pts) == 2 && pts[0] == pts[1]) {
		return image.Rectangle{}
	}
	s.setStroke(st)
	s.dasher.Start(pts[0].fixed())
	for _, p := range pts[1:] {
		s.dasher.Line(p.fixed())
	}
	s.dasher.Stop(closed)
	return s.render(k, st.color)
}

// render rasterizes the accumulated path into the coverage buffer,
// composites c over layer k through that coverage and resets the
// rasterizer. It returns the rectangle that may have changed.
func (s *Surface) render(k LayerKind, c color.NRGBA) image.Rectangle {
	r := pathBounds(s.scanner.GetPathExtent()).Intersect(s.Bounds())
	s.dasher.SetColor(color.Opaque)
	s.dasher.Draw()
	s.dasher.Clear()
	if r.Empty() {
		clear(s.coverage.Pix)
		return image.Rectangle{}
	}
	s.blend(s.layers[k], r, c)
	return r
}

// blend composites c over dst with source-over in straight alpha,
// weighting c by the coverage buffer, and zeroes the coverage it reads.
func (s *Surface) blend(dst *Pixmap, r image.Rectangle, c color.NRGBA) {
	ca := float64(c.A) / 255
	for y := r.Min.Y; y < r.Max.Y; y++ {
		cov := s.coverage.Pix[s.coverage.PixOffset(r.Min.X, y):s.coverage.PixOffset(r.Max.X, y)]
		row := dst.img.Pix[dst.img.PixOffset(r.Min.X, y):dst.img.PixOffset(r.Max.X, y)]
		for i, m := range cov {
			if m == 0 {
				continue
			}
			cov[i] = 0
			blendPixel(row[i*4:i*4+4:i*4+4], c, ca*float64(m)/255)
		}
	}
}

// blendPixel composites c with effective opacity srcA over px.
func blendPixel(px []uint8, c color.NRGBA, srcA float64) {
	if srcA <= 0 {
		return
	}
	dstA := float64(px[3]) / 255
	inv := dstA * (1 - srcA)
	outA := srcA + inv
	if outA <= 0 {
		return
	}
	px[0] = channel((float64(c.R)*srcA + float64(px[0])*inv) / outA)
	px[1] = channel((float64(c.G)*srcA + float64(px[1])*inv) / outA)
	px[2] = channel((float64(c.B)*srcA + float64(px[2])*inv) / outA)
	px[3] = channel(outA * 255)
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// pathBounds converts a rasterizer path extent to whole pixels, padded by
// one pixel for anti-aliasing.
func pathBounds(e fixed.Rectangle26_6) image.Rectangle {
	if e.Max.X < e.Min.X || e.Max.Y < e.Min.Y {
		return image.Rectangle{}
	}
	return image.Rect(e.Min.X.Floor()-1, e.Min.Y.Floor()-1, e.Max.X.Ceil()+1, e.Max.Y.Ceil()+1)
}

// pointsRect returns the pixel rectangle containing pts, padded by pad.
func pointsRect(pts []Point, pad float64) image.Rectangle {
	lo, hi, ok := bounds(pts)
	if !ok {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(lo.X-pad)), int(math.Floor(lo.Y-pad)),
		int(math.Ceil(hi.X+pad)), int(math.Ceil(hi.Y+pad)),
	)
}
