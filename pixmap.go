package maskedit

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap is a rectangular straight-alpha RGBA pixel buffer.
// Channel values are stored unpremultiplied, 4 bytes per pixel in
// row-major order, matching what a canvas getImageData call returns.
type Pixmap struct {
	img *image.NRGBA
}

// NewPixmap creates a fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data. The slice aliases the buffer.
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	p.img.SetNRGBA(x, y, c)
}

// GetPixel returns the color of a single pixel, or transparent for
// out-of-bounds coordinates.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	return p.img.NRGBAAt(x, y)
}

// Clear makes every pixel fully transparent.
func (p *Pixmap) Clear() {
	clear(p.img.Pix)
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.Width(), p.Height())
	copy(c.img.Pix, p.img.Pix)
	return c
}

// ToImage returns a copy of the pixmap as an *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	return p.Clone().img
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return encodePNG(w, p.img)
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// load replaces the pixel data with pix, which must hold exactly
// Width*Height*4 bytes.
func (p *Pixmap) load(pix []uint8) error {
	if len(pix) != len(p.img.Pix) {
		return fmt.Errorf("%w: %d bytes for a %dx%d pixmap", ErrSizeMismatch, len(pix), p.Width(), p.Height())
	}
	copy(p.img.Pix, pix)
	return nil
}
