package maskedit

import (
	"image"
	"image/png"
	"io"
)

// Mask is a single-channel selection mask. A value of 255 marks a
// selected pixel and 0 an unselected one; intermediate values appear only
// when set explicitly.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates an empty mask with the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromPixmap derives a binary mask from p: 255 wherever p has
// any alpha, 0 elsewhere.
func NewMaskFromPixmap(p *Pixmap) *Mask {
	m := NewMask(p.Width(), p.Height())
	pix := p.Data()
	for i := range m.data {
		if pix[i*4+3] != 0 {
			m.data[i] = 255
		}
	}
	return m
}

// AlphaMask returns the binary selection described by the mask layer.
func (e *Editor) AlphaMask() *Mask {
	return NewMaskFromPixmap(e.surface.Mask())
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Invert swaps selected and unselected pixels (255 - value).
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// Count returns the number of non-zero pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice, one byte per pixel in
// row-major order.
func (m *Mask) Data() []uint8 {
	return m.data
}

// ToImage returns a copy of the mask as a grayscale alpha image.
func (m *Mask) ToImage() *image.Alpha {
	img := image.NewAlpha(m.Bounds())
	copy(img.Pix, m.data)
	return img
}

// EncodePNG writes the mask to w as a PNG image.
func (m *Mask) EncodePNG(w io.Writer) error {
	return png.Encode(w, m.ToImage())
}
