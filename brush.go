package maskedit

import (
	"image"
	"math"
)

// BrushState is the state of the freehand brush.
type BrushState int

const (
	// BrushIdle means no stroke is in progress.
	BrushIdle BrushState = iota

	// BrushDrawing means the pointer is down and moves paint segments.
	BrushDrawing
)

// String returns the state name.
func (s BrushState) String() string {
	switch s {
	case BrushIdle:
		return "idle"
	case BrushDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// BrushTool paints freehand strokes onto the mask layer.
//
// While the modifier key is held the stroke is constrained to an axis.
// The axis is fixed once the pointer has moved at least the lock
// threshold away from the lock origin on both axes; until then moves
// draw nothing. Afterwards every pointer position is projected onto the
// line through the origin and the axis point.
type BrushTool struct {
	surface   *Surface
	width     float64
	threshold float64

	state BrushState
	last  Point

	held    bool
	armed   bool
	origin  Point
	hasAxis bool
	axis    Point
}

// NewBrushTool creates a brush that paints on s with the given line width
// and axis-lock threshold.
func NewBrushTool(s *Surface, width, threshold float64) *BrushTool {
	return &BrushTool{surface: s, width: width, threshold: threshold}
}

// State returns the current state.
func (b *BrushTool) State() BrushState { return b.state }

// Drawing reports whether a stroke is in progress.
func (b *BrushTool) Drawing() bool { return b.state == BrushDrawing }

// Last returns the end of the most recently drawn segment, or the press
// position if nothing has been drawn yet.
func (b *BrushTool) Last() Point { return b.last }

// ModifierHeld reports whether the axis-lock modifier is down.
func (b *BrushTool) ModifierHeld() bool { return b.held }

// Axis returns the lock origin and axis point. ok is false until the
// axis has been fixed.
func (b *BrushTool) Axis() (origin, axis Point, ok bool) {
	return b.origin, b.axis, b.hasAxis
}

// PointerDown starts a stroke at p. If the modifier is already held, the
// lock is armed with p as its origin.
func (b *BrushTool) PointerDown(p Point) {
	b.state = BrushDrawing
	b.last = p
	if b.held {
		b.arm(p)
	}
}

// PointerMove extends the stroke towards p and returns the dirty
// rectangle. ok is false if nothing was drawn.
func (b *BrushTool) PointerMove(p Point) (dirty image.Rectangle, ok bool) {
	if b.state != BrushDrawing {
		return image.Rectangle{}, false
	}
	if !b.held {
		return b.segment(p), true
	}

	if b.armed && !b.hasAxis {
		d := p.Sub(b.origin)
		if math.Abs(d.X) >= b.threshold && math.Abs(d.Y) >= b.threshold {
			b.axis = p
			b.hasAxis = true
		}
	}
	if !b.hasAxis {
		return image.Rectangle{}, false
	}
	return b.segment(ProjectOntoAxis(b.origin, b.axis, p)), true
}

// PointerUp ends the stroke. It reports whether a stroke was in progress
// and must be committed. The lock is reset but the modifier stays held.
func (b *BrushTool) PointerUp() bool {
	if b.state != BrushDrawing {
		return false
	}
	b.state = BrushIdle
	b.resetLock()
	return true
}

// ModifierDown marks the modifier as held. During a stroke the lock is
// armed at the current stroke end.
func (b *BrushTool) ModifierDown() {
	if b.state == BrushDrawing && !b.armed {
		b.arm(b.last)
	}
	b.held = true
}

// ModifierUp releases the modifier and ends any axis lock.
func (b *BrushTool) ModifierUp() {
	b.held = false
	b.resetLock()
}

func (b *BrushTool) segment(to Point) image.Rectangle {
	r := b.surface.paintSegment(b.last, to, b.width)
	b.last = to
	return r
}

func (b *BrushTool) arm(origin Point) {
	b.armed = true
	b.origin = origin
	b.hasAxis = false
	b.axis = Point{}
}

func (b *BrushTool) resetLock() {
	b.armed = false
	b.origin = Point{}
	b.hasAxis = false
	b.axis = Point{}
}

// ProjectOntoAxis maps p onto the line through a and b by keeping one of
// its coordinates. For a vertical line it keeps y, for a horizontal line
// it keeps x. Otherwise it keeps x when the line is shallower than 45
// degrees and y when it is steeper, and solves the other coordinate on
// the line. If a and b coincide p is returned unchanged.
func ProjectOntoAxis(a, b, p Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 0 && dy == 0:
		return p
	case dx == 0:
		return Point{X: a.X, Y: p.Y}
	case dy == 0:
		return Point{X: p.X, Y: a.Y}
	}
	if math.Abs(dy/dx) < 1 {
		return Point{X: p.X, Y: (p.X-a.X)/dx*dy + a.Y}
	}
	return Point{X: (p.Y-a.Y)/dy*dx + a.X, Y: p.Y}
}
