package maskedit

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Tool selects which tool receives pointer input.
type Tool int

const (
	// ToolBrush paints freehand strokes.
	ToolBrush Tool = iota

	// ToolSelection builds lasso polygons.
	ToolSelection
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "brush"
	case ToolSelection:
		return "selection"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// Editor is one mask editing session. It owns the raster surface, both
// tools and the shared history, and routes input events to the selected
// tool.
//
// Every committed action is tagged in the history. Undo and redo restore
// the mask snapshot and then resynchronize the lasso according to the
// tag of the action, regardless of which tool is selected.
//
// An Editor is not safe for concurrent use; callers deliver events in
// order from a single goroutine.
type Editor struct {
	id   string
	opts options

	surface *Surface
	history *History
	brush   *BrushTool
	lasso   *LassoTool
	tool    Tool
}

// NewEditor creates an editing session with a blank mask of the given
// size. The brush is selected initially.
func NewEditor(width, height int, opts ...Option) (*Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}
	s.quantizeAll = o.fullQuantize

	e := &Editor{
		id:      uuid.NewString(),
		opts:    o,
		surface: s,
		history: NewHistory(o.maxHistorySteps, s.Mask()),
		brush:   NewBrushTool(s, o.lineWidth, o.axisLockThreshold),
		lasso:   NewLassoTool(s, o.snapRadius, o.duplicateRule),
		tool:    ToolBrush,
	}
	e.logger().Debug("maskedit: editor created", "width", width, "height", height)
	return e, nil
}

// ID returns the session identifier.
func (e *Editor) ID() string { return e.id }

// Width returns the surface width in pixels.
func (e *Editor) Width() int { return e.surface.Width() }

// Height returns the surface height in pixels.
func (e *Editor) Height() int { return e.surface.Height() }

// Surface returns the raster surface.
func (e *Editor) Surface() *Surface { return e.surface }

// History returns the undo history.
func (e *Editor) History() *History { return e.history }

// Brush returns the brush tool.
func (e *Editor) Brush() *BrushTool { return e.brush }

// Lasso returns the lasso tool.
func (e *Editor) Lasso() *LassoTool { return e.lasso }

// Tool returns the selected tool.
func (e *Editor) Tool() Tool { return e.tool }

// SetTool selects the tool for subsequent pointer input.
//
// Leaving the brush during a stroke commits the stroke. Selecting the
// brush clears the rubber band but keeps the pending polygon, so the
// lasso resumes where it left off when selected again.
func (e *Editor) SetTool(t Tool) {
	if t == e.tool {
		return
	}
	if e.tool == ToolBrush && e.brush.PointerUp() {
		e.commit(ActionBrush)
	}
	if t == ToolBrush {
		e.surface.Clear(LayerInteraction)
	}
	e.tool = t
	e.logger().Debug("maskedit: tool selected", "tool", t.String())
}

// PointerDown handles a pointer press at p.
func (e *Editor) PointerDown(p Point) {
	if e.tool == ToolBrush {
		e.brush.PointerDown(p)
	}
}

// PointerMove handles pointer motion to p. The brush extends its stroke;
// the lasso redraws the rubber band.
func (e *Editor) PointerMove(p Point) {
	switch e.tool {
	case ToolBrush:
		e.brush.PointerMove(p)
	case ToolSelection:
		e.lasso.Hover(p)
	}
}

// PointerUp handles a pointer release and commits a finished stroke.
func (e *Editor) PointerUp() {
	if e.tool == ToolBrush && e.brush.PointerUp() {
		e.commit(ActionBrush)
	}
}

// Click handles a click at p. Only the lasso reacts to clicks.
func (e *Editor) Click(p Point) {
	if e.tool != ToolSelection {
		return
	}
	switch res := e.lasso.Click(p); res {
	case LassoVertex:
		e.commit(ActionSelection)
	case LassoClosed:
		e.commit(ActionClose)
	default:
		e.logger().Debug("maskedit: lasso click ignored", "result", res.String(), "point", p.String())
	}
}

// DoubleClick handles a double click at p, closing the pending polygon.
func (e *Editor) DoubleClick(p Point) {
	if e.tool != ToolSelection {
		return
	}
	switch res := e.lasso.DoubleClick(p); res {
	case LassoClosed:
		e.commit(ActionClose)
	default:
		e.logger().Debug("maskedit: lasso double click ignored", "result", res.String(), "point", p.String())
	}
}

// ModifierDown handles the axis-lock key going down.
func (e *Editor) ModifierDown() { e.brush.ModifierDown() }

// ModifierUp handles the axis-lock key going up.
func (e *Editor) ModifierUp() { e.brush.ModifierUp() }

// Undo reverts the most recent action. It reports false, changing
// nothing, when the oldest retained snapshot is displayed.
func (e *Editor) Undo() bool {
	kind, ok := e.history.Undo(e.surface.Mask())
	if !ok {
		e.logger().Debug("maskedit: undo ignored at oldest snapshot", "index", e.history.Index())
		return false
	}
	switch kind {
	case ActionSelection:
		e.surface.Clear(LayerInteraction)
		e.lasso.rewind()
	case ActionClose:
		e.surface.Clear(LayerInteraction)
		e.lasso.reopen()
	}
	e.logger().Debug("maskedit: undo", "kind", kind.String(), "index", e.history.Index())
	return true
}

// Redo reapplies the most recently undone action. It reports false,
// changing nothing, when there is nothing to redo.
func (e *Editor) Redo() bool {
	kind, ok := e.history.Redo(e.surface.Mask())
	if !ok {
		e.logger().Debug("maskedit: redo ignored, nothing pending", "index", e.history.Index())
		return false
	}
	switch kind {
	case ActionSelection:
		e.surface.Clear(LayerInteraction)
		e.lasso.advance()
	case ActionClose:
		e.surface.Clear(LayerInteraction)
		e.lasso.reclose()
	}
	e.logger().Debug("maskedit: redo", "kind", kind.String(), "index", e.history.Index())
	return true
}

// Reset clears the mask, the pending polygon and the history.
func (e *Editor) Reset() {
	e.brush.PointerUp()
	e.surface.Clear(LayerInteraction)
	e.surface.Clear(LayerMask)
	e.lasso = NewLassoTool(e.surface, e.opts.snapRadius, e.opts.duplicateRule)
	e.history.Reset(e.surface.Mask())
}

// commit discards the lasso redo future and snapshots the mask.
func (e *Editor) commit(kind ActionKind) {
	e.lasso.discardFuture()
	e.history.Save(e.surface.Mask(), kind)
}

func (e *Editor) logger() *slog.Logger {
	return Logger().With(slog.String("session", e.id))
}
