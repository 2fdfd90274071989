package maskedit

import "image"

// lassoFillMargin pads the polygon bounds when limiting the post-fill
// quantization, so the closing edge and markers are covered.
const lassoFillMargin = 5

// LassoState is the state of the polygon lasso.
type LassoState int

const (
	// LassoIdle means there are no pending vertices.
	LassoIdle LassoState = iota

	// LassoCapturing means a polygon is being built.
	LassoCapturing
)

// String returns the state name.
func (s LassoState) String() string {
	switch s {
	case LassoIdle:
		return "idle"
	case LassoCapturing:
		return "capturing"
	default:
		return "unknown"
	}
}

// DuplicateRule decides which clicks repeat the previous vertex and are
// dropped.
type DuplicateRule int

const (
	// RejectExactDuplicate drops a click only when both coordinates equal
	// the previous vertex.
	RejectExactDuplicate DuplicateRule = iota

	// RejectAlignedClick drops a click when either coordinate equals the
	// previous vertex. Axis-aligned edges cannot be placed under this
	// rule.
	RejectAlignedClick
)

// String returns the rule name.
func (r DuplicateRule) String() string {
	switch r {
	case RejectExactDuplicate:
		return "exact"
	case RejectAlignedClick:
		return "aligned"
	default:
		return "unknown"
	}
}

func (r DuplicateRule) rejects(last, p Point) bool {
	if r == RejectAlignedClick {
		return last.X == p.X || last.Y == p.Y
	}
	return last == p
}

// LassoResult is the outcome of a lasso click.
type LassoResult int

const (
	// LassoNone means the event did nothing.
	LassoNone LassoResult = iota

	// LassoDuplicate means the click repeated the previous vertex.
	LassoDuplicate

	// LassoDegenerate means a closing click came with fewer than three
	// pending vertices.
	LassoDegenerate

	// LassoVertex means a vertex was appended.
	LassoVertex

	// LassoClosed means the pending polygon was closed and filled.
	LassoClosed
)

// String returns the result name.
func (r LassoResult) String() string {
	switch r {
	case LassoNone:
		return "none"
	case LassoDuplicate:
		return "duplicate"
	case LassoDegenerate:
		return "degenerate"
	case LassoVertex:
		return "vertex"
	case LassoClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// PointGroup is the ordered vertex list of one polygon.
type PointGroup []Point

type pointGroup struct {
	points PointGroup
	closed bool
}

// LassoTool builds polygons vertex by vertex and fills them on closure.
//
// Vertices are kept for the whole session so that undo and redo can move
// a cursor (PointIndex) through them. Vertices beyond the cursor are the
// redo future and are discarded on the next commit.
type LassoTool struct {
	surface    *Surface
	snapRadius float64
	rule       DuplicateRule

	groups     []pointGroup
	pointIndex int
}

// NewLassoTool creates a lasso that draws on s. Clicks within snapRadius
// of the first pending vertex close the polygon.
func NewLassoTool(s *Surface, snapRadius float64, rule DuplicateRule) *LassoTool {
	return &LassoTool{surface: s, snapRadius: snapRadius, rule: rule, pointIndex: -1}
}

// State returns LassoCapturing while vertices are pending.
func (l *LassoTool) State() LassoState {
	if len(l.pending()) == 0 {
		return LassoIdle
	}
	return LassoCapturing
}

// PointIndex returns the cursor into PointAll, or -1 when no vertex is
// current.
func (l *LassoTool) PointIndex() int { return l.pointIndex }

// PointGroups returns a copy of every stored polygon.
func (l *LassoTool) PointGroups() []PointGroup {
	out := make([]PointGroup, len(l.groups))
	for i, g := range l.groups {
		out[i] = append(PointGroup(nil), g.points...)
	}
	return out
}

// PointAll returns every stored vertex in commit order.
func (l *LassoTool) PointAll() []Point {
	var all []Point
	for _, g := range l.groups {
		all = append(all, g.points...)
	}
	return all
}

// Pending returns a copy of the vertices of the open polygon.
func (l *LassoTool) Pending() []Point {
	return append([]Point(nil), l.pending()...)
}

// Click handles a click at p.
func (l *LassoTool) Click(p Point) LassoResult {
	pending := l.pending()
	n := len(pending)
	if n > 0 && l.rule.rejects(pending[n-1], p) {
		return LassoDuplicate
	}
	if n > 0 && pending[0].Near(p, l.snapRadius) {
		if n < 3 {
			return LassoDegenerate
		}
		l.close(pending[n-1], pending)
		return LassoClosed
	}
	l.appendVertex(p, pending)
	return LassoVertex
}

// DoubleClick closes the pending polygon with an edge from p to the first
// vertex. It does nothing with fewer than three pending vertices.
func (l *LassoTool) DoubleClick(p Point) LassoResult {
	pending := l.pending()
	if len(pending) == 0 {
		return LassoNone
	}
	if len(pending) < 3 {
		return LassoDegenerate
	}
	l.close(p, pending)
	return LassoClosed
}

// Hover redraws the rubber band from the last pending vertex to p on the
// interaction layer, snapping to the first vertex when p is close to it.
func (l *LassoTool) Hover(p Point) image.Rectangle {
	l.surface.Clear(LayerInteraction)
	pending := l.pending()
	if len(pending) == 0 {
		return image.Rectangle{}
	}
	if pending[0].Near(p, l.snapRadius) {
		p = pending[0]
	}
	return l.surface.drawEdge(LayerInteraction, pending[len(pending)-1], p)
}

func (l *LassoTool) appendVertex(p Point, pending []Point) {
	l.discardFuture()
	if len(pending) == 0 {
		l.groups = append(l.groups, pointGroup{points: PointGroup{p}})
	} else {
		g := &l.groups[len(l.groups)-1]
		g.points = append(g.points, p)
	}
	l.pointIndex++

	s := l.surface
	var r image.Rectangle
	if len(pending) > 0 {
		r = s.drawEdge(LayerMask, pending[len(pending)-1], p)
	}
	r = r.Union(s.drawMarker(LayerMask, p))
	s.quantize(r, StrokeMode)
}

// close draws the closing edge from `from` to the first vertex, fills the
// polygon and marks the current group closed.
func (l *LassoTool) close(from Point, pending []Point) {
	s := l.surface
	s.drawEdge(LayerMask, from, pending[0])
	region := pointsRect(append(pending[:len(pending):len(pending)], from), lassoFillMargin)
	s.fillPolygon(pending, region)
	s.Clear(LayerInteraction)
	if g := l.current(); g != nil {
		g.closed = true
	}
}

// pending returns the vertices of the group containing the cursor, up to
// the cursor, unless that group is closed. The slice aliases storage.
func (l *LassoTool) pending() []Point {
	gi, off := l.locate(l.pointIndex)
	if gi < 0 || l.groups[gi].closed {
		return nil
	}
	return l.groups[gi].points[:off+1]
}

// current returns the group containing the cursor.
func (l *LassoTool) current() *pointGroup {
	gi, _ := l.locate(l.pointIndex)
	if gi < 0 {
		return nil
	}
	return &l.groups[gi]
}

// locate maps a PointAll index to a group and an offset within it.
func (l *LassoTool) locate(index int) (group, offset int) {
	if index < 0 {
		return -1, 0
	}
	for i, g := range l.groups {
		if index < len(g.points) {
			return i, index
		}
		index -= len(g.points)
	}
	return -1, 0
}

// discardFuture drops every vertex beyond the cursor along with groups
// left empty.
func (l *LassoTool) discardFuture() {
	gi, off := l.locate(l.pointIndex)
	if gi < 0 {
		l.groups = l.groups[:0]
		return
	}
	l.groups[gi].points = l.groups[gi].points[:off+1]
	l.groups = l.groups[:gi+1]
}

// rewind moves the cursor one vertex back.
func (l *LassoTool) rewind() {
	if l.pointIndex >= 0 {
		l.pointIndex--
	}
}

// advance moves the cursor one vertex forward.
func (l *LassoTool) advance() {
	if l.pointIndex < len(l.PointAll())-1 {
		l.pointIndex++
	}
}

// reopen marks the current group open again so its vertices are pending.
func (l *LassoTool) reopen() {
	if g := l.current(); g != nil {
		g.closed = false
	}
}

// reclose marks the current group closed.
func (l *LassoTool) reclose() {
	if g := l.current(); g != nil {
		g.closed = true
	}
}
