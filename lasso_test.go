package maskedit

import (
	"slices"
	"testing"
)

func newTestLasso(t *testing.T, rule DuplicateRule) (*LassoTool, *Surface) {
	t.Helper()
	s := mustSurface(t, 120, 120)
	return NewLassoTool(s, 10, rule), s
}

func clickAll(l *LassoTool, pts ...Point) []LassoResult {
	out := make([]LassoResult, len(pts))
	for i, p := range pts {
		out[i] = l.Click(p)
	}
	return out
}

func TestLassoStringers(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{LassoIdle.String(), "idle"},
		{LassoCapturing.String(), "capturing"},
		{LassoState(9).String(), "unknown"},
		{RejectExactDuplicate.String(), "exact"},
		{RejectAlignedClick.String(), "aligned"},
		{DuplicateRule(9).String(), "unknown"},
		{LassoVertex.String(), "vertex"},
		{LassoClosed.String(), "closed"},
		{LassoDuplicate.String(), "duplicate"},
		{LassoDegenerate.String(), "degenerate"},
		{LassoNone.String(), "none"},
		{LassoResult(9).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestLassoAppendVertices(t *testing.T) {
	l, s := newTestLasso(t, RejectExactDuplicate)
	if l.PointIndex() != -1 || l.State() != LassoIdle {
		t.Fatalf("fresh lasso: index %d state %v", l.PointIndex(), l.State())
	}

	got := clickAll(l, Pt(20, 20), Pt(80, 20))
	if !slices.Equal(got, []LassoResult{LassoVertex, LassoVertex}) {
		t.Fatalf("results = %v", got)
	}
	if l.PointIndex() != len(l.PointAll())-1 {
		t.Errorf("PointIndex() = %d, want %d", l.PointIndex(), len(l.PointAll())-1)
	}
	if l.State() != LassoCapturing {
		t.Errorf("State() = %v, want capturing", l.State())
	}
	if want := []Point{Pt(20, 20), Pt(80, 20)}; !slices.Equal(l.Pending(), want) {
		t.Errorf("Pending() = %v, want %v", l.Pending(), want)
	}

	// Edge between the vertices is drawn on the mask layer in white.
	if got := s.Mask().GetPixel(50, 20); got.A != 255 || got.R != 255 {
		t.Errorf("edge pixel = %v, want opaque white", got)
	}
	if !isTransparent(s.Interaction()) {
		t.Error("vertex commit drew on the interaction layer")
	}
}

func TestLassoDuplicateRules(t *testing.T) {
	tests := []struct {
		name string
		rule DuplicateRule
		next Point
		want LassoResult
	}{
		{"exact rejects same point", RejectExactDuplicate, Pt(40, 40), LassoDuplicate},
		{"exact accepts same x", RejectExactDuplicate, Pt(40, 90), LassoVertex},
		{"exact accepts same y", RejectExactDuplicate, Pt(90, 40), LassoVertex},
		{"aligned rejects same point", RejectAlignedClick, Pt(40, 40), LassoDuplicate},
		{"aligned rejects same x", RejectAlignedClick, Pt(40, 90), LassoDuplicate},
		{"aligned rejects same y", RejectAlignedClick, Pt(90, 40), LassoDuplicate},
		{"aligned accepts distinct", RejectAlignedClick, Pt(90, 90), LassoVertex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLasso(t, tt.rule)
			l.Click(Pt(5, 5))
			l.Click(Pt(40, 40))
			if got := l.Click(tt.next); got != tt.want {
				t.Errorf("Click(%v) = %v, want %v", tt.next, got, tt.want)
			}
		})
	}
}

// TestLassoQuadClosure uses the canonical quad and closes it with a click
// near the first vertex.
func TestLassoQuadClosure(t *testing.T) {
	l, s := newTestLasso(t, RejectExactDuplicate)
	clickAll(l, Pt(10, 10), Pt(100, 10), Pt(100, 100), Pt(10, 100))
	l.Hover(Pt(50, 50))

	if got := l.Click(Pt(13, 12)); got != LassoClosed {
		t.Fatalf("closing click = %v, want closed", got)
	}
	if len(l.Pending()) != 0 || l.State() != LassoIdle {
		t.Errorf("after closure: pending %v state %v", l.Pending(), l.State())
	}
	if got := s.Mask().GetPixel(55, 55); got != MaskColor {
		t.Errorf("fill interior = %v, want %v", got, MaskColor)
	}
	// Edges are quantized along with the interior.
	if got := s.Mask().GetPixel(55, 10); got != MaskColor {
		t.Errorf("edge after fill = %v, want %v", got, MaskColor)
	}
	if got := s.Mask().GetPixel(110, 110); got.A != 0 {
		t.Errorf("pixel outside polygon = %v, want transparent", got)
	}
	if !isTransparent(s.Interaction()) {
		t.Error("closure left the rubber band on the interaction layer")
	}
	if groups := l.PointGroups(); len(groups) != 1 || len(groups[0]) != 4 {
		t.Errorf("PointGroups() = %v, want one group of 4", groups)
	}
}

func TestLassoDegenerateClosure(t *testing.T) {
	l, s := newTestLasso(t, RejectExactDuplicate)
	clickAll(l, Pt(20, 20), Pt(60, 60))
	before := s.ReadPixels(LayerMask)

	if got := l.Click(Pt(22, 21)); got != LassoDegenerate {
		t.Fatalf("closing click with 2 vertices = %v, want degenerate", got)
	}
	if len(l.Pending()) != 2 {
		t.Errorf("pending after degenerate closure = %v", l.Pending())
	}
	if !slices.Equal(before, s.ReadPixels(LayerMask)) {
		t.Error("degenerate closure changed the mask")
	}
}

func TestLassoDoubleClick(t *testing.T) {
	l, s := newTestLasso(t, RejectExactDuplicate)
	if got := l.DoubleClick(Pt(5, 5)); got != LassoNone {
		t.Errorf("DoubleClick with nothing pending = %v, want none", got)
	}
	clickAll(l, Pt(10, 10), Pt(90, 10))
	if got := l.DoubleClick(Pt(90, 90)); got != LassoDegenerate {
		t.Errorf("DoubleClick with 2 vertices = %v, want degenerate", got)
	}
	l.Click(Pt(90, 90))
	if got := l.DoubleClick(Pt(90, 90)); got != LassoClosed {
		t.Fatalf("DoubleClick with 3 vertices = %v, want closed", got)
	}
	if l.State() != LassoIdle {
		t.Errorf("state after double click = %v", l.State())
	}
	if got := s.Mask().GetPixel(70, 30); got != MaskColor {
		t.Errorf("triangle interior = %v, want %v", got, MaskColor)
	}
}

func TestLassoNewGroupAfterClosure(t *testing.T) {
	l, _ := newTestLasso(t, RejectExactDuplicate)
	clickAll(l, Pt(10, 10), Pt(50, 10), Pt(50, 50), Pt(11, 11))
	clickAll(l, Pt(70, 70), Pt(100, 70))

	groups := l.PointGroups()
	if len(groups) != 2 {
		t.Fatalf("PointGroups() has %d groups, want 2", len(groups))
	}
	if want := (PointGroup{Pt(70, 70), Pt(100, 70)}); !slices.Equal(groups[1], want) {
		t.Errorf("second group = %v, want %v", groups[1], want)
	}
	if l.PointIndex() != 4 || len(l.PointAll()) != 5 {
		t.Errorf("PointIndex() = %d, len(PointAll()) = %d", l.PointIndex(), len(l.PointAll()))
	}
}

func TestLassoHover(t *testing.T) {
	l, s := newTestLasso(t, RejectExactDuplicate)
	if r := l.Hover(Pt(30, 30)); !r.Empty() {
		t.Errorf("hover with nothing pending drew %v", r)
	}

	clickAll(l, Pt(10, 10), Pt(80, 10), Pt(80, 80))
	mask := s.ReadPixels(LayerMask)

	l.Hover(Pt(40, 80))
	if got := s.Interaction().GetPixel(60, 80); got.A != 255 {
		t.Errorf("rubber band pixel = %v, want opaque", got)
	}

	// Near the first vertex the band snaps to it; the previous band is
	// cleared.
	l.Hover(Pt(14, 16))
	if got := s.Interaction().GetPixel(60, 80); got.A != 0 {
		t.Errorf("stale rubber band pixel = %v, want transparent", got)
	}
	if got := s.Interaction().GetPixel(45, 45); got.A == 0 {
		t.Error("snapped rubber band missing on the diagonal to the first vertex")
	}
	if !slices.Equal(mask, s.ReadPixels(LayerMask)) {
		t.Error("hover changed the mask layer")
	}
}

func TestLassoCursor(t *testing.T) {
	l, _ := newTestLasso(t, RejectExactDuplicate)
	clickAll(l, Pt(10, 10), Pt(50, 10), Pt(50, 50))

	l.rewind()
	if l.PointIndex() != 1 || len(l.Pending()) != 2 {
		t.Fatalf("after rewind: index %d pending %v", l.PointIndex(), l.Pending())
	}
	l.advance()
	l.advance()
	if l.PointIndex() != 2 {
		t.Errorf("advance past the end: index %d, want 2", l.PointIndex())
	}

	l.rewind()
	l.rewind()
	l.rewind()
	l.rewind()
	if l.PointIndex() != -1 || l.State() != LassoIdle {
		t.Errorf("rewind past the start: index %d state %v", l.PointIndex(), l.State())
	}

	// A new vertex discards the rewound future.
	l.Click(Pt(90, 90))
	if all := l.PointAll(); len(all) != 1 || all[0] != Pt(90, 90) {
		t.Errorf("PointAll() after new click = %v", all)
	}
}

func TestLassoReopenReclose(t *testing.T) {
	l, _ := newTestLasso(t, RejectExactDuplicate)
	clickAll(l, Pt(10, 10), Pt(50, 10), Pt(50, 50), Pt(10, 10))
	if l.State() != LassoIdle {
		t.Fatal("polygon not closed")
	}

	l.reopen()
	if want := []Point{Pt(10, 10), Pt(50, 10), Pt(50, 50)}; !slices.Equal(l.Pending(), want) {
		t.Errorf("pending after reopen = %v, want %v", l.Pending(), want)
	}
	l.reclose()
	if len(l.Pending()) != 0 {
		t.Errorf("pending after reclose = %v", l.Pending())
	}
}
