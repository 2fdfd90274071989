package maskedit

import "testing"

func TestPointNear(t *testing.T) {
	origin := Pt(10, 10)
	tests := []struct {
		name string
		q    Point
		want bool
	}{
		{"same point", Pt(10, 10), true},
		{"corner of range", Pt(20, 0), true},
		{"just outside x", Pt(20.5, 10), false},
		{"just outside y", Pt(10, -0.01), false},
		{"diagonal inside", Pt(17, 3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := origin.Near(tt.q, 10); got != tt.want {
				t.Errorf("%v.Near(%v, 10) = %v, want %v", origin, tt.q, got, tt.want)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 7)
	if got := p.Add(q); got != Pt(4, 11) {
		t.Errorf("Add = %v, want (4,11)", got)
	}
	if got := p.Sub(q); got != Pt(2, -3) {
		t.Errorf("Sub = %v, want (2,-3)", got)
	}
	if got := p.Chebyshev(q); got != 3 {
		t.Errorf("Chebyshev = %v, want 3", got)
	}
	if got := p.String(); got != "(3,4)" {
		t.Errorf("String = %q, want (3,4)", got)
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := bounds(nil); ok {
		t.Error("bounds(nil) ok = true, want false")
	}
	lo, hi, ok := bounds([]Point{Pt(5, 9), Pt(-1, 3), Pt(7, 4)})
	if !ok || lo != Pt(-1, 3) || hi != Pt(7, 9) {
		t.Errorf("bounds = %v %v %v, want (-1,3) (7,9) true", lo, hi, ok)
	}
}
