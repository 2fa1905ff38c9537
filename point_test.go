package sierpinski

import "testing"

func TestRectContains(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Pt(0, 0), true},
		{"far corner", Pt(1, 1), true},
		{"center", Pt(0.5, 0.5), true},
		{"on right edge", Pt(1, 0.3), true},
		{"left of square", Pt(-0.001, 0.5), false},
		{"above square", Pt(0.5, 1.0001), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitSquare.Contains(tt.p); got != tt.want {
				t.Errorf("UnitSquare.Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	got, ok := Bounds([]Point{Pt(0.5, 0.25), Pt(-1, 2), Pt(3, -4)})
	if !ok {
		t.Fatal("Bounds() ok = false for non-empty input")
	}
	want := Rect{Min: Pt(-1, -4), Max: Pt(3, 2)}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestBoundsEmpty(t *testing.T) {
	got, ok := Bounds(nil)
	if ok {
		t.Error("Bounds(nil) ok = true, want false")
	}
	if got != (Rect{}) {
		t.Errorf("Bounds(nil) = %+v, want zero Rect", got)
	}
}

func TestPointArithmetic(t *testing.T) {
	if got := Pt(3, 6).Div(3); got != Pt(1, 2) {
		t.Errorf("Div = %v, want (1, 2)", got)
	}
	if got := Pt(1, 2).Add(Pt(0.5, -1)); got != Pt(1.5, 1) {
		t.Errorf("Add = %v, want (1.5, 1)", got)
	}
}
