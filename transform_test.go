package tilewall

import "testing"

func TestViewTransform(t *testing.T) {
	m := viewTransform(2, 10, -5)
	x, y := transformPoint(m, 3, 4)
	if x != 16 || y != 3 {
		t.Errorf("transformPoint = (%v, %v), want (16, 3)", x, y)
	}
}

func TestInvertAffine(t *testing.T) {
	tests := []struct {
		name string
		m    [6]float64
	}{
		{"identity", identityTransform},
		{"zoom and pan", viewTransform(1.5, -300, 120)},
		{"general", [6]float64{2, 1, -1, 3, 7, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := invertAffine(tt.m)
			for _, p := range []Vec2{{0, 0}, {12, -7}, {-300, 45}} {
				x, y := transformPoint(tt.m, p.X, p.Y)
				bx, by := transformPoint(inv, x, y)
				if !approxEqual(bx, p.X, 1e-9) || !approxEqual(by, p.Y, 1e-9) {
					t.Errorf("%v -> (%v, %v)", p, bx, by)
				}
			}
		})
	}
}

func TestInvertAffine_Singular(t *testing.T) {
	if got := invertAffine([6]float64{0, 0, 0, 0, 5, 5}); got != identityTransform {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestTransformRect(t *testing.T) {
	got := transformRect(viewTransform(0.5, 100, 100), Rect{X: -40, Y: 20, Width: 80, Height: 60})
	want := Rect{X: 80, Y: 110, Width: 40, Height: 30}
	if got != want {
		t.Errorf("transformRect = %+v, want %+v", got, want)
	}
	flipped := transformRect([6]float64{-1, 0, 0, -1, 0, 0}, Rect{X: 0, Y: 0, Width: 10, Height: 20})
	if flipped != (Rect{X: -10, Y: -20, Width: 10, Height: 20}) {
		t.Errorf("flipped = %+v", flipped)
	}
}
