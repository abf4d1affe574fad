package geometry

import (
	"math"
	"testing"
)

func TestRectFromCornersNormalises(t *testing.T) {
	// Bottom-right corner given first
	r := RectFromCorners(NewVector2(300, 200), NewVector2(100, 50))

	if r.Left != 100 || r.Top != 50 || r.Right != 300 || r.Bottom != 200 {
		t.Fatalf("unexpected rect: %+v", r)
	}
	if r.Width() != 200 || r.Height() != 150 {
		t.Errorf("size failed: got %vx%v", r.Width(), r.Height())
	}
	if c := r.Center(); c != NewVector2(200, 125) {
		t.Errorf("Center failed: got %v", c)
	}
}

func TestEllipseContains(t *testing.T) {
	e := RectFromCorners(NewVector2(0, 0), NewVector2(200, 100)).Ellipse()

	tests := []struct {
		name string
		pos  Vector2
		want bool
	}{
		{"center", NewVector2(100, 50), true},
		{"right vertex", NewVector2(200, 50), true},
		{"top vertex", NewVector2(100, 0), true},
		{"rect corner", NewVector2(5, 5), false},
		{"outside", NewVector2(250, 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Contains(tt.pos); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestEllipseContainsDegenerate(t *testing.T) {
	e := RectFromCorners(NewVector2(10, 10), NewVector2(10, 50)).Ellipse()
	if e.Contains(NewVector2(10, 30)) {
		t.Error("zero-width ellipse should contain nothing")
	}
}

func TestHitEdge(t *testing.T) {
	r := RectFromCorners(NewVector2(100, 100), NewVector2(300, 300))

	tests := []struct {
		name string
		pos  Vector2
		want Edge
	}{
		{"left", NewVector2(95, 200), EdgeLeft},
		{"right", NewVector2(305, 200), EdgeRight},
		{"top", NewVector2(200, 92), EdgeTop},
		{"bottom", NewVector2(200, 309), EdgeBottom},
		{"inside", NewVector2(200, 200), EdgeNone},
		{"left outside span", NewVector2(100, 350), EdgeNone},
		{"beyond threshold", NewVector2(85, 200), EdgeNone},
		// At a corner both spans match; Left is tested before Top
		{"corner", NewVector2(100, 100), EdgeLeft},
		// Right is tested before Bottom
		{"bottom-right corner", NewVector2(300, 300), EdgeRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.HitEdge(tt.pos, 10); got != tt.want {
				t.Errorf("HitEdge(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestHitEdgeBottomBeforeTop(t *testing.T) {
	// A flat rectangle where the point is within threshold of both top and bottom
	r := RectFromCorners(NewVector2(0, 0), NewVector2(100, 6))
	if got := r.HitEdge(NewVector2(50, 3), 10); got != EdgeBottom {
		t.Errorf("expected Bottom to win over Top, got %v", got)
	}
}

func TestEllipsePointAt(t *testing.T) {
	e := Ellipse{Center: NewVector2(100, 100), RX: 50, RY: 20}

	p := e.PointAt(0, 1)
	if !p.ApproxEqual(NewVector2(150, 100), 1e-9) {
		t.Errorf("PointAt(0) = %v", p)
	}
	p = e.PointAt(math.Pi/2, 0.5)
	if !p.ApproxEqual(NewVector2(100, 110), 1e-9) {
		t.Errorf("PointAt(pi/2, 0.5) = %v", p)
	}
}
