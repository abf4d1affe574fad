package geometry

import "math"

// Rect is the axis-aligned rectangle spanned by two arbitrary corner points.
// The corners are normalised with min/max, so either point may be the
// top-left or the bottom-right one.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromCorners builds the rectangle spanned by a and b
func RectFromCorners(a, b Vector2) Rect {
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Right:  math.Max(a.X, b.X),
		Bottom: math.Max(a.Y, b.Y),
	}
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vector2 {
	return Vector2{X: r.Left + r.Width()/2, Y: r.Top + r.Height()/2}
}

// Ellipse returns the ellipse inscribed in the rectangle
func (r Rect) Ellipse() Ellipse {
	return Ellipse{Center: r.Center(), RX: r.Width() / 2, RY: r.Height() / 2}
}

// Edge identifies one side of a rectangle
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns the edge name
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "Left"
	case EdgeRight:
		return "Right"
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	default:
		return "None"
	}
}

// Horizontal reports whether dragging the edge changes the width
func (e Edge) Horizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}

// Vertical reports whether dragging the edge changes the height
func (e Edge) Vertical() bool {
	return e == EdgeTop || e == EdgeBottom
}

// HitEdge returns the edge within threshold of pos.
// The point must lie inside the perpendicular span of a side for that side to
// match. Sides are tested in the order Left, Right, Bottom, Top and the first
// match wins.
func (r Rect) HitEdge(pos Vector2, threshold float64) Edge {
	if pos.Y >= r.Top && pos.Y <= r.Bottom {
		if math.Abs(pos.X-r.Left) <= threshold {
			return EdgeLeft
		}
		if math.Abs(pos.X-r.Right) <= threshold {
			return EdgeRight
		}
	}
	if pos.X >= r.Left && pos.X <= r.Right {
		if math.Abs(pos.Y-r.Bottom) <= threshold {
			return EdgeBottom
		}
		if math.Abs(pos.Y-r.Top) <= threshold {
			return EdgeTop
		}
	}
	return EdgeNone
}

// Ellipse is an axis-aligned ellipse
type Ellipse struct {
	Center Vector2
	RX, RY float64 // Semi-axes
}

// Contains reports whether pos lies inside or on the ellipse.
// A degenerate ellipse (zero semi-axis) contains nothing.
func (e Ellipse) Contains(pos Vector2) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx := (pos.X - e.Center.X) / e.RX
	dy := (pos.Y - e.Center.Y) / e.RY
	return dx*dx+dy*dy <= 1
}

// PointAt returns the point on the ellipse scaled by factor at the given
// angle in radians, measured from the positive x axis
func (e Ellipse) PointAt(rad, factor float64) Vector2 {
	return Vector2{
		X: e.Center.X + e.RX*factor*math.Cos(rad),
		Y: e.Center.Y + e.RY*factor*math.Sin(rad),
	}
}
