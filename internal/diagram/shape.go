// Package diagram implements the interactive polar diagram: the ellipse the
// user draws over a background image, the readings recorded on it and the
// pointer/keyboard state machine that edits both.
package diagram

import (
	"github.com/philipparndt/antennareader/pkg/geometry"
	"github.com/philipparndt/antennareader/pkg/pattern"
)

// Shape is the geometry of the diagram. It is one of NoDiagram, Sketch or
// Diagram.
type Shape interface {
	isShape()
}

// NoDiagram means nothing has been drawn
type NoDiagram struct{}

// Sketch is a diagram being drawn whose second corner is not placed yet
type Sketch struct {
	Start geometry.Vector2
}

// Diagram is a complete diagram bounded by two corner points. The corners
// are kept as placed; either may be the top-left one.
type Diagram struct {
	Start, End geometry.Vector2
}

func (NoDiagram) isShape() {}
func (Sketch) isShape()    {}
func (Diagram) isShape()   {}

// Rect returns the bounding rectangle of the diagram
func (d Diagram) Rect() geometry.Rect {
	return geometry.RectFromCorners(d.Start, d.End)
}

// Ellipse returns the ellipse inscribed in the bounding rectangle
func (d Diagram) Ellipse() geometry.Ellipse {
	return d.Rect().Ellipse()
}

// Frame returns the frame readings are placed in
func (d Diagram) Frame() pattern.Frame {
	return pattern.FrameFromRect(d.Rect())
}

// Degenerate reports whether the diagram has no area
func (d Diagram) Degenerate() bool {
	r := d.Rect()
	return r.Width() == 0 || r.Height() == 0
}

// Translate moves both corners by delta
func (d Diagram) Translate(delta geometry.Vector2) Diagram {
	return Diagram{Start: d.Start.Add(delta), End: d.End.Add(delta)}
}

// Resize moves one coordinate of one corner to pos. Left and Top edit the
// start corner, Right and Bottom the end corner, regardless of which corner
// currently lies where, so a resize may flip the rectangle.
func (d Diagram) Resize(edge geometry.Edge, pos geometry.Vector2) Diagram {
	switch edge {
	case geometry.EdgeLeft:
		d.Start.X = pos.X
	case geometry.EdgeRight:
		d.End.X = pos.X
	case geometry.EdgeTop:
		d.Start.Y = pos.Y
	case geometry.EdgeBottom:
		d.End.Y = pos.Y
	}
	return d
}
