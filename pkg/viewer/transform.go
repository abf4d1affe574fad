package viewer

import (
	"math"

	"github.com/philipparndt/antennareader/pkg/geometry"
)

const (
	// MinZoom and MaxZoom bound the zoom factor
	MinZoom = 0.1
	MaxZoom = 12.0

	zoomInStep  = 1.1
	zoomOutStep = 0.9
)

// Transform maps between screen coordinates and logical diagram coordinates:
// screen = logical*Zoom + Origin
type Transform struct {
	Origin geometry.Vector2 // Screen position of the logical origin
	Zoom   float64          // Uniform scale factor
}

// NewTransform returns the identity transform
func NewTransform() Transform {
	return Transform{Zoom: 1}
}

// ToLogical converts a screen point to logical coordinates
func (t Transform) ToLogical(screen geometry.Vector2) geometry.Vector2 {
	return screen.Sub(t.Origin).Div(t.Zoom)
}

// ToScreen converts a logical point to screen coordinates
func (t Transform) ToScreen(logical geometry.Vector2) geometry.Vector2 {
	return logical.Mul(t.Zoom).Add(t.Origin)
}

// ZoomAt zooms in (direction > 0) or out (direction < 0) keeping the logical
// point under the screen position fixed. A zero direction does nothing.
func (t *Transform) ZoomAt(screen geometry.Vector2, direction int) {
	if direction == 0 {
		return
	}
	before := t.ToLogical(screen)

	factor := zoomOutStep
	if direction > 0 {
		factor = zoomInStep
	}
	t.Zoom = math.Max(MinZoom, math.Min(t.Zoom*factor, MaxZoom))

	t.Origin = screen.Sub(before.Mul(t.Zoom))
}

// Reset restores the identity transform
func (t *Transform) Reset() {
	*t = NewTransform()
}
