// Package polar maps between antenna-pattern readings (angle, dB) and points
// inside the elliptical polar diagram.
//
// Angles are measured clockwise from the top of the diagram in 10° slots.
// Attenuation is mapped radially on a voltage-ratio scale: 0 dB lies on the
// ellipse boundary and larger values move towards the center.
package polar

import (
	"math"

	"github.com/philipparndt/antennareader/pkg/geometry"
)

const (
	// SlotStep is the angular distance between two slots in degrees
	SlotStep = 10
	// SlotCount is the number of angle slots in a full pattern
	SlotCount = 360 / SlotStep
	// MinDb is the attenuation on the ellipse boundary
	MinDb = 0.0
	// MaxDb is the attenuation at the center of the diagram
	MaxDb = 30.0
)

// ContourLevels are the dB values drawn as reference ellipses
var ContourLevels = []int{1, 2, 3, 4, 5, 6, 7, 8, 10, 15, 20, 25, 30}

// Slots returns all angle slots in ascending order (0, 10, ..., 350)
func Slots() []int {
	slots := make([]int, 0, SlotCount)
	for a := 0; a < 360; a += SlotStep {
		slots = append(slots, a)
	}
	return slots
}

// IsSlot reports whether angle is one of the canonical slots
func IsSlot(angle int) bool {
	return angle >= 0 && angle < 360 && angle%SlotStep == 0
}

// Linear converts an attenuation in dB into a radial scale factor
func Linear(db float64) float64 {
	return math.Pow(10, -db/20)
}

// ToDb converts a normalised radius into attenuation, clamped to [MinDb, MaxDb]
func ToDb(r float64) float64 {
	if r <= 0 {
		return MaxDb
	}
	return math.Max(MinDb, math.Min(-20*math.Log10(r), MaxDb))
}

// radians returns the screen-space direction of a slot. Slot 0 points up.
func radians(angle float64) float64 {
	return (angle - 90) * math.Pi / 180.0
}

// AngleDbToPoint returns the point for a reading on the ellipse with the
// given center and semi-axes
func AngleDbToPoint(angle int, db float64, center geometry.Vector2, halfW, halfH float64) geometry.Vector2 {
	e := geometry.Ellipse{Center: center, RX: halfW, RY: halfH}
	return e.PointAt(radians(float64(angle)), Linear(db))
}

// SpokeEnd returns the point on the radial line of angle at scale times the
// boundary distance. Scale 1 is the boundary, 1.1 the label position.
func SpokeEnd(angle int, center geometry.Vector2, halfW, halfH, scale float64) geometry.Vector2 {
	e := geometry.Ellipse{Center: center, RX: halfW, RY: halfH}
	return e.PointAt(radians(float64(angle)), scale)
}

// ContourRadii returns the semi-axes of the contour ellipse for level dB
func ContourRadii(level, halfW, halfH float64) (rx, ry float64) {
	f := Linear(level)
	return halfW * f, halfH * f
}

// Reading is the result of classifying a point in the diagram
type Reading struct {
	Angle int
	Db    float64
	Point geometry.Vector2 // Idealised point on the angle's radial line
}

// PointToAngleDb classifies pos into the nearest angle slot and the implied
// attenuation. The returned point is the canonical point for that pair, not
// pos itself. A click exactly on the center reports angle 0 at MaxDb.
func PointToAngleDb(pos, center geometry.Vector2, halfW, halfH float64) Reading {
	x := (pos.X - center.X) / halfW
	y := (pos.Y - center.Y) / halfH
	r := math.Sqrt(x*x + y*y)

	db := MaxDb
	angle := 0
	if r > 0 {
		db = ToDb(r)
		angle = nearestSlot(x, y, r)
	}

	return Reading{
		Angle: angle,
		Db:    db,
		Point: AngleDbToPoint(angle, db, center, halfW, halfH),
	}
}

// nearestSlot returns the slot whose direction best aligns with (x, y).
// Each direction also tests its opposite lobe; ties keep the first slot.
func nearestSlot(x, y, r float64) int {
	lowest := math.Inf(1)
	closest := 0
	for a := 0; a < 360; a += SlotStep {
		angle := a
		rad := radians(float64(a))
		dot := x*math.Cos(rad) + y*math.Sin(rad)
		if dot < 0 {
			angle = (angle + 180) % 360
			dot = -dot
		}
		deviation := 1 - math.Abs(dot/r)
		if deviation < lowest {
			lowest = deviation
			closest = angle
		}
	}
	return closest
}
