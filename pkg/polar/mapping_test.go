package polar

import (
	"math"
	"testing"

	"github.com/philipparndt/antennareader/pkg/geometry"
)

func TestSlots(t *testing.T) {
	slots := Slots()
	if len(slots) != SlotCount {
		t.Fatalf("expected %d slots, got %d", SlotCount, len(slots))
	}
	if slots[0] != 0 || slots[len(slots)-1] != 350 {
		t.Errorf("unexpected slot range %d..%d", slots[0], slots[len(slots)-1])
	}
	for i, a := range slots {
		if a != i*SlotStep {
			t.Errorf("slot %d = %d, want %d", i, a, i*SlotStep)
		}
		if !IsSlot(a) {
			t.Errorf("IsSlot(%d) = false", a)
		}
	}
	for _, a := range []int{-10, 5, 360, 365} {
		if IsSlot(a) {
			t.Errorf("IsSlot(%d) = true", a)
		}
	}
}

func TestAngleDbToPointCardinal(t *testing.T) {
	center := geometry.NewVector2(100, 100)

	tests := []struct {
		angle int
		db    float64
		want  geometry.Vector2
	}{
		{0, 0, geometry.NewVector2(100, 50)},    // top
		{90, 0, geometry.NewVector2(200, 100)},  // right
		{180, 0, geometry.NewVector2(100, 150)}, // bottom
		{270, 0, geometry.NewVector2(0, 100)},   // left
		{90, 20, geometry.NewVector2(110, 100)}, // 20 dB = factor 0.1
	}
	for _, tt := range tests {
		got := AngleDbToPoint(tt.angle, tt.db, center, 100, 50)
		if !got.ApproxEqual(tt.want, 1e-9) {
			t.Errorf("AngleDbToPoint(%d, %v) = %v, want %v", tt.angle, tt.db, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	center := geometry.NewVector2(240, 180)
	shapes := [][2]float64{{100, 100}, {150, 80}, {60, 120}}

	for _, s := range shapes {
		halfW, halfH := s[0], s[1]
		for _, angle := range Slots() {
			for db := 0.0; db <= MaxDb; db += 2.5 {
				p := AngleDbToPoint(angle, db, center, halfW, halfH)
				got := PointToAngleDb(p, center, halfW, halfH)

				if got.Angle != angle {
					t.Fatalf("shape %v: angle %d db %v classified as %d", s, angle, db, got.Angle)
				}
				if math.Abs(got.Db-db) > 1e-9 {
					t.Fatalf("shape %v: angle %d db %v round-tripped to %v", s, angle, db, got.Db)
				}
				if !got.Point.ApproxEqual(p, 1e-9) {
					t.Fatalf("shape %v: point %v round-tripped to %v", s, p, got.Point)
				}
			}
		}
	}
}

func TestPointToAngleDbCenter(t *testing.T) {
	center := geometry.NewVector2(200, 200)
	got := PointToAngleDb(center, center, 100, 100)

	if got.Angle != 0 || got.Db != MaxDb {
		t.Errorf("center click: got angle %d db %v", got.Angle, got.Db)
	}
	want := AngleDbToPoint(0, 30, center, 100, 100)
	if !got.Point.ApproxEqual(want, 1e-12) {
		t.Errorf("center click point %v, want %v", got.Point, want)
	}
}

func TestPointToAngleDbOutsideClampsToZero(t *testing.T) {
	center := geometry.NewVector2(0, 0)
	got := PointToAngleDb(geometry.NewVector2(300, 0), center, 100, 100)

	if got.Angle != 90 {
		t.Errorf("expected angle 90, got %d", got.Angle)
	}
	if got.Db != 0 {
		t.Errorf("expected 0 dB outside the ellipse, got %v", got.Db)
	}
	// Snapped back onto the boundary
	if !got.Point.ApproxEqual(geometry.NewVector2(100, 0), 1e-9) {
		t.Errorf("expected boundary point, got %v", got.Point)
	}
}

func TestPointToAngleDbSnapsToRadialLine(t *testing.T) {
	center := geometry.NewVector2(0, 0)
	// 13° clockwise from up, half way out: nearest slot is 10°
	rad := (13.0 - 90) * math.Pi / 180
	pos := geometry.NewVector2(50*math.Cos(rad), 50*math.Sin(rad))

	got := PointToAngleDb(pos, center, 100, 100)
	if got.Angle != 10 {
		t.Fatalf("expected slot 10, got %d", got.Angle)
	}
	wantDb := -20 * math.Log10(0.5)
	if math.Abs(got.Db-wantDb) > 1e-9 {
		t.Errorf("expected %v dB, got %v", wantDb, got.Db)
	}
	if !got.Point.ApproxEqual(AngleDbToPoint(10, wantDb, center, 100, 100), 1e-9) {
		t.Errorf("point not on the 10° radial: %v", got.Point)
	}
}

func TestPointToAngleDbOppositeLobe(t *testing.T) {
	center := geometry.NewVector2(0, 0)
	// Straight down is slot 180, reached by folding slot 0
	got := PointToAngleDb(geometry.NewVector2(0, 40), center, 100, 100)
	if got.Angle != 180 {
		t.Errorf("expected 180, got %d", got.Angle)
	}
}

func TestToDbClamp(t *testing.T) {
	if ToDb(0) != MaxDb {
		t.Errorf("ToDb(0) = %v", ToDb(0))
	}
	if ToDb(0.001) != MaxDb {
		t.Errorf("ToDb(0.001) = %v, want clamp to %v", ToDb(0.001), MaxDb)
	}
	if ToDb(2) != MinDb {
		t.Errorf("ToDb(2) = %v, want %v", ToDb(2), MinDb)
	}
	if math.Abs(ToDb(0.1)-20) > 1e-9 {
		t.Errorf("ToDb(0.1) = %v, want 20", ToDb(0.1))
	}
}

func TestContourRadii(t *testing.T) {
	rx, ry := ContourRadii(20, 200, 100)
	if math.Abs(rx-20) > 1e-9 || math.Abs(ry-10) > 1e-9 {
		t.Errorf("ContourRadii(20) = %v, %v", rx, ry)
	}
	if ContourLevels[len(ContourLevels)-1] != int(MaxDb) {
		t.Errorf("outermost contour should be %v dB", MaxDb)
	}
}

func TestSpokeEnd(t *testing.T) {
	center := geometry.NewVector2(0, 0)
	p := SpokeEnd(0, center, 100, 100, 1.1)
	if !p.ApproxEqual(geometry.NewVector2(0, -110), 1e-9) {
		t.Errorf("SpokeEnd(0, 1.1) = %v", p)
	}
}
