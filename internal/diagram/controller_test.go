package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/antennareader/pkg/geometry"
	"github.com/philipparndt/antennareader/pkg/pattern"
	"github.com/philipparndt/antennareader/pkg/polar"
)

func v(x, y float64) geometry.Vector2 {
	return geometry.NewVector2(x, y)
}

// draw drags a diagram from a to b with an identity view
func draw(c *Controller, a, b geometry.Vector2) {
	c.PointerDown(a)
	c.PointerMove(b)
	c.PointerUp()
}

func newWithDiagram(t *testing.T) *Controller {
	t.Helper()
	c := NewController(DefaultOptions())
	draw(c, v(100, 100), v(300, 300))
	require.True(t, c.HasDiagram())
	return c
}

func currentDiagram(t *testing.T, c *Controller) Diagram {
	t.Helper()
	d, ok := c.CurrentGeometry().(Diagram)
	require.True(t, ok, "expected a diagram, got %T", c.CurrentGeometry())
	return d
}

func TestDrawCreatesDiagram(t *testing.T) {
	c := NewController(DefaultOptions())
	assert.False(t, c.HasDiagram())
	assert.IsType(t, NoDiagram{}, c.CurrentGeometry())

	c.PointerDown(v(100, 100))
	assert.Equal(t, ModeDrawing, c.Mode())
	assert.IsType(t, Sketch{}, c.CurrentGeometry())

	c.PointerMove(v(200, 250))
	c.PointerMove(v(300, 300))
	c.PointerUp()

	d := currentDiagram(t, c)
	assert.Equal(t, v(100, 100), d.Start)
	assert.Equal(t, v(300, 300), d.End)
	assert.Equal(t, ModeIdle, c.Mode())
	assert.True(t, c.CanUndo())
}

func TestClickWithoutDragLeavesNoDiagram(t *testing.T) {
	c := NewController(DefaultOptions())
	c.PointerDown(v(100, 100))
	c.PointerUp()

	assert.False(t, c.HasDiagram())
	assert.IsType(t, NoDiagram{}, c.CurrentGeometry())
	assert.Equal(t, ModeIdle, c.Mode())

	// The next press starts a fresh drawing
	draw(c, v(10, 10), v(50, 60))
	assert.True(t, c.HasDiagram())
}

func TestClickWithStationaryMoveLeavesNoDiagram(t *testing.T) {
	c := NewController(DefaultOptions())
	c.PointerDown(v(100, 100))
	c.PointerMove(v(100, 100))
	assert.IsType(t, Sketch{}, c.CurrentGeometry())
	c.PointerUp()

	assert.False(t, c.HasDiagram())
	assert.IsType(t, NoDiagram{}, c.CurrentGeometry())

	draw(c, v(300, 300), v(400, 400))
	require.True(t, c.HasDiagram())
	assert.Equal(t, Diagram{Start: v(300, 300), End: v(400, 400)}, c.CurrentGeometry())
}

func TestDrawingWithoutAreaIsDropped(t *testing.T) {
	c := NewController(DefaultOptions())
	c.PointerDown(v(100, 100))
	c.PointerMove(v(100, 250))
	c.PointerUp()

	assert.False(t, c.HasDiagram())

	draw(c, v(10, 10), v(50, 60))
	assert.True(t, c.HasDiagram())
}

func TestResizeLeftRecomputesPoints(t *testing.T) {
	c := newWithDiagram(t)
	c.SetLocked(true)
	c.PointerDown(v(200, 120))
	c.PointerUp()
	c.SetLocked(false)
	require.Equal(t, 1, c.MeasurementCount())
	before := c.AllMeasurements()[0]

	c.PointerDown(v(102, 200))
	assert.Equal(t, ModeResizing, c.Mode())
	c.PointerMove(v(50, 200))
	c.PointerUp()

	d := currentDiagram(t, c)
	assert.Equal(t, v(50, 100), d.Start)
	assert.Equal(t, v(300, 300), d.End)

	after := c.AllMeasurements()[0]
	assert.Equal(t, before.Angle, after.Angle)
	assert.Equal(t, before.Db, after.Db)
	f := d.Frame()
	assert.Equal(t, polar.AngleDbToPoint(after.Angle, after.Db, f.Center, f.HalfW, f.HalfH), after.Point)
	assert.Equal(t, 50.0, d.Rect().Left)
}

func TestMoveTranslatesDiagram(t *testing.T) {
	c := newWithDiagram(t)

	c.PointerDown(v(200, 200))
	assert.Equal(t, ModeMoving, c.Mode())
	c.PointerMove(v(210, 205))
	c.PointerMove(v(230, 215))
	c.PointerUp()

	d := currentDiagram(t, c)
	assert.Equal(t, v(130, 115), d.Start)
	assert.Equal(t, v(330, 315), d.End)
}

func TestClickOutsideIsNoop(t *testing.T) {
	c := newWithDiagram(t)
	depth := c.history.UndoDepth()

	// Inside the bounding box but outside the ellipse and away from edges
	c.PointerDown(v(125, 125))
	assert.Equal(t, ModeIdle, c.Mode())
	c.PointerMove(v(500, 500))
	c.PointerUp()

	d := currentDiagram(t, c)
	assert.Equal(t, v(100, 100), d.Start)
	assert.Equal(t, depth, c.history.UndoDepth())
}

func TestMeasureAtCenter(t *testing.T) {
	c := newWithDiagram(t)
	c.SetLocked(true)

	c.PointerDown(v(200, 200))
	c.PointerUp()

	entries := c.AllMeasurements()
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Angle)
	assert.Equal(t, polar.MaxDb, entries[0].Db)
	assert.Equal(t, polar.AngleDbToPoint(0, polar.MaxDb, v(200, 200), 100, 100), entries[0].Point)
}

func TestMeasureOverwritesSlot(t *testing.T) {
	c := newWithDiagram(t)
	c.SetLocked(true)

	// Straight up, on the boundary and half way in
	c.PointerDown(v(200, 100))
	c.PointerDown(v(200, 150))

	entries := c.AllMeasurements()
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Angle)
	assert.InDelta(t, polar.ToDb(0.5), entries[0].Db, 1e-9)
}

func TestLockedWithoutDiagramIsNoop(t *testing.T) {
	c := NewController(DefaultOptions())
	c.SetLocked(true)

	c.PointerDown(v(50, 50))
	c.PointerMove(v(150, 150))
	c.PointerUp()

	assert.False(t, c.HasDiagram())
	assert.Equal(t, 0, c.MeasurementCount())
	assert.False(t, c.CanUndo())
	assert.Equal(t, ModeIdle, c.Mode())
}

func TestUndoReturnsToInitialState(t *testing.T) {
	c := NewController(DefaultOptions())
	draw(c, v(100, 100), v(300, 300))
	c.SetLocked(true)
	for _, p := range []geometry.Vector2{v(200, 110), v(290, 200), v(200, 290), v(110, 200)} {
		c.PointerDown(p)
		c.PointerUp()
	}
	require.Equal(t, 4, c.MeasurementCount())

	steps := 0
	for c.Undo() {
		steps++
	}
	assert.Equal(t, 5, steps)
	assert.False(t, c.HasDiagram())
	assert.Equal(t, 0, c.MeasurementCount())
	assert.False(t, c.IsLocked())
}

func TestHistorySaturates(t *testing.T) {
	c := newWithDiagram(t)
	c.SetLocked(true)

	// 31 mutations on top of the draw
	for i := 0; i < 31; i++ {
		c.PointerDown(v(200, 100+float64(i%10)))
	}

	undone := 0
	for c.Undo() {
		undone++
	}
	assert.Equal(t, 30, undone)
	// The draw checkpoint fell off, so the diagram survives
	assert.True(t, c.HasDiagram())
}

func TestUndoRedoIsNoop(t *testing.T) {
	c := newWithDiagram(t)
	c.SetLocked(true)
	c.PointerDown(v(200, 120))
	c.PointerDown(v(280, 200))

	geom := c.CurrentGeometry()
	entries := c.AllMeasurements()
	locked := c.IsLocked()

	require.True(t, c.Undo())
	require.True(t, c.Redo())

	assert.Equal(t, geom, c.CurrentGeometry())
	assert.Equal(t, entries, c.AllMeasurements())
	assert.Equal(t, locked, c.IsLocked())
	assert.False(t, c.CanRedo())
}

func TestUndoDoesNotRecordItself(t *testing.T) {
	c := newWithDiagram(t)
	c.DeleteMeasurements()
	c.DeleteDiagram()

	require.True(t, c.Undo())
	assert.Equal(t, 2, c.history.UndoDepth())
	assert.Equal(t, 1, c.history.RedoDepth())

	// A fresh action forgets the redo branch
	c.DeleteMeasurements()
	assert.False(t, c.CanRedo())
}

func TestUndoRestoresLockFlag(t *testing.T) {
	c := newWithDiagram(t)
	c.SetLocked(true)
	c.PointerDown(v(200, 120))
	c.DeleteDiagram()
	assert.False(t, c.IsLocked())

	require.True(t, c.Undo())
	assert.True(t, c.IsLocked())
	assert.Equal(t, 1, c.MeasurementCount())
}

func TestKeysRequireLockedDiagram(t *testing.T) {
	c := NewController(DefaultOptions())
	c.SetLocked(true)
	assert.False(t, c.KeyDown(KeyRight))

	c.SetLocked(false)
	draw(c, v(100, 100), v(300, 300))
	assert.False(t, c.KeyDown(KeyRight))
	assert.Equal(t, v(100, 100), currentDiagram(t, c).Start)
}

func TestArrowNudge(t *testing.T) {
	c := newWithDiagram(t)
	c.SetLocked(true)
	c.PointerDown(v(300, 200))
	before := c.AllMeasurements()[0]

	tests := []struct {
		key   Key
		start geometry.Vector2
	}{
		{KeyRight, v(110, 100)},
		{KeyDown, v(110, 110)},
		{KeyLeft, v(100, 110)},
		{KeyUp, v(100, 100)},
	}
	for _, tt := range tests {
		require.True(t, c.KeyDown(tt.key))
		assert.Equal(t, tt.start, currentDiagram(t, c).Start)
	}

	c.KeyDown(KeyRight)
	after := c.AllMeasurements()[0]
	assert.Equal(t, before.Angle, after.Angle)
	assert.Equal(t, before.Db, after.Db)
	assert.InDelta(t, before.Point.X+10, after.Point.X, 1e-9)
	assert.InDelta(t, before.Point.Y, after.Point.Y, 1e-9)
}

func TestRotationAccumulates(t *testing.T) {
	c := newWithDiagram(t)
	c.SetLocked(true)
	c.SetBackground("scan.png")

	for i := 0; i < 400; i++ {
		c.KeyDown(KeyRotateCW)
	}
	c.KeyDown(KeyRotateCCW)
	assert.Equal(t, 399.0, c.BackgroundRotation())

	c.DeleteBackgroundImage()
	assert.Equal(t, 0.0, c.BackgroundRotation())
	assert.Empty(t, c.BackgroundPath())
}

func TestScrollZoomsOnlyWithDiagram(t *testing.T) {
	c := NewController(DefaultOptions())
	c.Scroll(v(100, 100), 1)
	assert.Equal(t, 1.0, c.View().Zoom)

	draw(c, v(100, 100), v(300, 300))
	c.Scroll(v(100, 100), 1)
	assert.InDelta(t, 1.1, c.View().Zoom, 1e-12)
}

func TestPointerUsesViewTransform(t *testing.T) {
	c := newWithDiagram(t)
	c.Scroll(v(0, 0), 1)
	c.Scroll(v(0, 0), 1)
	zoom := c.View().Zoom

	// The ellipse center in screen space
	c.SetLocked(true)
	c.PointerDown(v(200*zoom, 200*zoom))

	entries := c.AllMeasurements()
	require.Len(t, entries, 1)
	assert.Equal(t, polar.MaxDb, entries[0].Db)
}

func TestInterpolate(t *testing.T) {
	c := NewController(DefaultOptions())
	assert.False(t, c.InterpolateMeasurements())

	draw(c, v(100, 100), v(300, 300))
	assert.False(t, c.InterpolateMeasurements())

	ok := c.SetMeasurementsFromImport(map[int]float64{30: 10, 60: 16, 300: 4})
	require.True(t, ok)
	require.True(t, c.InterpolateMeasurements())
	assert.True(t, c.IsComplete())
	assert.Equal(t, 0, c.Missing())

	byAngle := map[int]pattern.Entry{}
	for _, e := range c.AllMeasurements() {
		byAngle[e.Angle] = e
	}
	assert.Equal(t, 10.0, byAngle[30].Db)
	assert.Equal(t, 16.0, byAngle[60].Db)
	assert.InDelta(t, 12.0, byAngle[40].Db, 1e-9)

	require.True(t, c.Undo())
	assert.Equal(t, 3, c.MeasurementCount())
}

func TestImportRequiresDiagram(t *testing.T) {
	c := NewController(DefaultOptions())
	assert.False(t, c.SetMeasurementsFromImport(map[int]float64{0: 3}))
	assert.Equal(t, 0, c.MeasurementCount())
	assert.False(t, c.CanUndo())

	draw(c, v(0, 0), v(200, 100))
	require.True(t, c.SetMeasurementsFromImport(map[int]float64{0: 3, 90: 6}))
	entries := c.AllMeasurements()
	require.Len(t, entries, 2)
	d := currentDiagram(t, c)
	f := d.Frame()
	assert.Equal(t, f.Place(90, 6), entries[1].Point)
}

func TestImportIgnoresOffSlotAngles(t *testing.T) {
	c := newWithDiagram(t)
	require.True(t, c.SetMeasurementsFromImport(map[int]float64{5: 3, 360: 4, -10: 2, 180: 6}))
	assert.Equal(t, 1, c.MeasurementCount())
	assert.Equal(t, 35, c.Missing())

	require.True(t, c.InterpolateMeasurements())
	assert.Equal(t, 36, c.MeasurementCount())
	assert.True(t, c.IsComplete())
}

func TestCursorHints(t *testing.T) {
	c := newWithDiagram(t)

	tests := []struct {
		name string
		pos  geometry.Vector2
		want Cursor
	}{
		{"left edge", v(101, 200), CursorResizeHorizontal},
		{"right edge", v(299, 200), CursorResizeHorizontal},
		{"top edge", v(200, 99), CursorResizeVertical},
		{"bottom edge", v(200, 305), CursorResizeVertical},
		{"inside", v(200, 200), CursorMove},
		{"outside", v(500, 500), CursorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.PointerMove(tt.pos))
		})
	}

	c.SetLocked(true)
	assert.Equal(t, CursorDefault, c.CursorAt(v(101, 200)))
}

func TestHandleDispatches(t *testing.T) {
	c := NewController(DefaultOptions())
	events := []Event{
		{Kind: PointerDown, Position: v(100, 100)},
		{Kind: PointerMove, Position: v(300, 300)},
		{Kind: PointerUp, Position: v(300, 300)},
		{Kind: Scroll, Position: v(200, 200), Direction: -1},
	}
	for _, ev := range events {
		c.Handle(ev)
	}
	assert.True(t, c.HasDiagram())
	assert.InDelta(t, 0.9, c.View().Zoom, 1e-12)

	c.ToggleLocked()
	c.Handle(Event{Kind: KeyPress, Key: KeyRotateCW})
	assert.Equal(t, 1.0, c.BackgroundRotation())
	assert.Equal(t, CursorDefault, c.Handle(Event{Kind: PointerMove, Position: v(200, 200)}))
}
