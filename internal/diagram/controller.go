package diagram

import (
	"github.com/philipparndt/antennareader/pkg/geometry"
	"github.com/philipparndt/antennareader/pkg/history"
	"github.com/philipparndt/antennareader/pkg/pattern"
	"github.com/philipparndt/antennareader/pkg/polar"
	"github.com/philipparndt/antennareader/pkg/viewer"
)

// Options tunes the interaction
type Options struct {
	ResizeThreshold float64 // Logical distance within which an edge grabs the pointer
	NudgeStep       float64 // Logical distance an arrow key moves the diagram
	RotationStep    float64 // Degrees one rotate key turns the background
	HistoryCapacity int     // Undo and redo steps kept
}

// DefaultOptions returns the standard interaction settings
func DefaultOptions() Options {
	return Options{
		ResizeThreshold: 10,
		NudgeStep:       10,
		RotationStep:    1,
		HistoryCapacity: history.DefaultCapacity,
	}
}

// Controller owns the state of one diagram and turns input events into
// mutations of it. It is not safe for concurrent use; the caller delivers
// events from a single UI thread.
type Controller struct {
	opts Options

	shape    Shape
	readings *pattern.Store
	locked   bool

	mode       Mode
	resizeEdge geometry.Edge
	moveAnchor geometry.Vector2

	view       viewer.Transform
	background string
	rotation   float64

	history   *history.History[Snapshot]
	restoring bool
}

// NewController creates a controller with no diagram
func NewController(opts Options) *Controller {
	return &Controller{
		opts:     opts,
		shape:    NoDiagram{},
		readings: pattern.NewStore(),
		view:     viewer.NewTransform(),
		history:  history.New[Snapshot](opts.HistoryCapacity),
	}
}

// HasDiagram reports whether both corners of the diagram are placed
func (c *Controller) HasDiagram() bool {
	_, ok := c.shape.(Diagram)
	return ok
}

// CurrentGeometry returns the diagram shape
func (c *Controller) CurrentGeometry() Shape {
	return c.shape
}

// IsLocked reports whether clicks record measurements
func (c *Controller) IsLocked() bool {
	return c.locked
}

// Mode returns the current drag state
func (c *Controller) Mode() Mode {
	return c.mode
}

// MeasurementCount returns the number of measured angle slots
func (c *Controller) MeasurementCount() int {
	return c.readings.Count()
}

// IsComplete reports whether every angle slot is measured
func (c *Controller) IsComplete() bool {
	return c.readings.Complete()
}

// Missing returns the number of unmeasured angle slots
func (c *Controller) Missing() int {
	return c.readings.Missing()
}

// AllMeasurements returns the readings in ascending angle order
func (c *Controller) AllMeasurements() []pattern.Entry {
	return c.readings.All()
}

// Polyline returns the reading points for drawing the pattern outline
func (c *Controller) Polyline() []geometry.Vector2 {
	return c.readings.Polyline()
}

// View returns the current view transform
func (c *Controller) View() viewer.Transform {
	return c.view
}

// BackgroundPath returns the path of the background image, if any
func (c *Controller) BackgroundPath() string {
	return c.background
}

// BackgroundRotation returns the background rotation in degrees
func (c *Controller) BackgroundRotation() float64 {
	return c.rotation
}

// CanUndo reports whether an undo step is available
func (c *Controller) CanUndo() bool {
	return c.history.CanUndo()
}

// CanRedo reports whether a redo step is available
func (c *Controller) CanRedo() bool {
	return c.history.CanRedo()
}

// SetLocked switches between editing and measuring
func (c *Controller) SetLocked(locked bool) {
	c.locked = locked
}

// ToggleLocked flips the lock and returns the new value
func (c *Controller) ToggleLocked() bool {
	c.locked = !c.locked
	return c.locked
}

// PointerDown starts the action the position selects. In order: record a
// measurement when locked, grab an edge, grab the ellipse, or start drawing
// when no diagram exists.
func (c *Controller) PointerDown(screen geometry.Vector2) {
	pos := c.view.ToLogical(screen)

	d, hasDiagram := c.shape.(Diagram)
	if c.locked {
		if hasDiagram {
			c.measure(d, pos)
		}
		return
	}

	if !hasDiagram {
		c.checkpoint()
		c.shape = Sketch{Start: pos}
		c.mode = ModeDrawing
		return
	}

	if edge := d.Rect().HitEdge(pos, c.opts.ResizeThreshold); edge != geometry.EdgeNone {
		c.checkpoint()
		c.mode = ModeResizing
		c.resizeEdge = edge
		return
	}

	if d.Ellipse().Contains(pos) {
		c.checkpoint()
		c.mode = ModeMoving
		c.moveAnchor = pos
	}
}

// PointerMove continues the active drag. When idle it only reports the
// cursor hint for the position.
func (c *Controller) PointerMove(screen geometry.Vector2) Cursor {
	pos := c.view.ToLogical(screen)

	switch c.mode {
	case ModeResizing:
		if d, ok := c.shape.(Diagram); ok {
			c.setDiagram(d.Resize(c.resizeEdge, pos))
		}
		return cursorForEdge(c.resizeEdge)
	case ModeMoving:
		if d, ok := c.shape.(Diagram); ok {
			delta := pos.Sub(c.moveAnchor)
			c.moveAnchor = pos
			c.setDiagram(d.Translate(delta))
		}
		return CursorMove
	case ModeDrawing:
		var start geometry.Vector2
		switch s := c.shape.(type) {
		case Sketch:
			start = s.Start
		case Diagram:
			start = s.Start
		default:
			return CursorDefault
		}
		if pos == start {
			c.shape = Sketch{Start: start}
		} else {
			c.setDiagram(Diagram{Start: start, End: pos})
		}
		return CursorDefault
	}
	return c.hover(pos)
}

// PointerUp ends any drag
func (c *Controller) PointerUp() {
	c.endDrag()
}

// CursorAt returns the cursor hint for a screen position
func (c *Controller) CursorAt(screen geometry.Vector2) Cursor {
	switch c.mode {
	case ModeResizing:
		return cursorForEdge(c.resizeEdge)
	case ModeMoving:
		return CursorMove
	case ModeDrawing:
		return CursorDefault
	}
	return c.hover(c.view.ToLogical(screen))
}

// Scroll zooms around the pointer. Without a diagram there is nothing to
// zoom into and the view stays put.
func (c *Controller) Scroll(screen geometry.Vector2, direction int) {
	if !c.HasDiagram() {
		return
	}
	c.view.ZoomAt(screen, direction)
}

// KeyDown handles rotation and nudge keys. Keys only act while the diagram
// exists and is locked. Returns whether the key was used.
func (c *Controller) KeyDown(key Key) bool {
	d, ok := c.shape.(Diagram)
	if !ok || !c.locked {
		return false
	}

	step := c.opts.NudgeStep
	switch key {
	case KeyRotateCCW:
		c.rotation -= c.opts.RotationStep
	case KeyRotateCW:
		c.rotation += c.opts.RotationStep
	case KeyUp:
		c.setDiagram(d.Translate(geometry.NewVector2(0, -step)))
	case KeyDown:
		c.setDiagram(d.Translate(geometry.NewVector2(0, step)))
	case KeyLeft:
		c.setDiagram(d.Translate(geometry.NewVector2(-step, 0)))
	case KeyRight:
		c.setDiagram(d.Translate(geometry.NewVector2(step, 0)))
	default:
		return false
	}
	return true
}

// DeleteDiagram removes the diagram and its measurements and unlocks
func (c *Controller) DeleteDiagram() {
	c.checkpoint()
	c.shape = NoDiagram{}
	c.readings.Clear()
	c.locked = false
	c.endDrag()
}

// DeleteMeasurements removes all readings but keeps the diagram
func (c *Controller) DeleteMeasurements() {
	c.checkpoint()
	c.readings.Clear()
}

// SetBackground records the background image path
func (c *Controller) SetBackground(path string) {
	c.background = path
}

// DeleteBackgroundImage drops the background and its rotation
func (c *Controller) DeleteBackgroundImage() {
	c.background = ""
	c.rotation = 0
}

// InterpolateMeasurements fills all unmeasured slots. Returns false if there
// is no diagram or nothing to interpolate from.
func (c *Controller) InterpolateMeasurements() bool {
	d, ok := c.shape.(Diagram)
	if !ok || c.readings.Count() == 0 {
		return false
	}
	c.checkpoint()
	c.readings.Interpolate(d.Frame())
	return true
}

// SetMeasurementsFromImport replaces the readings with the given angle -> dB
// pairs, placing them on the current diagram. Returns false if no diagram
// exists to place them on.
func (c *Controller) SetMeasurementsFromImport(pairs map[int]float64) bool {
	d, ok := c.shape.(Diagram)
	if !ok || pairs == nil {
		return false
	}
	c.checkpoint()
	frame := d.Frame()
	return c.readings.ImportFromAngleDbPairs(pairs, &frame)
}

// Undo restores the state before the last action
func (c *Controller) Undo() bool {
	prev, ok := c.history.Undo(c.snapshot())
	if !ok {
		return false
	}
	c.restoring = true
	c.restore(prev)
	c.restoring = false
	return true
}

// Redo reapplies the last undone action
func (c *Controller) Redo() bool {
	next, ok := c.history.Redo(c.snapshot())
	if !ok {
		return false
	}
	c.restoring = true
	c.restore(next)
	c.restoring = false
	return true
}

// measure records the reading for a click at pos
func (c *Controller) measure(d Diagram, pos geometry.Vector2) {
	if d.Degenerate() {
		return
	}
	f := d.Frame()
	r := polar.PointToAngleDb(pos, f.Center, f.HalfW, f.HalfH)

	c.checkpoint()
	c.readings.Set(r.Angle, r.Db, r.Point)
}

// setDiagram replaces the geometry and re-derives every reading position
func (c *Controller) setDiagram(d Diagram) {
	c.shape = d
	c.readings.RecomputeAllPositions(d.Frame())
}

// endDrag returns to idle. A drawing that never gained an area is dropped.
func (c *Controller) endDrag() {
	switch s := c.shape.(type) {
	case Sketch:
		c.shape = NoDiagram{}
	case Diagram:
		if c.mode == ModeDrawing && s.Degenerate() {
			c.shape = NoDiagram{}
		}
	}
	c.mode = ModeIdle
	c.resizeEdge = geometry.EdgeNone
}

func (c *Controller) hover(pos geometry.Vector2) Cursor {
	if c.locked {
		return CursorDefault
	}
	d, ok := c.shape.(Diagram)
	if !ok {
		return CursorDefault
	}
	if edge := d.Rect().HitEdge(pos, c.opts.ResizeThreshold); edge != geometry.EdgeNone {
		return cursorForEdge(edge)
	}
	if d.Ellipse().Contains(pos) {
		return CursorMove
	}
	return CursorDefault
}

func cursorForEdge(e geometry.Edge) Cursor {
	switch {
	case e.Horizontal():
		return CursorResizeHorizontal
	case e.Vertical():
		return CursorResizeVertical
	default:
		return CursorDefault
	}
}
