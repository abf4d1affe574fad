package diagram

import "github.com/philipparndt/antennareader/pkg/geometry"

// Mode is the drag state of the controller
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeMoving
	ModeResizing
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeDrawing:
		return "drawing"
	case ModeMoving:
		return "moving"
	case ModeResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Key is a device-independent key name
type Key int

const (
	KeyNone Key = iota
	KeyRotateCCW
	KeyRotateCW
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Cursor is the pointer shape the frontend should show
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorResizeHorizontal
	CursorResizeVertical
	CursorMove
)

// EventKind identifies an input event
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	Scroll
	KeyPress
)

// Event is one input event in screen coordinates
type Event struct {
	Kind      EventKind
	Position  geometry.Vector2
	Direction int // Scroll: > 0 zooms in, < 0 zooms out
	Key       Key
}

// Handle dispatches ev to the matching handler and returns the cursor hint
// for the pointer position
func (c *Controller) Handle(ev Event) Cursor {
	switch ev.Kind {
	case PointerDown:
		c.PointerDown(ev.Position)
	case PointerMove:
		return c.PointerMove(ev.Position)
	case PointerUp:
		c.PointerUp()
	case Scroll:
		c.Scroll(ev.Position, ev.Direction)
	case KeyPress:
		c.KeyDown(ev.Key)
	}
	return c.CursorAt(ev.Position)
}
