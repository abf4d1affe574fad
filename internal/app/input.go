package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/antennareader/internal/diagram"
	"github.com/philipparndt/antennareader/pkg/geometry"
)

// Keys repeat while held so rotating and nudging can be continuous
var diagramKeys = []struct {
	raylib int32
	key    diagram.Key
}{
	{rl.KeyQ, diagram.KeyRotateCCW},
	{rl.KeyE, diagram.KeyRotateCW},
	{rl.KeyUp, diagram.KeyUp},
	{rl.KeyDown, diagram.KeyDown},
	{rl.KeyLeft, diagram.KeyLeft},
	{rl.KeyRight, diagram.KeyRight},
}

func toVector(v rl.Vector2) geometry.Vector2 {
	return geometry.NewVector2(float64(v.X), float64(v.Y))
}

// handleInput turns this frame's raylib input into controller events
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	pos := toVector(mouse)
	ctrl := app.Diagram

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		ctrl.Handle(diagram.Event{Kind: diagram.PointerDown, Position: pos})
	}

	if mouse != app.Interaction.lastMousePos {
		app.setCursor(ctrl.Handle(diagram.Event{Kind: diagram.PointerMove, Position: pos}))
	}
	app.Interaction.lastMousePos = mouse

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.setCursor(ctrl.Handle(diagram.Event{Kind: diagram.PointerUp, Position: pos}))
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		direction := 1
		if wheel < 0 {
			direction = -1
		}
		ctrl.Handle(diagram.Event{Kind: diagram.Scroll, Position: pos, Direction: direction})
	}

	for _, k := range diagramKeys {
		if rl.IsKeyPressed(k.raylib) || rl.IsKeyPressedRepeat(k.raylib) {
			ctrl.Handle(diagram.Event{Kind: diagram.KeyPress, Position: pos, Key: k.key})
		}
	}

	app.handleShortcuts()
}

// handleShortcuts handles the command keys
func (app *App) handleShortcuts() {
	ctrl := app.Diagram
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if ctrlPressed {
		switch {
		case rl.IsKeyPressed(rl.KeyZ) && shiftPressed, rl.IsKeyPressed(rl.KeyY):
			if ctrl.Redo() {
				app.setStatus("Redo")
			}
		case rl.IsKeyPressed(rl.KeyZ):
			if ctrl.Undo() {
				app.setStatus("Undo")
			}
		case rl.IsKeyPressed(rl.KeyS):
			app.beginSave()
		}
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyL):
		if !ctrl.HasDiagram() {
			app.setError("Draw a diagram before locking it")
			return
		}
		if ctrl.ToggleLocked() {
			app.setStatus("Locked: click to measure, Q/E rotate, arrows move")
		} else {
			app.setStatus("Unlocked: drag to move or resize the diagram")
		}
	case rl.IsKeyPressed(rl.KeyI):
		if ctrl.InterpolateMeasurements() {
			app.setStatus("Interpolated missing angles")
		} else {
			app.setError("Nothing to interpolate")
		}
	case rl.IsKeyPressed(rl.KeyD):
		ctrl.DeleteMeasurements()
		app.setStatus("Measurements deleted")
	case rl.IsKeyPressed(rl.KeyX):
		ctrl.DeleteDiagram()
		app.setStatus("Diagram deleted")
	case rl.IsKeyPressed(rl.KeyB):
		app.removeBackground()
	case rl.IsKeyPressed(rl.KeyG):
		app.applyImport()
	case rl.IsKeyPressed(rl.KeyC):
		app.View.showContours = !app.View.showContours
	case rl.IsKeyPressed(rl.KeyT):
		app.View.showLabels = !app.View.showLabels
	case rl.IsKeyPressed(rl.KeyH), rl.IsKeyPressed(rl.KeyF1):
		app.View.showHelp = !app.View.showHelp
	}
}

// handleSaveInput edits the save form
func (app *App) handleSaveInput() {
	s := &app.Save

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if ch >= 32 {
			s.values[s.field] += string(rune(ch))
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace):
		if v := []rune(s.values[s.field]); len(v) > 0 {
			s.values[s.field] = string(v[:len(v)-1])
		}
	case rl.IsKeyPressed(rl.KeyTab):
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			s.field = (s.field + fieldCount - 1) % fieldCount
		} else {
			s.field = (s.field + 1) % fieldCount
		}
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		app.commitSave()
	case rl.IsKeyPressed(rl.KeyEscape):
		s.active = false
		app.setStatus("Save cancelled")
	}
}

// setCursor maps the controller hint to a raylib cursor
func (app *App) setCursor(c diagram.Cursor) {
	var cursor int32
	switch c {
	case diagram.CursorResizeHorizontal:
		cursor = rl.MouseCursorResizeEW
	case diagram.CursorResizeVertical:
		cursor = rl.MouseCursorResizeNS
	case diagram.CursorMove:
		cursor = rl.MouseCursorResizeAll
	default:
		cursor = rl.MouseCursorDefault
	}
	if cursor != app.Interaction.cursor {
		rl.SetMouseCursor(cursor)
		app.Interaction.cursor = cursor
	}
}
