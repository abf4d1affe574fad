package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/antennareader/pkg/polar"
	"github.com/philipparndt/antennareader/version"
)

const statusDuration = 4 * time.Second

// drawUI draws the status panel, help and footer
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)
	ctrl := app.Diagram

	text := func(s string, size float32, color rl.Color) {
		rl.DrawTextEx(app.UI.font, s, rl.Vector2{X: 10, Y: y}, size, 1, color)
		y += lineHeight
	}

	// === DIAGRAM ===
	text("Diagram:", fontSize16, rl.Yellow)
	switch {
	case !ctrl.HasDiagram():
		text("  Drag to draw the diagram ellipse", fontSize14, rl.White)
	case ctrl.IsLocked():
		text("  Locked: click to measure", fontSize14, rl.SkyBlue)
	default:
		text("  Unlocked: drag edges or inside", fontSize14, rl.White)
	}
	text(fmt.Sprintf("  Measured: %d/%d", ctrl.MeasurementCount(), polar.SlotCount), fontSize14, measuredColor(ctrl.MeasurementCount()))
	if rot := ctrl.BackgroundRotation(); rot != 0 {
		text(fmt.Sprintf("  Rotation: %.0f°", rot), fontSize14, rl.White)
	}
	text(fmt.Sprintf("  Zoom: %.0f%%", ctrl.View().Zoom*100), fontSize14, rl.White)
	y += lineHeight

	if app.View.showHelp {
		text("Edit:", fontSize16, rl.Yellow)
		text("  L: Lock/unlock | I: Interpolate", fontSize14, rl.LightGray)
		text("  D: Delete points | X: Delete diagram", fontSize14, rl.LightGray)
		text(fmt.Sprintf("  Ctrl+Z: Undo%s | Ctrl+Y: Redo%s", avail(ctrl.CanUndo()), avail(ctrl.CanRedo())), fontSize14, rl.LightGray)
		text("  Ctrl+S: Save | G: Place imported record", fontSize14, rl.LightGray)
		y += lineHeight

		text("Image:", fontSize16, rl.Yellow)
		text("  Drop an image to open it | B: Remove", fontSize14, rl.LightGray)
		text("  Q/E: Rotate | Arrows: Move diagram (locked)", fontSize14, rl.LightGray)
		text("  Mouse Wheel: Zoom | C: Contours | T: Labels", fontSize14, rl.LightGray)
		text("  H: Hide help", fontSize14, rl.LightGray)
	}

	app.drawStatus()

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

// drawStatus shows the last status message in the bottom-right corner
func (app *App) drawStatus() {
	if app.UI.status == "" || time.Since(app.UI.statusTime) > statusDuration {
		return
	}
	fontSize := float32(16)
	color := rl.Yellow
	if app.UI.statusIsError {
		color = rl.NewColor(255, 100, 100, 255)
	}

	boxPadding := float32(10)
	textSize := rl.MeasureTextEx(app.UI.font, app.UI.status, fontSize, 1)
	boxWidth := textSize.X + boxPadding*2
	boxHeight := textSize.Y + boxPadding*2
	boxX := float32(rl.GetScreenWidth()) - boxWidth - 20
	boxY := float32(rl.GetScreenHeight()) - boxHeight - 20

	rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 200))
	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), color)
	rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: boxX + boxPadding, Y: boxY + boxPadding}, fontSize, 1, color)
}

// drawSaveForm draws the modal save form
func (app *App) drawSaveForm() {
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, int32(screenWidth), int32(screenHeight), rl.NewColor(0, 0, 0, 150))

	boxWidth := float32(460)
	boxHeight := float32(60 + 40*int(fieldCount))
	boxX := (screenWidth - boxWidth) / 2
	boxY := (screenHeight - boxHeight) / 2
	rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(25, 30, 40, 255))
	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.Yellow)

	rl.DrawTextEx(app.UI.font, "Save diagram (Tab: next field, Enter: save, Esc: cancel)",
		rl.Vector2{X: boxX + 10, Y: boxY + 10}, 14, 1, rl.Yellow)

	cursorOn := (time.Now().UnixMilli()/500)%2 == 0
	for i := SaveField(0); i < fieldCount; i++ {
		fy := boxY + 40 + float32(i)*40
		color := rl.LightGray
		value := app.Save.values[i]
		if i == app.Save.field {
			color = rl.White
			if cursorOn {
				value += "_"
			}
		}
		rl.DrawTextEx(app.UI.font, saveFieldLabels[i]+":", rl.Vector2{X: boxX + 10, Y: fy}, 14, 1, color)
		rl.DrawTextEx(app.UI.font, value, rl.Vector2{X: boxX + 130, Y: fy}, 16, 1, color)
	}
}

func measuredColor(n int) rl.Color {
	if n == polar.SlotCount {
		return rl.Green
	}
	return rl.White
}

func avail(ok bool) string {
	if ok {
		return ""
	}
	return " (-)"
}
