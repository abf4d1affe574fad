package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/antennareader/internal/diagram"
	"github.com/philipparndt/antennareader/pkg/geometry"
	"github.com/philipparndt/antennareader/pkg/polar"
)

const ellipseSegments = 96

var (
	colorOutline  = rl.NewColor(255, 200, 0, 255)
	colorLocked   = rl.NewColor(80, 200, 255, 255)
	colorContour  = rl.NewColor(255, 255, 255, 70)
	colorSpoke    = rl.NewColor(255, 255, 255, 50)
	colorPattern  = rl.NewColor(255, 60, 60, 255)
	colorPoint    = rl.NewColor(255, 120, 120, 255)
	colorLabel    = rl.NewColor(220, 220, 220, 255)
	colorBoundBox = rl.NewColor(255, 200, 0, 90)
)

func toRaylib(v geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// lineWidth returns a logical width that stays about px pixels on screen
func (app *App) lineWidth(px float64) float32 {
	return float32(px / app.Diagram.View().Zoom)
}

// drawBackground draws the image at the logical origin, rotated around its
// center
func (app *App) drawBackground() {
	if !app.Background.loaded {
		return
	}
	tex := app.Background.texture
	w, h := float32(tex.Width), float32(tex.Height)

	src := rl.Rectangle{Width: w, Height: h}
	dst := rl.Rectangle{X: w / 2, Y: h / 2, Width: w, Height: h}
	origin := rl.Vector2{X: w / 2, Y: h / 2}
	rl.DrawTexturePro(tex, src, dst, origin, float32(app.Diagram.BackgroundRotation()), rl.White)
}

// drawEllipse draws an axis-aligned ellipse outline as a closed polyline
func drawEllipse(center geometry.Vector2, rx, ry float64, thick float32, color rl.Color) {
	prev := geometry.NewVector2(center.X+rx, center.Y)
	for i := 1; i <= ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		next := geometry.NewVector2(center.X+rx*math.Cos(a), center.Y+ry*math.Sin(a))
		rl.DrawLineEx(toRaylib(prev), toRaylib(next), thick, color)
		prev = next
	}
}

// drawDiagram draws the ellipse, its contour rings and angle spokes
func (app *App) drawDiagram() {
	switch d := app.Diagram.CurrentGeometry().(type) {
	case diagram.Sketch:
		rl.DrawCircleV(toRaylib(d.Start), app.lineWidth(3), colorOutline)
	case diagram.Diagram:
		if d.Degenerate() {
			rl.DrawLineEx(toRaylib(d.Start), toRaylib(d.End), app.lineWidth(1), colorOutline)
			return
		}
		f := d.Frame()
		color := colorOutline
		if app.Diagram.IsLocked() {
			color = colorLocked
		} else {
			r := d.Rect()
			rl.DrawRectangleLinesEx(rl.Rectangle{
				X: float32(r.Left), Y: float32(r.Top),
				Width: float32(r.Width()), Height: float32(r.Height()),
			}, app.lineWidth(1), colorBoundBox)
		}

		if app.View.showContours {
			for _, level := range polar.ContourLevels {
				rx, ry := polar.ContourRadii(float64(level), f.HalfW, f.HalfH)
				drawEllipse(f.Center, rx, ry, app.lineWidth(1), colorContour)
			}
			for _, angle := range polar.Slots() {
				end := polar.SpokeEnd(angle, f.Center, f.HalfW, f.HalfH, 1)
				rl.DrawLineEx(toRaylib(f.Center), toRaylib(end), app.lineWidth(1), colorSpoke)
			}
		}
		drawEllipse(f.Center, f.HalfW, f.HalfH, app.lineWidth(2), color)
	}
}

// drawMeasurements draws the pattern outline and the measured points
func (app *App) drawMeasurements() {
	points := app.Diagram.Polyline()
	for i := 1; i < len(points); i++ {
		rl.DrawLineEx(toRaylib(points[i-1]), toRaylib(points[i]), app.lineWidth(2), colorPattern)
	}
	for _, e := range app.Diagram.AllMeasurements() {
		rl.DrawCircleV(toRaylib(e.Point), app.lineWidth(4), colorPoint)
	}
}

// drawLabels draws angle and dB labels in screen space so they keep their
// size when zooming
func (app *App) drawLabels() {
	d, ok := app.Diagram.CurrentGeometry().(diagram.Diagram)
	if !ok || d.Degenerate() || !app.View.showLabels {
		return
	}
	view := app.Diagram.View()
	f := d.Frame()
	fontSize := float32(14)

	for _, angle := range polar.Slots() {
		if angle%30 != 0 {
			continue
		}
		p := view.ToScreen(polar.SpokeEnd(angle, f.Center, f.HalfW, f.HalfH, 1.1))
		text := fmt.Sprintf("%d", angle)
		size := rl.MeasureTextEx(app.UI.font, text, fontSize, 1)
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: float32(p.X) - size.X/2, Y: float32(p.Y) - size.Y/2}, fontSize, 1, colorLabel)
	}

	if !app.View.showContours {
		return
	}
	for _, level := range polar.ContourLevels {
		_, ry := polar.ContourRadii(float64(level), f.HalfW, f.HalfH)
		p := view.ToScreen(geometry.NewVector2(f.Center.X, f.Center.Y-ry))
		rl.DrawTextEx(app.UI.font, fmt.Sprintf("%d", level), rl.Vector2{X: float32(p.X) + 3, Y: float32(p.Y)}, 10, 1, colorContour)
	}
}
