package viewer

import (
	"image/color"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/antennareader/pkg/geometry"
	"github.com/philipparndt/antennareader/pkg/pattern"
	"github.com/philipparndt/antennareader/pkg/polar"
)

const (
	previewMargin   = 24
	contourSegments = 72
)

var (
	previewContour = color.RGBA{150, 150, 150, 255}
	previewSpoke   = color.RGBA{200, 200, 200, 255}
	previewOutline = color.RGBA{40, 40, 40, 255}
	previewPattern = color.RGBA{220, 30, 30, 255}
	previewLabel   = color.RGBA{90, 90, 90, 255}
)

// Segment is a straight line in screen coordinates
type Segment struct {
	From, To geometry.Vector2
}

// PatternGeometry is everything needed to draw one pattern preview
type PatternGeometry struct {
	Contours []Segment
	Spokes   []Segment
	Outline  []Segment
	Pattern  []Segment
	Points   []geometry.Vector2
	Labels   map[int]geometry.Vector2 // Angle label positions
}

// BuildPatternGeometry lays out a circular diagram filling width x height
// and places values on it. Shapes are passed through t, so the preview can
// be zoomed and panned.
func BuildPatternGeometry(values map[int]float64, width, height float64, t Transform) PatternGeometry {
	radius := math.Max(0, math.Min(width, height)/2-previewMargin)
	center := geometry.NewVector2(width/2, height/2)
	g := PatternGeometry{Labels: make(map[int]geometry.Vector2)}
	if radius == 0 {
		return g
	}

	seg := func(a, b geometry.Vector2) Segment {
		return Segment{From: t.ToScreen(a), To: t.ToScreen(b)}
	}
	ring := func(r float64) []Segment {
		out := make([]Segment, 0, contourSegments)
		prev := geometry.NewVector2(center.X+r, center.Y)
		for i := 1; i <= contourSegments; i++ {
			a := 2 * math.Pi * float64(i) / contourSegments
			next := geometry.NewVector2(center.X+r*math.Cos(a), center.Y+r*math.Sin(a))
			out = append(out, seg(prev, next))
			prev = next
		}
		return out
	}

	for _, level := range polar.ContourLevels {
		rx, _ := polar.ContourRadii(float64(level), radius, radius)
		g.Contours = append(g.Contours, ring(rx)...)
	}
	g.Outline = ring(radius)

	for _, angle := range polar.Slots() {
		g.Spokes = append(g.Spokes, seg(center, polar.SpokeEnd(angle, center, radius, radius, 1)))
		if angle%30 == 0 {
			g.Labels[angle] = t.ToScreen(polar.SpokeEnd(angle, center, radius, radius, 1.08))
		}
	}

	store := pattern.NewStore()
	frame := pattern.Frame{Center: center, HalfW: radius, HalfH: radius}
	store.ImportFromAngleDbPairs(values, &frame)
	points := store.Polyline()
	for i, p := range points {
		if i > 0 {
			g.Pattern = append(g.Pattern, seg(points[i-1], p))
		}
	}
	for _, e := range store.All() {
		g.Points = append(g.Points, t.ToScreen(e.Point))
	}
	return g
}

// PatternView is a read-only preview of a saved pattern. Scroll zooms
// around the pointer and dragging pans.
type PatternView struct {
	widget.BaseWidget

	values  map[int]float64
	view    Transform
	width   float64
	height  float64
	objects []fyne.CanvasObject
}

// NewPatternView creates an empty preview
func NewPatternView() *PatternView {
	v := &PatternView{view: NewTransform()}
	v.ExtendBaseWidget(v)
	return v
}

// SetPattern shows values (angle -> dB). A nil map clears the preview.
func (v *PatternView) SetPattern(values map[int]float64) {
	v.values = values
	v.view.Reset()
	v.Render(v.width, v.height)
}

// CreateRenderer creates the renderer for the widget
func (v *PatternView) CreateRenderer() fyne.WidgetRenderer {
	return &patternWidgetRenderer{view: v}
}

// Render rebuilds the canvas objects for the given size
func (v *PatternView) Render(width, height float64) {
	v.width = width
	v.height = height
	v.objects = make([]fyne.CanvasObject, 0, len(v.objects))

	bg := canvas.NewRectangle(color.White)
	bg.Resize(fyne.NewSize(float32(width), float32(height)))
	v.objects = append(v.objects, bg)

	if v.values == nil {
		v.Refresh()
		return
	}

	g := BuildPatternGeometry(v.values, width, height, v.view)
	v.addLines(g.Contours, previewContour, 0.5)
	v.addLines(g.Spokes, previewSpoke, 0.5)
	v.addLines(g.Outline, previewOutline, 1.5)
	v.addLines(g.Pattern, previewPattern, 2)

	for _, p := range g.Points {
		dot := canvas.NewCircle(previewPattern)
		size := float32(5)
		dot.Resize(fyne.NewSize(size, size))
		dot.Move(fyne.NewPos(float32(p.X)-size/2, float32(p.Y)-size/2))
		v.objects = append(v.objects, dot)
	}
	for angle, p := range g.Labels {
		label := canvas.NewText(strconv.Itoa(angle), previewLabel)
		label.TextSize = 10
		label.Alignment = fyne.TextAlignCenter
		ms := label.MinSize()
		label.Move(fyne.NewPos(float32(p.X)-ms.Width/2, float32(p.Y)-ms.Height/2))
		v.objects = append(v.objects, label)
	}

	v.Refresh()
}

func (v *PatternView) addLines(segs []Segment, c color.Color, width float32) {
	for _, s := range segs {
		line := canvas.NewLine(c)
		line.StrokeWidth = width
		line.Position1 = fyne.NewPos(float32(s.From.X), float32(s.From.Y))
		line.Position2 = fyne.NewPos(float32(s.To.X), float32(s.To.Y))
		v.objects = append(v.objects, line)
	}
}

// Scrolled zooms around the pointer
func (v *PatternView) Scrolled(event *fyne.ScrollEvent) {
	direction := 0
	switch {
	case event.Scrolled.DY > 0:
		direction = 1
	case event.Scrolled.DY < 0:
		direction = -1
	}
	v.view.ZoomAt(geometry.NewVector2(float64(event.Position.X), float64(event.Position.Y)), direction)
	v.Render(v.width, v.height)
}

// Dragged pans the preview
func (v *PatternView) Dragged(event *fyne.DragEvent) {
	v.view.Origin = v.view.Origin.Add(geometry.NewVector2(float64(event.Dragged.DX), float64(event.Dragged.DY)))
	v.Render(v.width, v.height)
}

// DragEnd handles the end of a drag event
func (v *PatternView) DragEnd() {}

// DoubleTapped resets zoom and pan
func (v *PatternView) DoubleTapped(*fyne.PointEvent) {
	v.view.Reset()
	v.Render(v.width, v.height)
}

// patternWidgetRenderer implements fyne.WidgetRenderer
type patternWidgetRenderer struct {
	view *PatternView
}

func (p *patternWidgetRenderer) Layout(size fyne.Size) {
	p.view.Render(float64(size.Width), float64(size.Height))
}

func (p *patternWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (p *patternWidgetRenderer) Refresh() {
	canvas.Refresh(p.view)
}

func (p *patternWidgetRenderer) Objects() []fyne.CanvasObject {
	return p.view.objects
}

func (p *patternWidgetRenderer) Destroy() {}
