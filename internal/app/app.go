// Package app is the interactive raylib canvas: it feeds window input into a
// diagram controller and paints the state the controller exposes.
package app

import (
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/antennareader/internal/config"
	"github.com/philipparndt/antennareader/internal/diagram"
	"github.com/philipparndt/antennareader/pkg/store"
)

// Options configures one canvas session
type Options struct {
	Config    config.Config
	Store     *store.Store
	ImagePath string        // Background image to open, may be empty
	Import    *store.Record // Saved record to place on the first diagram, may be nil
}

type App struct {
	cfg   config.Config
	store *store.Store

	Diagram     *diagram.Controller
	Background  BackgroundState
	Interaction InteractionState
	View        ViewSettings
	Import      ImportState
	Save        SaveState
	UI          UIState
}

// New creates the application state without opening a window
func New(opts Options) *App {
	app := &App{
		cfg:     opts.Config,
		store:   opts.Store,
		Diagram: diagram.NewController(opts.Config.DiagramOptions()),
		View: ViewSettings{
			showHelp:     true,
			showContours: true,
			showLabels:   true,
		},
		Import: ImportState{record: opts.Import},
	}
	if opts.ImagePath != "" {
		app.Diagram.SetBackground(opts.ImagePath)
	}
	return app
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("no store configured")
	}
	app := New(opts)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Config.WindowWidth), int32(opts.Config.WindowHeight), "Antenna Reader")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)

	app.UI.font = rl.GetFontDefault()

	if path := app.Diagram.BackgroundPath(); path != "" {
		if err := app.loadBackground(path); err != nil {
			app.setError(err.Error())
		}
	}
	defer app.unloadBackground()

	if app.Import.record != nil {
		app.setStatus(fmt.Sprintf("Draw the diagram, then press G to place %q", app.Import.record.AntennaName))
	}

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if app.Background.needsReload.CompareAndSwap(true, false) {
			app.reloadBackground()
		}
		if rl.IsFileDropped() {
			app.handleDroppedFiles()
		}

		if app.Save.active {
			app.handleSaveInput()
		} else {
			app.handleInput()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode2D(app.camera())
		app.drawBackground()
		app.drawDiagram()
		app.drawMeasurements()
		rl.EndMode2D()

		app.drawLabels()
		app.drawUI()
		if app.Save.active {
			app.drawSaveForm()
		}

		rl.EndDrawing()
	}

	log.Printf("closing canvas with %d measurement(s)", app.Diagram.MeasurementCount())
	return nil
}

// camera returns the raylib camera matching the controller view: a logical
// point p lands on screen at p*zoom + origin
func (app *App) camera() rl.Camera2D {
	view := app.Diagram.View()
	return rl.Camera2D{
		Offset: rl.Vector2{X: float32(view.Origin.X), Y: float32(view.Origin.Y)},
		Zoom:   float32(view.Zoom),
	}
}

func (app *App) setStatus(msg string) {
	log.Print(msg)
	app.UI.status = msg
	app.UI.statusIsError = false
	app.UI.statusTime = time.Now()
}

func (app *App) setError(msg string) {
	log.Printf("error: %s", msg)
	app.UI.status = msg
	app.UI.statusIsError = true
	app.UI.statusTime = time.Now()
}
