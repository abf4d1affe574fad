package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/antennareader/pkg/store"
	"github.com/philipparndt/antennareader/pkg/watcher"
)

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true, ".gif": true, ".tga": true,
}

// loadBackground loads the image at path as the background texture and
// watches it for changes
func (app *App) loadBackground(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !imageExtensions[ext] {
		return fmt.Errorf("unsupported image type: %s", ext)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return fmt.Errorf("failed to load image %s", path)
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	app.unloadBackground()
	app.Background.texture = tex
	app.Background.loaded = true
	app.Diagram.SetBackground(path)

	if err := app.setupFileWatcher(path); err != nil {
		app.setError(fmt.Sprintf("Auto-reload not available: %v", err))
	}
	return nil
}

// unloadBackground releases the texture and stops watching the file
func (app *App) unloadBackground() {
	if app.Background.fileWatcher != nil {
		app.Background.fileWatcher.Close()
		app.Background.fileWatcher = nil
	}
	if app.Background.loaded {
		rl.UnloadTexture(app.Background.texture)
		app.Background.loaded = false
	}
}

// reloadBackground reloads the current image. Rotation is kept.
func (app *App) reloadBackground() {
	path := app.Diagram.BackgroundPath()
	if path == "" {
		return
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		app.setError(fmt.Sprintf("Failed to reload %s", filepath.Base(path)))
		return
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	if app.Background.loaded {
		rl.UnloadTexture(app.Background.texture)
	}
	app.Background.texture = tex
	app.Background.loaded = true
	app.setStatus(fmt.Sprintf("Reloaded %s", filepath.Base(path)))
}

// removeBackground drops the image and its rotation
func (app *App) removeBackground() {
	app.unloadBackground()
	app.Diagram.DeleteBackgroundImage()
	app.setStatus("Background image removed")
}

// setupFileWatcher reloads the background when the image file changes
func (app *App) setupFileWatcher(path string) error {
	fw, err := watcher.NewFileWatcher(app.cfg.WatchDebounce.Duration)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(string) {
		app.Background.needsReload.Store(true)
	}
	if err := fw.Watch([]string{path}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch image: %w", err)
	}

	fw.Start()
	app.Background.fileWatcher = fw
	return nil
}

// handleDroppedFiles opens the first dropped image as background
func (app *App) handleDroppedFiles() {
	files := rl.LoadDroppedFiles()
	defer rl.UnloadDroppedFiles()

	for _, f := range files {
		if imageExtensions[strings.ToLower(filepath.Ext(f))] {
			if err := app.loadBackground(f); err != nil {
				app.setError(err.Error())
				return
			}
			app.setStatus(fmt.Sprintf("Opened %s", filepath.Base(f)))
			return
		}
	}
	app.setError("Drop a PNG, JPEG, BMP, GIF or TGA image")
}

// applyImport places the pending record on the current diagram
func (app *App) applyImport() {
	if app.Import.record == nil {
		app.setError("No record to import; start with --import <id>")
		return
	}
	if !app.Diagram.SetMeasurementsFromImport(app.Import.record.AngleDb()) {
		app.setError("Draw a diagram before importing measurements")
		return
	}
	app.Import.applied = true
	app.setStatus(fmt.Sprintf("Imported %d measurement(s) from %q",
		len(app.Import.record.Measurements), app.Import.record.AntennaName))
}

// beginSave opens the save form if the diagram is fully measured
func (app *App) beginSave() {
	if missing := app.Diagram.Missing(); missing > 0 {
		app.setError(fmt.Sprintf("Measure all angles before saving (%d missing, press I to interpolate)", missing))
		return
	}
	app.Save = SaveState{active: true}
	if app.Import.record != nil && app.Import.applied {
		r := app.Import.record
		app.Save.values = [fieldCount]string{r.AntennaName, r.AntennaOwner, r.State, r.City}
	}
}

// commitSave stores the diagram with the values of the save form
func (app *App) commitSave() {
	v := app.Save.values
	r := store.NewRecord(v[FieldName], v[FieldOwner], v[FieldState], v[FieldCity], time.Now(), app.Diagram.AllMeasurements())

	saved, err := app.store.Add(r)
	if err != nil {
		app.setError(fmt.Sprintf("Failed to save: %v", err))
		return
	}
	app.Save.active = false
	app.setStatus(fmt.Sprintf("Saved %q as #%d", saved.AntennaName, saved.ID))
}
