package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/antennareader/pkg/store"
	"github.com/philipparndt/antennareader/pkg/watcher"
)

// BackgroundState holds the scanned diagram image
type BackgroundState struct {
	texture     rl.Texture2D
	loaded      bool
	fileWatcher *watcher.FileWatcher // Reloads the image when it changes on disk
	needsReload atomic.Bool
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	cursor       int32
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showHelp     bool
	showContours bool
	showLabels   bool
}

// ImportState holds a stored record waiting to be placed on the diagram
type ImportState struct {
	record  *store.Record
	applied bool
}

// SaveField is the field of the save form being edited
type SaveField int

const (
	FieldName SaveField = iota
	FieldOwner
	FieldState
	FieldCity
	fieldCount
)

var saveFieldLabels = [fieldCount]string{"Antenna name", "Owner", "State", "City"}

// SaveState holds the save form
type SaveState struct {
	active bool
	field  SaveField
	values [fieldCount]string
}

// UIState holds UI-related state
type UIState struct {
	font          rl.Font
	status        string
	statusIsError bool
	statusTime    time.Time
}
