package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/antennareader/internal/config"
	"github.com/philipparndt/antennareader/pkg/export"
	"github.com/philipparndt/antennareader/pkg/polar"
	"github.com/philipparndt/antennareader/pkg/store"
	"github.com/philipparndt/antennareader/pkg/viewer"
	"github.com/philipparndt/antennareader/pkg/watcher"
	"github.com/philipparndt/antennareader/version"
	"github.com/spf13/pflag"
)

type Browser struct {
	window  fyne.Window
	cfg     config.Config
	store   *store.Store
	records []store.Record
	current *store.Record

	search  *widget.Entry
	list    *widget.List
	preview *viewer.PatternView
	details *widget.Label
	status  *widget.Label
}

func main() {
	log.SetPrefix("antennareader: ")
	log.SetFlags(0)

	configPath := pflag.String("config", "", "config file (default: user config dir)")
	storePath := pflag.String("store", "", "diagram store file (overrides store_path)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
	}
	s, err := store.Open(cfg.StorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("Antenna Reader - Diagrams")

	b := &Browser{window: w, cfg: cfg, store: s}
	b.setupMainUI()
	b.refresh()

	if fw, err := b.setupFileWatcher(); err != nil {
		log.Printf("auto-reload not available: %v", err)
	} else {
		defer fw.Close()
	}

	w.Resize(fyne.NewSize(1100, 720))
	w.ShowAndRun()
}

func (b *Browser) setupMainUI() {
	b.search = widget.NewEntry()
	b.search.SetPlaceHolder("Search name, owner, state or city")
	b.search.OnChanged = func(string) { b.refresh() }

	b.list = widget.NewList(
		func() int { return len(b.records) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			r := b.records[id]
			o.(*widget.Label).SetText(fmt.Sprintf("#%d  %s", r.ID, r.AntennaName))
		},
	)
	b.list.OnSelected = func(id widget.ListItemID) {
		if id < len(b.records) {
			r := b.records[id]
			b.show(&r)
		}
	}
	b.list.OnUnselected = func(widget.ListItemID) { b.show(nil) }

	b.preview = viewer.NewPatternView()
	b.details = widget.NewLabel("")
	b.details.Wrapping = fyne.TextWrapWord
	b.status = widget.NewLabel(fmt.Sprintf("v%s", version.GetVersion()))

	exportSelectedCSV := widget.NewButton("CSV (selected)", func() { b.exportCSV(b.selected()) })
	exportAllCSV := widget.NewButton("CSV (all shown)", func() { b.exportCSV(b.records) })
	exportSelectedPAT := widget.NewButton("PAT (selected)", func() { b.exportPAT(b.selected()) })
	exportAllPAT := widget.NewButton("PAT (all shown)", func() { b.exportPAT(b.records) })
	deleteButton := widget.NewButton("Delete", b.confirmDelete)
	deleteButton.Importance = widget.DangerImportance

	left := container.NewBorder(b.search, nil, nil, nil, b.list)

	infoPanel := container.NewVBox(
		widget.NewLabel("Diagram:"),
		widget.NewSeparator(),
		b.details,
		widget.NewSeparator(),
		widget.NewLabel("Export:"),
		container.NewGridWithColumns(2, exportSelectedCSV, exportAllCSV, exportSelectedPAT, exportAllPAT),
		widget.NewSeparator(),
		deleteButton,
	)
	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	split := container.NewHSplit(left, container.NewBorder(nil, nil, nil, infoScroll, b.preview))
	split.Offset = 0.28

	b.window.SetContent(container.NewBorder(nil, b.status, nil, nil, split))
}

// refresh re-runs the search and keeps the current record selected if it
// is still listed
func (b *Browser) refresh() {
	keep := b.current
	b.records = b.store.Search(b.search.Text)
	b.list.UnselectAll()
	b.list.Refresh()

	if keep != nil {
		for i, r := range b.records {
			if r.ID == keep.ID {
				b.list.Select(i)
				return
			}
		}
	}
	b.show(nil)
}

func (b *Browser) show(r *store.Record) {
	b.current = r
	if r == nil {
		b.preview.SetPattern(nil)
		b.details.SetText(fmt.Sprintf("%d diagram(s)", len(b.records)))
		return
	}

	b.preview.SetPattern(r.AngleDb())
	lines := []string{
		r.AntennaName,
		"Owner: " + orDash(r.AntennaOwner),
		"State: " + orDash(r.State),
		"City: " + orDash(r.City),
		"Created: " + r.CreateDate.Format("2006-01-02 15:04"),
		fmt.Sprintf("Measurements: %d/%d", len(r.Measurements), polar.SlotCount),
	}
	b.details.SetText(strings.Join(lines, "\n"))
}

func (b *Browser) selected() []store.Record {
	if b.current == nil {
		return nil
	}
	return []store.Record{*b.current}
}

func (b *Browser) exportCSV(records []store.Record) {
	if len(records) == 0 {
		dialog.ShowError(export.ErrNoRecords, b.window)
		return
	}
	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, b.window)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()

		if err := export.WriteCSV(w, records); err != nil {
			dialog.ShowError(err, b.window)
			return
		}
		b.setStatus(fmt.Sprintf("Exported %d diagram(s) to %s", len(records), w.URI().Path()))
	}, b.window)
	save.SetFileName("antennas.csv")
	save.Show()
}

func (b *Browser) exportPAT(records []store.Record) {
	if len(records) == 0 {
		dialog.ShowError(export.ErrNoRecords, b.window)
		return
	}
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, b.window)
			return
		}
		if dir == nil {
			return
		}
		paths, err := export.PATFiles(dir.Path(), records)
		if err != nil {
			dialog.ShowError(err, b.window)
			return
		}
		b.setStatus(fmt.Sprintf("Exported %d PAT file(s) to %s", len(paths), dir.Path()))
	}, b.window)
}

func (b *Browser) confirmDelete() {
	if b.current == nil {
		return
	}
	r := *b.current
	msg := fmt.Sprintf("Delete diagram #%d %q?", r.ID, r.AntennaName)
	dialog.ShowConfirm("Delete diagram", msg, func(ok bool) {
		if !ok {
			return
		}
		if err := b.store.Delete(r.ID); err != nil {
			dialog.ShowError(err, b.window)
			return
		}
		b.current = nil
		b.refresh()
		b.setStatus(fmt.Sprintf("Deleted %q", r.AntennaName))
	}, b.window)
}

// setupFileWatcher reloads the list when another process writes the store
func (b *Browser) setupFileWatcher() (*watcher.FileWatcher, error) {
	if err := os.MkdirAll(filepath.Dir(b.store.Path()), 0755); err != nil {
		return nil, err
	}
	fw, err := watcher.NewFileWatcher(b.cfg.WatchDebounce.Duration)
	if err != nil {
		return nil, err
	}

	callback := func(path string) {
		if err := b.store.Reload(); err != nil {
			log.Printf("reload failed: %v", err)
			return
		}
		fyne.Do(func() {
			b.refresh()
			b.setStatus("Store reloaded")
		})
	}
	if err := fw.Watch([]string{b.store.Path()}, callback); err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()
	return fw, nil
}

func (b *Browser) setStatus(msg string) {
	log.Print(msg)
	b.status.SetText(msg)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
