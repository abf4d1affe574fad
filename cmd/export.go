package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/philipparndt/antennareader/internal/config"
	"github.com/philipparndt/antennareader/pkg/export"
	"github.com/philipparndt/antennareader/pkg/store"
	"github.com/philipparndt/antennareader/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	exportAll   bool
	exportOut   string
	exportWatch bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved diagrams",
	Long:  "Export saved diagrams as one CSV table or as one PAT file per diagram.",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv [id...]",
	Short: "Export diagrams as a CSV table with one row per diagram",
	Long: `Export diagrams as a CSV table: the antenna name followed by one column per
10° angle. --out is the CSV file; without it the table is written to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, args, writeCSV)
	},
}

var exportPATCmd = &cobra.Command{
	Use:   "pat [id...]",
	Short: "Export each diagram as a PAT file",
	Long:  "Export each diagram as <name>.PAT into the --out directory (default: export_dir).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, args, writePAT)
	},
}

func init() {
	for _, c := range []*cobra.Command{exportCSVCmd, exportPATCmd} {
		c.Flags().BoolVarP(&exportAll, "all", "a", false, "export every saved diagram")
		c.Flags().StringVarP(&exportOut, "out", "o", "", "output file (csv) or directory (pat)")
		c.Flags().BoolVarP(&exportWatch, "watch", "w", false, "export again whenever the store changes")
	}
	exportCmd.AddCommand(exportCSVCmd, exportPATCmd)
	rootCmd.AddCommand(exportCmd)
}

type exportFunc func(cmd *cobra.Command, cfg config.Config, records []store.Record) error

func runExport(cmd *cobra.Command, args []string, write exportFunc) error {
	if exportAll == (len(args) > 0) {
		return fmt.Errorf("give diagram ids or --all")
	}
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	cfg, s, err := environment()
	if err != nil {
		return err
	}

	run := func() error {
		records, err := selectRecords(s, ids)
		if err != nil {
			return err
		}
		return write(cmd, cfg, records)
	}
	if err := run(); err != nil {
		return err
	}
	if !exportWatch {
		return nil
	}

	return watchStore(cmd, cfg, s, run)
}

func selectRecords(s *store.Store, ids []int) ([]store.Record, error) {
	if len(ids) == 0 {
		return s.List(), nil
	}
	records := make([]store.Record, 0, len(ids))
	for _, id := range ids {
		r, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func writeCSV(cmd *cobra.Command, _ config.Config, records []store.Record) error {
	if exportOut == "" {
		return export.WriteCSV(cmd.OutOrStdout(), records)
	}
	if err := export.CSVFile(exportOut, records); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d diagram(s) to %s\n", len(records), exportOut)
	return nil
}

func writePAT(cmd *cobra.Command, cfg config.Config, records []store.Record) error {
	dir := exportOut
	if dir == "" {
		dir = cfg.ExportDir
	}
	paths, err := export.PATFiles(dir, records)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s\n", filepath.Clean(p))
	}
	return nil
}

// watchStore reruns export whenever the store file changes until
// interrupted
func watchStore(cmd *cobra.Command, cfg config.Config, s *store.Store, rerun func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	fw, err := watcher.NewFileWatcher(cfg.WatchDebounce.Duration)
	if err != nil {
		return err
	}
	defer fw.Close()

	errOut := cmd.ErrOrStderr()
	callback := serialized(func(path string) {
		if err := s.Reload(); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(errOut, "\nStore changed: %s\n", path)
		if err := rerun(); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	})
	if err := fw.Watch([]string{s.Path()}, callback); err != nil {
		return err
	}
	fw.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintf(errOut, "Watching %s for changes (Ctrl+C to stop)\n", s.Path())
	<-ctx.Done()
	return nil
}

// serialized wraps a watcher callback so runs never overlap. The watcher
// fires each debounced change from its own timer goroutine.
func serialized(fn func(path string)) func(path string) {
	var mu sync.Mutex
	return func(path string) {
		mu.Lock()
		defer mu.Unlock()
		fn(path)
	}
}
