// Package export writes saved diagrams to the CSV table and PAT file formats.
package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/antennareader/pkg/polar"
	"github.com/philipparndt/antennareader/pkg/store"
)

// ErrNoRecords is returned when there is nothing to export
var ErrNoRecords = errors.New("no diagrams to export")

const (
	patHeader    = "'', 0, 2"
	patFooter    = "999"
	patExtension = ".PAT"
)

// CSVHeader returns the header row: the name column and one column per slot
func CSVHeader() []string {
	header := make([]string, 0, polar.SlotCount+1)
	header = append(header, "Antenna Name")
	for _, a := range polar.Slots() {
		header = append(header, fmt.Sprintf("Angle %d", a))
	}
	return header
}

// CSVRow returns the row of one record. Every slot gets a column in
// ascending angle order; unmeasured slots are written as 0.0.
func CSVRow(r store.Record) []string {
	values := r.AngleDb()
	row := make([]string, 0, polar.SlotCount+1)
	row = append(row, r.AntennaName)
	for _, a := range polar.Slots() {
		row = append(row, formatDb(values[a]))
	}
	return row
}

// WriteCSV writes all records as one table
func WriteCSV(w io.Writer, records []store.Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(CSVRow(r)); err != nil {
			return fmt.Errorf("failed to write csv row for %q: %w", r.AntennaName, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// WritePAT writes one record in PAT format: one line per slot in ascending
// angle order, unmeasured slots as 0.0
func WritePAT(w io.Writer, r store.Record) error {
	values := r.AngleDb()
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, patHeader)
	for _, a := range polar.Slots() {
		fmt.Fprintf(bw, " %d, %s\n", a, formatDb(values[a]))
	}
	fmt.Fprintln(bw, patFooter)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write pat for %q: %w", r.AntennaName, err)
	}
	return nil
}

// PATFileName returns the file name for a record: spaces become
// underscores and an empty name becomes Unknown
func PATFileName(r store.Record) string {
	name := strings.TrimSpace(r.AntennaName)
	if name == "" {
		name = "Unknown"
	}
	return strings.ReplaceAll(name, " ", "_") + patExtension
}

// CSVFile writes records to a CSV file at path
func CSVFile(path string, records []store.Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PATFiles writes one PAT file per record into dir and returns the paths
// written
func PATFiles(dir string, records []store.Record) ([]string, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(records))
	for _, r := range records {
		path := filepath.Join(dir, PATFileName(r))
		f, err := os.Create(path)
		if err != nil {
			return paths, fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := WritePAT(f, r); err != nil {
			f.Close()
			return paths, err
		}
		if err := f.Close(); err != nil {
			return paths, fmt.Errorf("failed to close %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func formatDb(db float64) string {
	return strconv.FormatFloat(db, 'f', 1, 64)
}
