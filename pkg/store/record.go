// Package store persists measured antenna diagrams in a JSON file.
package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/philipparndt/antennareader/pkg/pattern"
	"github.com/philipparndt/antennareader/pkg/polar"
)

// MeasurementRecord is one saved reading
type MeasurementRecord struct {
	Angle   int     `json:"angle"`
	DbValue float64 `json:"dbValue"`
	PosX    float64 `json:"posX"`
	PosY    float64 `json:"posY"`
}

// Record is one saved diagram
type Record struct {
	ID           int                 `json:"id"`
	AntennaName  string              `json:"antennaName"`
	AntennaOwner string              `json:"antennaOwner,omitempty"`
	State        string              `json:"state,omitempty"`
	City         string              `json:"city,omitempty"`
	CreateDate   time.Time           `json:"createDate"`
	Measurements []MeasurementRecord `json:"measurements"`
}

// NewRecord builds a record from controller entries. The ID is assigned when
// the record is added to a store.
func NewRecord(name, owner, state, city string, created time.Time, entries []pattern.Entry) Record {
	r := Record{
		AntennaName:  name,
		AntennaOwner: owner,
		State:        state,
		City:         city,
		CreateDate:   created,
		Measurements: make([]MeasurementRecord, 0, len(entries)),
	}
	for _, e := range entries {
		r.Measurements = append(r.Measurements, MeasurementRecord{
			Angle:   e.Angle,
			DbValue: e.Db,
			PosX:    e.Point.X,
			PosY:    e.Point.Y,
		})
	}
	return r
}

// AngleDb returns the angle -> dB pairs of the record. Positions are not
// returned; they are derived again from the diagram the values are placed on.
func (r Record) AngleDb() map[int]float64 {
	out := make(map[int]float64, len(r.Measurements))
	for _, m := range r.Measurements {
		out[m.Angle] = m.DbValue
	}
	return out
}

// Sorted returns the measurements in ascending angle order
func (r Record) Sorted() []MeasurementRecord {
	out := append([]MeasurementRecord(nil), r.Measurements...)
	sort.Slice(out, func(i, j int) bool { return out[i].Angle < out[j].Angle })
	return out
}

// Validate checks that the record is a fully measured diagram with one
// reading per slot
func (r Record) Validate() error {
	if strings.TrimSpace(r.AntennaName) == "" {
		return fmt.Errorf("antenna name is required")
	}
	seen := make(map[int]bool, len(r.Measurements))
	for _, m := range r.Measurements {
		if !polar.IsSlot(m.Angle) {
			return fmt.Errorf("invalid angle %d", m.Angle)
		}
		if seen[m.Angle] {
			return fmt.Errorf("duplicate angle %d", m.Angle)
		}
		seen[m.Angle] = true
	}
	if len(seen) != polar.SlotCount {
		return fmt.Errorf("%w: %d of %d angles measured", ErrIncomplete, len(seen), polar.SlotCount)
	}
	return nil
}

// Matches reports whether text occurs in any of the descriptive fields,
// ignoring case. Empty text matches every record.
func (r Record) Matches(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return true
	}
	for _, field := range []string{r.AntennaName, r.AntennaOwner, r.State, r.City} {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}
