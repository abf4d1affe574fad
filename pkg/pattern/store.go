// Package pattern holds the measured radiation pattern of one diagram: one
// reading per angle slot, with its position derived from the diagram geometry.
package pattern

import (
	"sort"

	"github.com/philipparndt/antennareader/pkg/geometry"
	"github.com/philipparndt/antennareader/pkg/polar"
)

// Reading is the recorded attenuation at one angle slot together with its
// derived position in logical coordinates
type Reading struct {
	Db    float64
	Point geometry.Vector2
}

// Entry is a reading together with its angle
type Entry struct {
	Angle int
	Reading
}

// Frame is the geometry readings are placed in: the center and semi-axes of
// the diagram ellipse
type Frame struct {
	Center       geometry.Vector2
	HalfW, HalfH float64
}

// FrameFromRect returns the frame of the ellipse inscribed in r
func FrameFromRect(r geometry.Rect) Frame {
	return Frame{Center: r.Center(), HalfW: r.Width() / 2, HalfH: r.Height() / 2}
}

// Place returns the point for angle/db in this frame
func (f Frame) Place(angle int, db float64) geometry.Vector2 {
	return polar.AngleDbToPoint(angle, db, f.Center, f.HalfW, f.HalfH)
}

// Store maps angle slots to readings
type Store struct {
	readings map[int]Reading
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{readings: make(map[int]Reading, polar.SlotCount)}
}

// Set stores a reading at angle, replacing any previous one
func (s *Store) Set(angle int, db float64, point geometry.Vector2) {
	s.readings[angle] = Reading{Db: db, Point: point}
}

// Get returns the reading at angle
func (s *Store) Get(angle int) (Reading, bool) {
	r, ok := s.readings[angle]
	return r, ok
}

// Has reports whether angle has been measured
func (s *Store) Has(angle int) bool {
	_, ok := s.readings[angle]
	return ok
}

// Clear removes all readings
func (s *Store) Clear() {
	clear(s.readings)
}

// Count returns the number of measured slots
func (s *Store) Count() int {
	return len(s.readings)
}

// Complete reports whether every slot has been measured
func (s *Store) Complete() bool {
	return len(s.readings) == polar.SlotCount
}

// Missing returns the number of slots without a reading
func (s *Store) Missing() int {
	return polar.SlotCount - len(s.readings)
}

// Angles returns the measured angles in ascending order
func (s *Store) Angles() []int {
	angles := make([]int, 0, len(s.readings))
	for a := range s.readings {
		angles = append(angles, a)
	}
	sort.Ints(angles)
	return angles
}

// All returns every entry in ascending angle order
func (s *Store) All() []Entry {
	angles := s.Angles()
	entries := make([]Entry, 0, len(angles))
	for _, a := range angles {
		entries = append(entries, Entry{Angle: a, Reading: s.readings[a]})
	}
	return entries
}

// ReplaceAll swaps the contents of the store for a copy of readings
func (s *Store) ReplaceAll(readings map[int]Reading) {
	s.readings = make(map[int]Reading, polar.SlotCount)
	for a, r := range readings {
		s.readings[a] = r
	}
}

// Snapshot returns a copy of the readings that shares no state with the store
func (s *Store) Snapshot() map[int]Reading {
	out := make(map[int]Reading, len(s.readings))
	for a, r := range s.readings {
		out[a] = r
	}
	return out
}

// RecomputeAllPositions re-derives every point from its angle and dB in the
// given frame. dB values are left untouched.
func (s *Store) RecomputeAllPositions(f Frame) {
	for a, r := range s.readings {
		r.Point = f.Place(a, r.Db)
		s.readings[a] = r
	}
}

// ImportFromAngleDbPairs replaces the store with readings built from pairs,
// placing each in frame. The dB values are kept as given. Pairs may cover
// only part of the slots; angles that are not slots are skipped. Returns
// false without changes if frame is nil.
func (s *Store) ImportFromAngleDbPairs(pairs map[int]float64, frame *Frame) bool {
	if frame == nil {
		return false
	}
	readings := make(map[int]Reading, len(pairs))
	for a, db := range pairs {
		if !polar.IsSlot(a) {
			continue
		}
		readings[a] = Reading{Db: db, Point: frame.Place(a, db)}
	}
	s.readings = readings
	return true
}

// Polyline returns the reading points in ascending angle order. When the
// pattern is complete the first point is repeated at the end to close it.
func (s *Store) Polyline() []geometry.Vector2 {
	entries := s.All()
	points := make([]geometry.Vector2, 0, len(entries)+1)
	for _, e := range entries {
		points = append(points, e.Point)
	}
	if s.Complete() {
		points = append(points, points[0])
	}
	return points
}
