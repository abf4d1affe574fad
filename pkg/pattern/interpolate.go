package pattern

import "github.com/philipparndt/antennareader/pkg/polar"

// Interpolate fills every unmeasured slot by linear interpolation between the
// nearest measured neighbours below and above it. Slots before the first or
// after the last measurement take that measurement's dB unchanged; the pattern
// does not wrap around between 350° and 0°.
//
// Measured slots keep their values. The store is left alone when empty.
func (s *Store) Interpolate(f Frame) {
	if len(s.readings) == 0 {
		return
	}

	measured := s.Angles()
	result := s.Snapshot()

	for _, current := range polar.Slots() {
		if _, ok := s.readings[current]; ok {
			continue
		}

		lower, upper := -1, -1
		for _, a := range measured {
			if a < current {
				lower = a
			}
			if a > current && upper == -1 {
				upper = a
			}
		}

		var db float64
		switch {
		case lower == -1:
			db = s.readings[upper].Db
		case upper == -1:
			db = s.readings[lower].Db
		default:
			alpha := float64(current-lower) / float64(upper-lower)
			lowerDb := s.readings[lower].Db
			upperDb := s.readings[upper].Db
			db = lowerDb + alpha*(upperDb-lowerDb)
		}

		result[current] = Reading{Db: db, Point: f.Place(current, db)}
	}

	s.readings = result
}
