package diagram

import "github.com/philipparndt/antennareader/pkg/pattern"

// Snapshot is an immutable copy of the undoable diagram state
type Snapshot struct {
	shape    Shape
	readings map[int]pattern.Reading
	locked   bool
}

func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		shape:    c.shape,
		readings: c.readings.Snapshot(),
		locked:   c.locked,
	}
}

// restore applies s. The readings are copied so the snapshot stays intact
// if it is restored again later.
func (c *Controller) restore(s Snapshot) {
	c.shape = s.shape
	c.readings.ReplaceAll(s.readings)
	c.locked = s.locked
	c.endDrag()
}

// checkpoint records the current state before a user action mutates it
func (c *Controller) checkpoint() {
	if c.restoring {
		return
	}
	c.history.Checkpoint(c.snapshot())
}
