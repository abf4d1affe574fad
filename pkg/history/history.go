package history

// DefaultCapacity is the number of undo and redo steps kept
const DefaultCapacity = 30

// History keeps undo and redo stacks of immutable snapshots
type History[T any] struct {
	undo *Ring[T]
	redo *Ring[T]
}

// New creates a history with capacity steps in each direction
func New[T any](capacity int) *History[T] {
	return &History[T]{
		undo: NewRing[T](capacity),
		redo: NewRing[T](capacity),
	}
}

// Checkpoint records the state before a new action. The redo stack is
// discarded since it belongs to an abandoned branch.
func (h *History[T]) Checkpoint(state T) {
	h.undo.Push(state)
	h.redo.Clear()
}

// Undo swaps current for the most recent checkpoint. current is pushed onto
// the redo stack. Returns false if there is nothing to undo.
func (h *History[T]) Undo(current T) (T, bool) {
	prev, ok := h.undo.Pop()
	if !ok {
		return prev, false
	}
	h.redo.Push(current)
	return prev, true
}

// Redo is the mirror of Undo
func (h *History[T]) Redo(current T) (T, bool) {
	next, ok := h.redo.Pop()
	if !ok {
		return next, false
	}
	h.undo.Push(current)
	return next, true
}

// CanUndo reports whether an undo step is available
func (h *History[T]) CanUndo() bool {
	return h.undo.Len() > 0
}

// CanRedo reports whether a redo step is available
func (h *History[T]) CanRedo() bool {
	return h.redo.Len() > 0
}

// UndoDepth returns the number of undo steps
func (h *History[T]) UndoDepth() int {
	return h.undo.Len()
}

// RedoDepth returns the number of redo steps
func (h *History[T]) RedoDepth() int {
	return h.redo.Len()
}

// Reset drops both stacks
func (h *History[T]) Reset() {
	h.undo.Clear()
	h.redo.Clear()
}
