package history

import "testing"

func TestRingPushPop(t *testing.T) {
	r := NewRing[int](3)
	for i := 1; i <= 3; i++ {
		r.Push(i)
	}

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	for want := 3; want >= 1; want-- {
		got, ok := r.Pop()
		if !ok || got != want {
			t.Fatalf("Pop = %d, %v; want %d", got, ok, want)
		}
	}
	if _, ok := r.Pop(); ok {
		t.Error("Pop on empty ring should fail")
	}
}

// TestRingEvictsOldest pushes past capacity and checks the bottom is dropped
func TestRingEvictsOldest(t *testing.T) {
	r := NewRing[int](30)
	for i := 0; i < 45; i++ {
		r.Push(i)
	}

	if r.Len() != 30 {
		t.Fatalf("Len = %d, want 30", r.Len())
	}
	// Top is the newest, bottom is 45-30 = 15
	var last int
	for r.Len() > 0 {
		last, _ = r.Pop()
	}
	if last != 15 {
		t.Errorf("oldest retained = %d, want 15", last)
	}
}

func TestRingPushAfterWrap(t *testing.T) {
	r := NewRing[string](2)
	r.Push("a")
	r.Push("b")
	r.Push("c") // evicts a
	r.Pop()     // removes c
	r.Push("d")

	got := []string{}
	for r.Len() > 0 {
		v, _ := r.Pop()
		got = append(got, v)
	}
	if len(got) != 2 || got[0] != "d" || got[1] != "b" {
		t.Errorf("unexpected order %v", got)
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	h := New[int](DefaultCapacity)
	state := 0

	for i := 1; i <= 3; i++ {
		h.Checkpoint(state)
		state = i
	}

	for want := 2; want >= 0; want-- {
		prev, ok := h.Undo(state)
		if !ok || prev != want {
			t.Fatalf("Undo = %d, %v; want %d", prev, ok, want)
		}
		state = prev
	}
	if h.CanUndo() {
		t.Error("undo stack should be empty")
	}
	if _, ok := h.Undo(state); ok {
		t.Error("Undo on empty history should fail")
	}

	next, ok := h.Redo(state)
	if !ok || next != 1 {
		t.Fatalf("Redo = %d, %v; want 1", next, ok)
	}
	if h.UndoDepth() != 1 || h.RedoDepth() != 2 {
		t.Errorf("depths undo=%d redo=%d", h.UndoDepth(), h.RedoDepth())
	}
}

func TestHistoryCheckpointClearsRedo(t *testing.T) {
	h := New[int](DefaultCapacity)
	h.Checkpoint(0)
	h.Undo(1)
	if !h.CanRedo() {
		t.Fatal("expected a redo step")
	}

	h.Checkpoint(0)
	if h.CanRedo() {
		t.Error("checkpoint should discard the redo branch")
	}
}

func TestHistorySaturates(t *testing.T) {
	h := New[int](DefaultCapacity)
	for i := 0; i < DefaultCapacity+1; i++ {
		h.Checkpoint(i)
	}

	if h.UndoDepth() != DefaultCapacity {
		t.Fatalf("UndoDepth = %d, want %d", h.UndoDepth(), DefaultCapacity)
	}
	var last int
	for h.CanUndo() {
		last, _ = h.Undo(-1)
	}
	if last != 1 {
		t.Errorf("oldest reachable checkpoint = %d, want 1", last)
	}
	if h.RedoDepth() != DefaultCapacity {
		t.Errorf("redo stack should also be capped, got %d", h.RedoDepth())
	}
}
