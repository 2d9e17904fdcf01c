package puzzle

// History is the undo/redo stack of one puzzle session. Every entry is a
// toggled border; undoing or redoing an entry re-toggles it.
type History struct {
	past   []Border
	future []Border
}

func NewHistory() *History {
	return &History{}
}

// Push records a new toggle and discards any redoable future.
func (h *History) Push(b Border) {
	h.past = append(h.past, b)
	h.future = h.future[:0]
}

// Undo pops the most recent entry and reports the border to re-toggle.
func (h *History) Undo() (Border, bool) {
	if len(h.past) == 0 {
		return Border{}, false
	}
	entry := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, entry)
	return entry, true
}

// Redo pops the most recently undone entry and reports the border to re-toggle.
func (h *History) Redo() (Border, bool) {
	if len(h.future) == 0 {
		return Border{}, false
	}
	entry := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, entry)
	return entry, true
}

func (h *History) HasPast() bool {
	return len(h.past) > 0
}

func (h *History) HasFuture() bool {
	return len(h.future) > 0
}
