package history

import "github.com/dshills/markboard/internal/engine/buffer"

// DefaultMaxEntries bounds the undo stack when no limit is configured.
const DefaultMaxEntries = 1000

// History manages the undo and redo stacks for one buffer.
type History struct {
	undo       []Operation
	redo       []Operation
	maxEntries int
}

// New creates a history with the given depth limit. A limit <= 0 selects
// DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Push records an operation. When allowMerge is set and the operation
// continues the typing run on top of the undo stack, it is merged in
// place. Either way the redo stack is cleared: a new edit invalidates
// redo history.
func (h *History) Push(op Operation, allowMerge bool) {
	h.redo = nil
	op.Barrier = !allowMerge

	if allowMerge && len(h.undo) > 0 {
		top := &h.undo[len(h.undo)-1]
		if canMerge(*top, op) {
			top.NewText += op.NewText
			top.SpanAfter.End = op.SpanAfter.End
			top.SelAfter = op.SelAfter
			return
		}
	}

	h.undo = append(h.undo, op)
	if len(h.undo) > h.maxEntries {
		excess := len(h.undo) - h.maxEntries
		h.undo = append(h.undo[:0], h.undo[excess:]...)
	}
}

// canMerge reports whether next extends top as one contiguous typing
// stream. Only pure inserts merge: never deletions, never multi-line
// inserts, never edits made with an active selection, and only when the
// insertion point continues exactly at the previous insertion's end.
func canMerge(top, next Operation) bool {
	if top.Kind != KindReplace || next.Kind != KindReplace {
		return false
	}
	if top.Barrier || !top.PureInsert || !next.PureInsert {
		return false
	}
	if top.SelBefore.Active() || top.SelAfter.Active() ||
		next.SelBefore.Active() || next.SelAfter.Active() {
		return false
	}
	return next.SpanBefore.Start == top.SpanAfter.End
}

// Undo pops the most recent operation, reverses it against the buffer,
// and moves it to the redo stack. Returns false on an empty stack.
func (h *History) Undo(buf *buffer.Buffer) bool {
	if len(h.undo) == 0 {
		return false
	}
	op := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	op.undo(buf)
	h.redo = append(h.redo, op)
	return true
}

// Redo re-applies the most recently undone operation and moves it back to
// the undo stack. Returns false on an empty stack.
func (h *History) Redo(buf *buffer.Buffer) bool {
	if len(h.redo) == 0 {
		return false
	}
	op := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	op.redo(buf)
	h.undo = append(h.undo, op)
	return true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoCount returns the number of undo entries.
func (h *History) UndoCount() int {
	return len(h.undo)
}

// RedoCount returns the number of redo entries.
func (h *History) RedoCount() int {
	return len(h.redo)
}

// Clear drops all undo/redo history.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
