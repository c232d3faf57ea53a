// Package history provides undo/redo for the editing engine.
//
// An Operation is a tagged variant: either a span replacement
// (KindReplace) or a full-document snapshot (KindSnapshot). Operations
// live on two LIFO stacks; pushing a new operation always clears the redo
// stack.
//
// Contiguous typing merges: a pushed replace operation is folded into the
// top of the undo stack when both are pure inserts (empty old text,
// zero-width source span, no newline) forming one unbroken typing stream.
// Undoing the merged entry removes the whole run atomically.
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello")
//	h := history.New(0)
//
//	old, after := buf.ReplaceSpan(span, "world")
//	h.Push(history.NewReplace(span, after, old, "world", selBefore, buf.SelectionState()), true)
//
//	h.Undo(buf) // "hello" again
//	h.Redo(buf) // "world" again
//
// Undo or redo on an empty stack is a no-op and reports false; it is
// never an error.
package history
