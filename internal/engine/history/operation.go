package history

import (
	"strings"

	"github.com/dshills/markboard/internal/engine/buffer"
)

// Kind discriminates the operation variants.
type Kind uint8

const (
	// KindReplace is a span replacement: old text swapped for new text.
	KindReplace Kind = iota

	// KindSnapshot is a whole-document replacement, used for transforms
	// that touch many lines non-uniformly (indent, outdent).
	KindSnapshot
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindReplace:
		return "replace"
	case KindSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// Operation is a single undoable edit, a tagged variant over the replace
// and snapshot payloads. Only the fields of the active variant are
// meaningful.
type Operation struct {
	Kind Kind

	// Replace payload.
	SpanBefore buffer.Span // span that was replaced, pre-edit coordinates
	SpanAfter  buffer.Span // span the new text occupies, post-edit
	OldText    string
	NewText    string
	PureInsert bool

	// Barrier marks an operation later typing may not merge into, such
	// as a paste. Set by Push when merging is disallowed.
	Barrier bool

	// Snapshot payload.
	TextBefore string
	TextAfter  string

	// Caret/selection restore points, common to both variants.
	SelBefore buffer.SelectionState
	SelAfter  buffer.SelectionState
}

// NewReplace builds a replace operation from the spans ReplaceSpan
// reported and the selection states around the edit.
func NewReplace(spanBefore, spanAfter buffer.Span, oldText, newText string, selBefore, selAfter buffer.SelectionState) Operation {
	return Operation{
		Kind:       KindReplace,
		SpanBefore: spanBefore,
		SpanAfter:  spanAfter,
		OldText:    oldText,
		NewText:    newText,
		PureInsert: oldText == "" && spanBefore.IsEmpty() && !strings.Contains(newText, "\n"),
		SelBefore:  selBefore,
		SelAfter:   selAfter,
	}
}

// NewSnapshot builds a snapshot operation from full document texts and
// the selection states around the transform. Snapshots never merge.
func NewSnapshot(textBefore, textAfter string, selBefore, selAfter buffer.SelectionState) Operation {
	return Operation{
		Kind:       KindSnapshot,
		TextBefore: textBefore,
		TextAfter:  textAfter,
		SelBefore:  selBefore,
		SelAfter:   selAfter,
	}
}

// undo reverses the operation against the buffer and restores the
// pre-operation selection.
func (op Operation) undo(buf *buffer.Buffer) {
	switch op.Kind {
	case KindReplace:
		buf.ReplaceSpan(op.SpanAfter, op.OldText)
	case KindSnapshot:
		buf.SetText(op.TextBefore)
	}
	buf.RestoreSelection(op.SelBefore)
}

// redo re-applies the operation and restores the post-operation
// selection.
func (op Operation) redo(buf *buffer.Buffer) {
	switch op.Kind {
	case KindReplace:
		buf.ReplaceSpan(op.SpanBefore, op.NewText)
	case KindSnapshot:
		buf.SetText(op.TextAfter)
	}
	buf.RestoreSelection(op.SelAfter)
}
