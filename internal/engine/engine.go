package engine

import (
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/markboard/internal/engine/buffer"
	"github.com/dshills/markboard/internal/engine/history"
	"github.com/dshills/markboard/internal/markdown"
	"github.com/dshills/markboard/internal/renderer/layout"
)

// Editor is the editing session for one markdown document. It owns the
// buffer and undo history and derives blocks, inline runs, and visual
// lines on demand. The whiteboard host keys its note nodes by the
// editor's document ID.
type Editor struct {
	id      uuid.UUID
	buf     *buffer.Buffer
	history *history.History
	layout  *layout.Engine

	initText   string
	tabWidth   int
	wrapAtWord bool
	maxUndo    int
	measure    layout.Measurer
}

// New creates an editing session.
func New(opts ...Option) *Editor {
	e := &Editor{
		tabWidth:   DefaultTabWidth,
		wrapAtWord: true,
		maxUndo:    history.DefaultMaxEntries,
		measure:    layout.Monospace(DefaultCellWidth),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.id = uuid.New()
	e.buf = buffer.NewFromString(e.initText)
	e.history = history.New(e.maxUndo)
	e.layout = layout.NewEngine(e.measure,
		layout.WithTabWidth(e.tabWidth),
		layout.WithWordWrap(e.wrapAtWord),
	)
	return e
}

// ID returns the stable document identity of this session.
func (e *Editor) ID() uuid.UUID {
	return e.id
}

// Buffer exposes the underlying buffer for caret motion, selection, and
// queries. Mutations should go through the Editor so they are recorded
// in the undo history.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Text returns the full document text.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// SetText replaces the whole document and resets the undo history, as
// when the host loads a different note.
func (e *Editor) SetText(text string) {
	e.buf.SetText(text)
	e.history.Clear()
}

// apply routes one span replacement through the buffer and records it.
func (e *Editor) apply(target buffer.Span, text string, allowMerge bool) {
	selBefore := e.buf.SelectionState()
	target = e.buf.ClampSpan(target)
	old, after := e.buf.ReplaceSpan(target, text)
	e.history.Push(
		history.NewReplace(target, after, old, text, selBefore, e.buf.SelectionState()),
		allowMerge,
	)
}

// target returns the span the next edit applies to: the active selection
// if any, otherwise the caret point.
func (e *Editor) target() (buffer.Span, bool) {
	if sp, ok := e.buf.Selection(); ok {
		return sp, true
	}
	return buffer.PointSpan(e.buf.Caret()), false
}

// Type inserts typed text at the caret, replacing the selection if one
// is active. Plain typing merges into the current undo run; replacing a
// selection never merges.
func (e *Editor) Type(text string) {
	target, hadSelection := e.target()
	e.apply(target, text, !hadSelection)
}

// InsertNewline splits the line at the caret (replacing any selection).
func (e *Editor) InsertNewline() {
	e.Type("\n")
}

// Paste inserts clipboard text as a single non-merging edit.
func (e *Editor) Paste(text string) {
	target, _ := e.target()
	e.apply(target, text, false)
}

// ReplaceRange replaces an arbitrary span, recording one undo entry.
func (e *Editor) ReplaceRange(span buffer.Span, text string) {
	e.apply(span, text, false)
}

// Backspace deletes the selection, or the character before the caret,
// merging lines at a line start.
func (e *Editor) Backspace() {
	if sp, ok := e.buf.Selection(); ok {
		e.apply(sp, "", false)
		return
	}
	caret := e.buf.Caret()
	if caret.IsZero() {
		return
	}
	prev := buffer.Point{Line: caret.Line, Col: caret.Col - 1}
	if caret.Col == 0 {
		prev = buffer.Point{Line: caret.Line - 1, Col: e.buf.LineLen(caret.Line - 1)}
	}
	e.apply(buffer.Span{Start: prev, End: caret}, "", false)
}

// Delete deletes the selection, or the character after the caret,
// merging lines at a line end.
func (e *Editor) Delete() {
	if sp, ok := e.buf.Selection(); ok {
		e.apply(sp, "", false)
		return
	}
	caret := e.buf.Caret()
	next := buffer.Point{Line: caret.Line, Col: caret.Col + 1}
	if caret.Col >= e.buf.LineLen(caret.Line) {
		if caret.Line >= e.buf.LineCount()-1 {
			return
		}
		next = buffer.Point{Line: caret.Line + 1, Col: 0}
	}
	e.apply(buffer.Span{Start: caret, End: next}, "", false)
}

// DeleteSelection deletes the active selection, if any.
func (e *Editor) DeleteSelection() {
	if sp, ok := e.buf.Selection(); ok {
		e.apply(sp, "", false)
	}
}

// Indent prepends one tab to every line touched by the selection (or the
// caret line), recorded as a single snapshot operation.
func (e *Editor) Indent() {
	e.transformLines(func(line string) (string, int) {
		return "\t" + line, 1
	})
}

// Outdent removes one leading tab, or up to tabWidth leading spaces,
// from every line touched by the selection (or the caret line).
func (e *Editor) Outdent() {
	e.transformLines(func(line string) (string, int) {
		if strings.HasPrefix(line, "\t") {
			return line[1:], -1
		}
		removed := 0
		for removed < e.tabWidth && removed < len(line) && line[removed] == ' ' {
			removed++
		}
		return line[removed:], -removed
	})
}

// transformLines rewrites the covered lines with fn (which reports the
// column shift it caused) and records the whole change as one snapshot.
func (e *Editor) transformLines(fn func(string) (string, int)) {
	selBefore := e.buf.SelectionState()
	textBefore := e.buf.Text()

	startLine, endLine := e.buf.Caret().Line, e.buf.Caret().Line
	if sp, ok := e.buf.Selection(); ok {
		startLine, endLine = sp.Start.Line, sp.End.Line
	}

	lines := e.buf.Lines()
	shift := make(map[int]int, endLine-startLine+1)
	changed := false
	for i := startLine; i <= endLine && i < len(lines); i++ {
		next, delta := fn(lines[i])
		if next != lines[i] {
			changed = true
		}
		lines[i] = next
		shift[i] = delta
	}
	if !changed {
		return
	}

	e.buf.SetText(strings.Join(lines, "\n"))

	after := selBefore
	after.Caret.Col += shift[after.Caret.Line]
	after.Anchor.Col += shift[after.Anchor.Line]
	e.buf.RestoreSelection(after)

	e.history.Push(
		history.NewSnapshot(textBefore, e.buf.Text(), selBefore, e.buf.SelectionState()),
		false,
	)
}

// Undo reverses the most recent edit. Returns false when there is
// nothing to undo.
func (e *Editor) Undo() bool {
	return e.history.Undo(e.buf)
}

// Redo re-applies the most recently undone edit. Returns false when
// there is nothing to redo.
func (e *Editor) Redo() bool {
	return e.history.Redo(e.buf)
}

// CanUndo reports whether undo is available.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether redo is available.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}

// Blocks re-parses the document into block-level regions.
func (e *Editor) Blocks() []markdown.Block {
	return markdown.Parse(e.buf)
}

// InlineRuns scans one line into inline style runs.
func (e *Editor) InlineRuns(line int) []markdown.Run {
	return markdown.ScanLine(e.buf.Line(line))
}

// Layout computes the visual lines for the given available pixel width.
func (e *Editor) Layout(width float64) []layout.VisualLine {
	return e.layout.Layout(e.buf, width)
}
