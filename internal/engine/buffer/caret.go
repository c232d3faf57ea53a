package buffer

import "unicode"

// Caret returns the current caret position.
func (b *Buffer) Caret() Point {
	return b.caret
}

// SetCaret moves the caret to the given position, clamped into range.
func (b *Buffer) SetCaret(line, col int) {
	b.setCaret(Point{Line: line, Col: col})
}

// setCaret moves the caret to a clamped point without touching selection
// state.
func (b *Buffer) setCaret(p Point) {
	b.caret = b.ClampPoint(p)
}

// MoveLeft moves the caret one character left, crossing to the end of the
// previous line at a line start.
func (b *Buffer) MoveLeft() {
	switch {
	case b.caret.Col > 0:
		b.caret.Col--
	case b.caret.Line > 0:
		b.caret.Line--
		b.caret.Col = runeLen(b.lines[b.caret.Line])
	}
}

// MoveRight moves the caret one character right, crossing to the start of
// the next line at a line end.
func (b *Buffer) MoveRight() {
	switch {
	case b.caret.Col < runeLen(b.lines[b.caret.Line]):
		b.caret.Col++
	case b.caret.Line < len(b.lines)-1:
		b.caret.Line++
		b.caret.Col = 0
	}
}

// MoveUp moves the caret one logical line up, clamping the column.
func (b *Buffer) MoveUp() {
	if b.caret.Line == 0 {
		return
	}
	b.caret.Line--
	if n := runeLen(b.lines[b.caret.Line]); b.caret.Col > n {
		b.caret.Col = n
	}
}

// MoveDown moves the caret one logical line down, clamping the column.
func (b *Buffer) MoveDown() {
	if b.caret.Line >= len(b.lines)-1 {
		return
	}
	b.caret.Line++
	if n := runeLen(b.lines[b.caret.Line]); b.caret.Col > n {
		b.caret.Col = n
	}
}

// MoveLineStart moves the caret to column 0.
func (b *Buffer) MoveLineStart() {
	b.caret.Col = 0
}

// MoveLineEnd moves the caret to the end of the current line.
func (b *Buffer) MoveLineEnd() {
	b.caret.Col = runeLen(b.lines[b.caret.Line])
}

// MoveWordRight moves the caret to the end of the next word: any
// whitespace is skipped first, then the word itself. At the end of a line
// the caret crosses to the start of the next line.
func (b *Buffer) MoveWordRight() {
	r := []rune(b.lines[b.caret.Line])
	if b.caret.Col >= len(r) {
		if b.caret.Line < len(b.lines)-1 {
			b.caret = Point{Line: b.caret.Line + 1, Col: 0}
		}
		return
	}
	i := b.caret.Col
	for i < len(r) && unicode.IsSpace(r[i]) {
		i++
	}
	for i < len(r) && !unicode.IsSpace(r[i]) {
		i++
	}
	b.caret.Col = i
}

// MoveWordLeft moves the caret to the start of the previous word. At the
// start of a line the caret crosses to the end of the previous line.
func (b *Buffer) MoveWordLeft() {
	if b.caret.Col == 0 {
		if b.caret.Line > 0 {
			b.caret.Line--
			b.caret.Col = runeLen(b.lines[b.caret.Line])
		}
		return
	}
	r := []rune(b.lines[b.caret.Line])
	i := b.caret.Col
	for i > 0 && unicode.IsSpace(r[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(r[i-1]) {
		i--
	}
	b.caret.Col = i
}

// Selection

// SelectionState captures caret, anchor, and the selection flag for undo
// bookkeeping.
type SelectionState struct {
	Caret     Point
	Anchor    Point
	Selecting bool
}

// Active returns true if the state represents an active selection.
func (st SelectionState) Active() bool {
	return st.Selecting && st.Anchor != st.Caret
}

// StartSelection drops the selection anchor at the caret.
func (b *Buffer) StartSelection() {
	b.anchor = b.caret
	b.selecting = true
}

// ClearSelection removes any selection, leaving the caret in place.
func (b *Buffer) ClearSelection() {
	b.selecting = false
}

// Anchor returns the selection anchor.
func (b *Buffer) Anchor() Point {
	return b.anchor
}

// SelectionActive returns true when a selection exists and has extent.
func (b *Buffer) SelectionActive() bool {
	return b.selecting && b.anchor != b.caret
}

// Selection returns the normalized span between anchor and caret, and
// whether a selection is active.
func (b *Buffer) Selection() (Span, bool) {
	if !b.SelectionActive() {
		return Span{}, false
	}
	return Span{Start: b.anchor, End: b.caret}.Normalize(), true
}

// SelectionState returns the current caret/anchor state.
func (b *Buffer) SelectionState() SelectionState {
	return SelectionState{Caret: b.caret, Anchor: b.anchor, Selecting: b.selecting}
}

// RestoreSelection reinstates a previously captured state, clamped into
// the current document.
func (b *Buffer) RestoreSelection(st SelectionState) {
	b.caret = b.ClampPoint(st.Caret)
	b.anchor = b.ClampPoint(st.Anchor)
	b.selecting = st.Selecting
}
