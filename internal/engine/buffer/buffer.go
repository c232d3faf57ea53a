package buffer

import (
	"strings"
	"sync/atomic"
)

// Revision uniquely identifies a buffer state.
// Every mutation produces a new revision; derived views (blocks, style
// runs, visual lines) are only valid for the revision they were computed
// against.
type Revision uint64

// revisionCounter is used to generate unique revision values.
var revisionCounter uint64

// NewRevision generates a new unique revision.
func NewRevision() Revision {
	return Revision(atomic.AddUint64(&revisionCounter, 1))
}

// Buffer is the line-oriented text buffer. It owns the ordered line
// sequence, the caret, and the selection anchor. The document always
// contains at least one line; an empty document is one empty line.
//
// All span- and point-taking operations clamp out-of-range coordinates
// into the valid range instead of failing.
type Buffer struct {
	lines     []string
	caret     Point
	anchor    Point
	selecting bool
	revision  Revision
}

// New creates an empty buffer: a single empty line with the caret at 0:0.
func New() *Buffer {
	return &Buffer{
		lines:    []string{""},
		revision: NewRevision(),
	}
}

// NewFromString creates a buffer with initial content.
func NewFromString(text string) *Buffer {
	b := New()
	b.SetText(text)
	return b
}

// normalizeNewlines converts CRLF and CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// runeLen returns the length of s in runes.
func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// SetText replaces the entire document, resets the caret to 0:0, and
// drops any selection.
func (b *Buffer) SetText(text string) {
	b.lines = strings.Split(normalizeNewlines(text), "\n")
	b.caret = Point{}
	b.selecting = false
	b.revision = NewRevision()
}

// Text returns the full document as a string with LF separators.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of logical lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line i without its newline.
// Returns "" for an out-of-range index.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// Lines returns a copy of the line sequence.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// LineLen returns the rune length of line i, or 0 if out of range.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return runeLen(b.lines[i])
}

// Revision returns the current buffer revision.
func (b *Buffer) Revision() Revision {
	return b.revision
}

// End returns the last valid point in the document.
func (b *Buffer) End() Point {
	last := len(b.lines) - 1
	return Point{Line: last, Col: runeLen(b.lines[last])}
}

// ClampPoint clamps a point into the valid range.
func (b *Buffer) ClampPoint(p Point) Point {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := runeLen(b.lines[p.Line]); p.Col > n {
		p.Col = n
	}
	return p
}

// ClampSpan normalizes a span into document order and clamps both
// endpoints into the valid range.
func (b *Buffer) ClampSpan(s Span) Span {
	s = s.Normalize()
	return Span{Start: b.ClampPoint(s.Start), End: b.ClampPoint(s.End)}
}

// SpanText returns the text covered by the span, with one LF per crossed
// line boundary. The span is normalized and clamped first.
func (b *Buffer) SpanText(s Span) string {
	s = b.ClampSpan(s)
	if s.IsSingleLine() {
		r := []rune(b.lines[s.Start.Line])
		return string(r[s.Start.Col:s.End.Col])
	}

	var sb strings.Builder
	head := []rune(b.lines[s.Start.Line])
	sb.WriteString(string(head[s.Start.Col:]))
	for i := s.Start.Line + 1; i < s.End.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i])
	}
	tail := []rune(b.lines[s.End.Line])
	sb.WriteByte('\n')
	sb.WriteString(string(tail[:s.End.Col]))
	return sb.String()
}

// DeleteSpan removes the text covered by the span and places the caret at
// its start. Lines crossed by the span are merged.
func (b *Buffer) DeleteSpan(s Span) {
	s = b.ClampSpan(s)
	if s.IsEmpty() {
		b.setCaret(s.Start)
		return
	}

	if s.IsSingleLine() {
		r := []rune(b.lines[s.Start.Line])
		b.lines[s.Start.Line] = string(r[:s.Start.Col]) + string(r[s.End.Col:])
	} else {
		head := []rune(b.lines[s.Start.Line])
		tail := []rune(b.lines[s.End.Line])
		b.lines[s.Start.Line] = string(head[:s.Start.Col]) + string(tail[s.End.Col:])
		b.lines = append(b.lines[:s.Start.Line+1], b.lines[s.End.Line+1:]...)
	}

	b.setCaret(s.Start)
	b.selecting = false
	b.revision = NewRevision()
}

// ReplaceSpan is the canonical compound edit: delete the span, place the
// caret at its start, insert the new text (expanding embedded newlines),
// and report the deleted text along with the span the inserted text now
// occupies. The caret ends at the reported span's End.
func (b *Buffer) ReplaceSpan(s Span, text string) (old string, after Span) {
	s = b.ClampSpan(s)
	old = b.SpanText(s)
	b.DeleteSpan(s)
	b.InsertMultiline(text)
	return old, Span{Start: s.Start, End: b.caret}
}

// InsertText inserts text at the caret. Embedded newlines are stripped;
// use InsertMultiline for text that should split lines.
func (b *Buffer) InsertText(text string) {
	text = strings.ReplaceAll(normalizeNewlines(text), "\n", "")
	if text == "" {
		return
	}
	r := []rune(b.lines[b.caret.Line])
	b.lines[b.caret.Line] = string(r[:b.caret.Col]) + text + string(r[b.caret.Col:])
	b.caret.Col += runeLen(text)
	b.selecting = false
	b.revision = NewRevision()
}

// InsertMultiline inserts text at the caret, splitting on normalized
// newlines and interleaving InsertNewline for each line break.
func (b *Buffer) InsertMultiline(text string) {
	parts := strings.Split(normalizeNewlines(text), "\n")
	for i, part := range parts {
		if i > 0 {
			b.InsertNewline()
		}
		b.InsertText(part)
	}
}

// InsertNewline splits the current line at the caret and moves the caret
// to the start of the new line.
func (b *Buffer) InsertNewline() {
	r := []rune(b.lines[b.caret.Line])
	head, tail := string(r[:b.caret.Col]), string(r[b.caret.Col:])

	b.lines[b.caret.Line] = head
	b.lines = append(b.lines, "")
	copy(b.lines[b.caret.Line+2:], b.lines[b.caret.Line+1:])
	b.lines[b.caret.Line+1] = tail

	b.caret = Point{Line: b.caret.Line + 1, Col: 0}
	b.selecting = false
	b.revision = NewRevision()
}

// Backspace deletes the character before the caret. At the start of a
// line it merges the line into the previous one.
func (b *Buffer) Backspace() {
	switch {
	case b.caret.Col > 0:
		r := []rune(b.lines[b.caret.Line])
		b.lines[b.caret.Line] = string(r[:b.caret.Col-1]) + string(r[b.caret.Col:])
		b.caret.Col--
	case b.caret.Line > 0:
		prev := b.caret.Line - 1
		col := runeLen(b.lines[prev])
		b.lines[prev] += b.lines[b.caret.Line]
		b.lines = append(b.lines[:b.caret.Line], b.lines[b.caret.Line+1:]...)
		b.caret = Point{Line: prev, Col: col}
	default:
		return
	}
	b.selecting = false
	b.revision = NewRevision()
}

// Delete deletes the character after the caret. At the end of a line it
// merges the next line into the current one.
func (b *Buffer) Delete() {
	r := []rune(b.lines[b.caret.Line])
	switch {
	case b.caret.Col < len(r):
		b.lines[b.caret.Line] = string(r[:b.caret.Col]) + string(r[b.caret.Col+1:])
	case b.caret.Line < len(b.lines)-1:
		b.lines[b.caret.Line] += b.lines[b.caret.Line+1]
		b.lines = append(b.lines[:b.caret.Line+1], b.lines[b.caret.Line+2:]...)
	default:
		return
	}
	b.selecting = false
	b.revision = NewRevision()
}
