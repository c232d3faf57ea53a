package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/markboard/internal/engine/buffer"
)

// cells is a unit-width monospace measurer: widths are in character
// cells, so test expectations read as column counts.
var cells = Monospace(1)

func segText(line string, v VisualLine) string {
	r := []rune(line)
	return string(r[v.StartCol:v.EndCol()])
}

func TestWrapAtWordBoundary(t *testing.T) {
	e := NewEngine(cells)
	buf := buffer.NewFromString("the quick brown fox")

	got := e.Layout(buf, 10)
	want := []VisualLine{
		{Line: 0, StartCol: 0, Len: 10, First: true},
		{Line: 0, StartCol: 10, Len: 9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visual lines mismatch (-want +got):\n%s", diff)
	}
	if s := segText("the quick brown fox", got[0]); s != "the quick " {
		t.Errorf("first segment %q", s)
	}
	if s := segText("the quick brown fox", got[1]); s != "brown fox" {
		t.Errorf("second segment %q", s)
	}
}

func TestWrapBacktracksToLastSpace(t *testing.T) {
	e := NewEngine(cells)
	buf := buffer.NewFromString("a bcdefgh")

	got := e.Layout(buf, 8)
	want := []VisualLine{
		{Line: 0, StartCol: 0, Len: 2, First: true},
		{Line: 0, StartCol: 2, Len: 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visual lines mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapContinuationSkipsLeadingSpaces(t *testing.T) {
	e := NewEngine(cells)
	buf := buffer.NewFromString("hello  world")

	got := e.Layout(buf, 5)
	want := []VisualLine{
		{Line: 0, StartCol: 0, Len: 5, First: true},
		{Line: 0, StartCol: 7, Len: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visual lines mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapMidWordWithoutSpaces(t *testing.T) {
	e := NewEngine(cells)
	buf := buffer.NewFromString("abcdefghij")

	got := e.Layout(buf, 4)
	want := []VisualLine{
		{Line: 0, StartCol: 0, Len: 4, First: true},
		{Line: 0, StartCol: 4, Len: 4},
		{Line: 0, StartCol: 8, Len: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visual lines mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapCharacterMode(t *testing.T) {
	e := NewEngine(cells, WithWordWrap(false))
	buf := buffer.NewFromString("aa bb cc")

	got := e.Layout(buf, 5)
	// Character wrapping fills each segment to the width; a break that
	// lands on a space still breaks there.
	want := []VisualLine{
		{Line: 0, StartCol: 0, Len: 5, First: true},
		{Line: 0, StartCol: 6, Len: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visual lines mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapTinyWidthStillAdvances(t *testing.T) {
	e := NewEngine(cells)
	buf := buffer.NewFromString("abc")

	got := e.Layout(buf, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 one-rune segments, got %d", len(got))
	}
	for i, v := range got {
		if v.Len != 1 || v.StartCol != i {
			t.Errorf("segment %d: %+v", i, v)
		}
	}
}

func TestEmptyLineYieldsOneVisualLine(t *testing.T) {
	e := NewEngine(cells)
	buf := buffer.NewFromString("above\n\nbelow")

	got := e.Layout(buf, 100)
	if len(got) != 3 {
		t.Fatalf("expected 3 visual lines, got %d", len(got))
	}
	mid := got[1]
	if mid.Line != 1 || mid.Len != 0 || !mid.First {
		t.Errorf("empty line segment %+v", mid)
	}
}

func TestWrapLongLineCoversEveryColumn(t *testing.T) {
	e := NewEngine(cells)
	line := "one two three four five six seven eight nine ten"
	buf := buffer.NewFromString(line)

	got := e.Layout(buf, 12)
	covered := make(map[int]bool)
	for _, v := range got {
		if !v.First && v.Len > 0 {
			r := []rune(line)
			if r[v.StartCol] == ' ' {
				t.Errorf("continuation segment starts with a space at col %d", v.StartCol)
			}
		}
		for c := v.StartCol; c < v.EndCol(); c++ {
			covered[c] = true
		}
	}
	// Every non-space column must land in exactly one segment.
	for c, r := range []rune(line) {
		if r != ' ' && !covered[c] {
			t.Errorf("column %d (%q) not covered", c, r)
		}
	}
}

func TestTabAdvancesToNextStop(t *testing.T) {
	e := NewEngine(cells, WithTabWidth(4))

	// "a\tb": the tab fills columns 1-3, so 'b' starts at x=4.
	if x := e.XForColumn("a\tb", 0, 2); x != 4 {
		t.Errorf("x for col 2 = %v, want 4", x)
	}
	// A tab at a stop boundary advances a full tab width.
	if x := e.XForColumn("\tb", 0, 1); x != 4 {
		t.Errorf("x for col 1 = %v, want 4", x)
	}
	// "ab\tc": tab fills columns 2-3 only.
	if x := e.XForColumn("ab\tc", 0, 3); x != 4 {
		t.Errorf("x for col 3 = %v, want 4", x)
	}
}

func TestXForColumnRelativeToSegment(t *testing.T) {
	e := NewEngine(cells)

	if x := e.XForColumn("hello world", 6, 8); x != 2 {
		t.Errorf("x = %v, want 2", x)
	}
	if x := e.XForColumn("hello world", 6, 6); x != 0 {
		t.Errorf("x = %v, want 0", x)
	}
}

func TestColumnForXMidpointRounding(t *testing.T) {
	e := NewEngine(cells)
	line := "abcd"

	tests := []struct {
		x    float64
		want int
	}{
		{-1, 0},
		{0, 0},
		{0.4, 0},
		{0.6, 1},
		{1.5, 2},
		{3.6, 4},
		{99, 4},
	}
	for _, tt := range tests {
		if got := e.ColumnForX(line, 0, 4, tt.x); got != tt.want {
			t.Errorf("ColumnForX(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

// Mapping a column to x and back must return the same column for every
// position; caret placement depends on this round trip.
func TestXColumnRoundTrip(t *testing.T) {
	e := NewEngine(cells, WithTabWidth(4))
	lines := []string{
		"plain text",
		"\tindented\tline",
		"wide 漢字 runes",
	}
	for _, line := range lines {
		n := len([]rune(line))
		for col := 0; col <= n; col++ {
			x := e.XForColumn(line, 0, col)
			if got := e.ColumnForX(line, 0, n, x); got != col {
				t.Errorf("%q: col %d -> x %v -> col %d", line, col, x, got)
			}
		}
	}
}

func TestTableRowsAreNotWrapped(t *testing.T) {
	e := NewEngine(cells)
	buf := buffer.NewFromString(
		"| this header is quite long | second column also long |\n|---|---|\n| a | b |")

	got := e.Layout(buf, 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 visual lines, got %d", len(got))
	}
	for i, v := range got {
		if !v.TableRow {
			t.Errorf("line %d: expected TableRow", i)
		}
		if v.StartCol != 0 || v.EndCol() != buf.LineLen(i) {
			t.Errorf("line %d: table row must span the whole line, got %+v", i, v)
		}
	}
}

func TestTableRowSlots(t *testing.T) {
	e := NewEngine(cells)
	buf := buffer.NewFromString("| a | b |\n|---|---|\n| x<br>y | z |")

	got := e.Layout(buf, 100)
	if len(got) != 4 {
		t.Fatalf("expected 4 visual lines, got %d", len(got))
	}

	body := got[2:]
	for k, v := range body {
		if v.Line != 2 || v.Slot != k || v.Slots != 2 {
			t.Errorf("slot %d: %+v", k, v)
		}
		if v.First != (k == 0) {
			t.Errorf("slot %d: First = %v", k, v.First)
		}
	}
}

func TestMonospaceMeasurer(t *testing.T) {
	m := Monospace(8)

	if w := m("ab"); w != 16 {
		t.Errorf("width of 'ab' = %v, want 16", w)
	}
	if w := m("漢"); w != 16 {
		t.Errorf("width of wide rune = %v, want 16", w)
	}
	if w := m(""); w != 0 {
		t.Errorf("width of empty = %v, want 0", w)
	}
}
