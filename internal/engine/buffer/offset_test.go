package buffer

import "testing"

func TestOffsetCountsSeparators(t *testing.T) {
	b := NewFromString("ab\nc\n\nlong line")

	tests := []struct {
		p    Point
		want int
	}{
		{Point{0, 0}, 0},
		{Point{0, 2}, 2},
		{Point{1, 0}, 3},
		{Point{1, 1}, 4},
		{Point{2, 0}, 5},
		{Point{3, 0}, 6},
		{Point{3, 9}, 15},
	}
	for _, tt := range tests {
		if got := b.Offset(tt.p); got != tt.want {
			t.Errorf("Offset(%s) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

// PointAt must invert Offset for every valid position in the document,
// including line ends and the document end.
func TestOffsetPointAtInverse(t *testing.T) {
	b := NewFromString("héllo\n\nwørld end")

	for line := 0; line < b.LineCount(); line++ {
		for col := 0; col <= b.LineLen(line); col++ {
			p := Point{Line: line, Col: col}
			off := b.Offset(p)
			if got := b.PointAt(off); got != p {
				t.Errorf("PointAt(Offset(%s)) = %s", p, got)
			}
		}
	}

	for off := 0; off <= b.DocLen(); off++ {
		p := b.PointAt(off)
		if got := b.Offset(p); got != off {
			t.Errorf("Offset(PointAt(%d)) = %d", off, got)
		}
	}
}

func TestPointAtClamps(t *testing.T) {
	b := NewFromString("ab\ncd")

	if got := b.PointAt(-3); got != (Point{}) {
		t.Errorf("negative offset should clamp to start, got %s", got)
	}
	if got := b.PointAt(999); got != b.End() {
		t.Errorf("oversized offset should clamp to end, got %s", got)
	}
}

func TestDocLen(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"ab\ncd", 5},
		{"a\n", 2},
	}
	for _, tt := range tests {
		b := NewFromString(tt.text)
		if got := b.DocLen(); got != tt.want {
			t.Errorf("DocLen(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestSpanOffsets(t *testing.T) {
	b := NewFromString("ab\ncd")

	start, end := b.SpanOffsets(NewSpan(Point{0, 1}, Point{1, 1}))
	if start != 1 || end != 4 {
		t.Errorf("expected [1:4), got [%d:%d)", start, end)
	}
}
