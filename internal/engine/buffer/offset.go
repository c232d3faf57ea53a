package buffer

// Flat document offsets. Each line contributes its rune length plus one
// for the implicit separator; the conversions below are exact inverses
// for every valid point, including the document end.

// Offset converts a point to a flat document offset. The point is
// clamped first.
func (b *Buffer) Offset(p Point) int {
	p = b.ClampPoint(p)
	off := 0
	for i := 0; i < p.Line; i++ {
		off += runeLen(b.lines[i]) + 1
	}
	return off + p.Col
}

// PointAt converts a flat document offset back to a point. Out-of-range
// offsets clamp to the document start or end.
func (b *Buffer) PointAt(offset int) Point {
	if offset < 0 {
		return Point{}
	}
	for i, line := range b.lines {
		n := runeLen(line)
		if offset <= n {
			return Point{Line: i, Col: offset}
		}
		offset -= n + 1
	}
	return b.End()
}

// DocLen returns the flat offset of the document end.
func (b *Buffer) DocLen() int {
	return b.Offset(b.End())
}

// SpanOffsets returns the half-open offset range covered by the span.
func (b *Buffer) SpanOffsets(s Span) (start, end int) {
	s = b.ClampSpan(s)
	return b.Offset(s.Start), b.Offset(s.End)
}
