package buffer

// UTF-16 interop. Hosts that address text in UTF-16 code units (the
// whiteboard shell does) convert through these helpers; internally the
// buffer works in runes.

// PointToUTF16 converts a rune-column point to a UTF-16 code-unit column
// point on the same line.
func (b *Buffer) PointToUTF16(p Point) Point {
	p = b.ClampPoint(p)
	col := 0
	for i, r := range []rune(b.lines[p.Line]) {
		if i >= p.Col {
			break
		}
		if r >= 0x10000 {
			col += 2 // surrogate pair
		} else {
			col++
		}
	}
	return Point{Line: p.Line, Col: col}
}

// PointFromUTF16 converts a UTF-16 code-unit column point to a rune
// column point on the same line. Columns landing inside a surrogate pair
// round down to the pair's start.
func (b *Buffer) PointFromUTF16(p Point) Point {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	col := 0
	units := 0
	for _, r := range b.lines[p.Line] {
		w := 1
		if r >= 0x10000 {
			w = 2
		}
		if units+w > p.Col {
			break
		}
		units += w
		col++
	}
	return Point{Line: p.Line, Col: col}
}
