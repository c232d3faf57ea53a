package buffer

import "fmt"

// Point represents a caret position in the document.
// Line is the 0-indexed logical line; Col is the 0-indexed rune column
// within that line, valid in [0, line length].
type Point struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other
// in document order.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other in document order.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other in document order.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.Line == 0 && p.Col == 0
}
