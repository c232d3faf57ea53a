package buffer

import "fmt"

// Span addresses a contiguous range of text by its endpoint positions.
// Start is inclusive and End is exclusive in document order. A span may
// cross any number of line boundaries; each crossed boundary counts as one
// newline character.
type Span struct {
	Start Point
	End   Point
}

// NewSpan creates a span between two points.
func NewSpan(start, end Point) Span {
	return Span{Start: start, End: end}
}

// PointSpan creates an empty span at the given point.
func PointSpan(p Point) Span {
	return Span{Start: p, End: p}
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%s:%s)", s.Start, s.End)
}

// IsEmpty returns true if the span has zero extent.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// IsForward returns true if Start <= End in document order.
func (s Span) IsForward() bool {
	return s.Start.Compare(s.End) <= 0
}

// IsSingleLine returns true if the span stays on one line.
func (s Span) IsSingleLine() bool {
	return s.Start.Line == s.End.Line
}

// Normalize returns a span with Start <= End in document order.
func (s Span) Normalize() Span {
	if s.IsForward() {
		return s
	}
	return Span{Start: s.End, End: s.Start}
}

// Contains returns true if the given point is within [Start, End).
func (s Span) Contains(p Point) bool {
	n := s.Normalize()
	return p.Compare(n.Start) >= 0 && p.Compare(n.End) < 0
}
