package markdown

import (
	"regexp"
	"strings"
)

// Alignment is the per-column text alignment encoded by the table's
// alignment row.
type Alignment uint8

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "default"
	}
}

var (
	// alignCellPattern matches one alignment-row cell: dashes with
	// optional colons on either side.
	alignCellPattern = regexp.MustCompile(`^:?-+:?$`)

	// lineBreakPattern matches the explicit in-cell line-break marker and
	// its self-closing variants, case-insensitive.
	lineBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)
)

// Table is a parsed GitHub-style pipe table. Rows[0] is the header, the
// rest are body rows; every row has exactly ColumnCount cells. StartLine
// and EndLine are inclusive document line indices; the alignment row is
// inside the span but carries no cells.
type Table struct {
	StartLine int
	EndLine   int
	Align     []Alignment
	Rows      [][]string
}

// ColumnCount returns the table's fixed arity.
func (t *Table) ColumnCount() int {
	return len(t.Align)
}

// RowSlots returns how many vertical slots row occupies: the largest
// line-break split among its cells, at least 1.
func (t *Table) RowSlots(row int) int {
	if row < 0 || row >= len(t.Rows) {
		return 1
	}
	slots := 1
	for _, cell := range t.Rows[row] {
		if n := len(CellLines(cell)); n > slots {
			slots = n
		}
	}
	return slots
}

// CellLines splits cell text on the explicit line-break marker. A cell
// without markers yields itself as a single line.
func CellLines(cell string) []string {
	return lineBreakPattern.Split(cell, -1)
}

// parseRowCells parses one line as a table row: it must contain a pipe,
// loses one optional leading and trailing pipe, and must split into at
// least two cells. Cell text is whitespace-trimmed.
func parseRowCells(line string) ([]string, bool) {
	t := strings.TrimSpace(line)
	if !strings.Contains(t, "|") {
		return nil, false
	}
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")

	parts := strings.Split(t, "|")
	if len(parts) < 2 {
		return nil, false
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells, true
}

// parseAlignments parses one line as the alignment row. Every non-empty
// cell must be dashes with optional colons; colon placement selects the
// alignment.
func parseAlignments(line string) ([]Alignment, bool) {
	cells, ok := parseRowCells(line)
	if !ok {
		return nil, false
	}
	aligns := make([]Alignment, len(cells))
	for i, cell := range cells {
		if cell == "" {
			aligns[i] = AlignDefault
			continue
		}
		if !alignCellPattern.MatchString(cell) {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case left:
			aligns[i] = AlignLeft
		case right:
			aligns[i] = AlignRight
		default:
			aligns[i] = AlignDefault
		}
	}
	return aligns, true
}

// ParseTableAt parses a table starting at line start: a header row
// followed by a matching-arity alignment row, then body rows consumed
// greedily while they keep the exact header arity. The first row that
// fails ends the table.
func ParseTableAt(lines []string, start int) (*Table, bool) {
	if start+1 >= len(lines) {
		return nil, false
	}
	header, ok := parseRowCells(lines[start])
	if !ok {
		return nil, false
	}
	aligns, ok := parseAlignments(lines[start+1])
	if !ok || len(aligns) != len(header) {
		return nil, false
	}

	t := &Table{
		StartLine: start,
		EndLine:   start + 1,
		Align:     aligns,
		Rows:      [][]string{header},
	}
	for j := start + 2; j < len(lines); j++ {
		cells, ok := parseRowCells(lines[j])
		if !ok || len(cells) != len(header) {
			break
		}
		t.Rows = append(t.Rows, cells)
		t.EndLine = j
	}
	return t, true
}

// FindTables scans the whole document for tables, top to bottom. Table
// interiors are never rescanned for further table starts.
func FindTables(lines []string) []*Table {
	var tables []*Table
	for i := 0; i < len(lines); {
		if t, ok := ParseTableAt(lines, i); ok {
			tables = append(tables, t)
			i = t.EndLine + 1
			continue
		}
		i++
	}
	return tables
}

// RowInfo describes how one document line participates in a table.
type RowInfo struct {
	Table     *Table
	Row       int // index into Table.Rows; -1 for the separator line
	Separator bool
}

// BuildRowIndex maps each document line covered by a table to its row
// info, for table-aware layout.
func BuildRowIndex(tables []*Table) map[int]RowInfo {
	index := make(map[int]RowInfo)
	for _, t := range tables {
		index[t.StartLine] = RowInfo{Table: t, Row: 0}
		index[t.StartLine+1] = RowInfo{Table: t, Row: -1, Separator: true}
		for k := 1; k < len(t.Rows); k++ {
			index[t.StartLine+1+k] = RowInfo{Table: t, Row: k}
		}
	}
	return index
}
