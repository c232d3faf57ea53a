package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTableAt(t *testing.T) {
	lines := strings.Split("| a | b |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |", "\n")

	tbl, ok := ParseTableAt(lines, 0)
	if !ok {
		t.Fatal("expected a table")
	}
	if tbl.StartLine != 0 || tbl.EndLine != 3 {
		t.Errorf("expected lines 0-3, got %d-%d", tbl.StartLine, tbl.EndLine)
	}
	if tbl.ColumnCount() != 2 {
		t.Errorf("expected 2 columns, got %d", tbl.ColumnCount())
	}
	want := [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}
	if diff := cmp.Diff(want, tbl.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTableStopsAtArityMismatch(t *testing.T) {
	lines := strings.Split("| a | b |\n|---|---|\n| 1 | 2 |\n| 3 |", "\n")

	tbl, ok := ParseTableAt(lines, 0)
	if !ok {
		t.Fatal("expected a table")
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("expected header plus 1 body row, got %d rows", len(tbl.Rows))
	}
	if tbl.EndLine != 2 {
		t.Errorf("expected table to end at line 2, got %d", tbl.EndLine)
	}
}

func TestParseTableRequiresAlignmentRow(t *testing.T) {
	cases := [][]string{
		{"| a | b |"},                      // no second line
		{"| a | b |", "| 1 | 2 |"},        // body where alignment expected
		{"| a | b |", "|---|"},            // arity mismatch
		{"| a | b |", "|--x|---|"},        // malformed alignment cell
		{"plain text", "|---|---|"},       // header is not a row
	}
	for _, lines := range cases {
		if _, ok := ParseTableAt(lines, 0); ok {
			t.Errorf("%q: should not parse as table", lines)
		}
	}
}

func TestParseAlignments(t *testing.T) {
	aligns, ok := parseAlignments("| :-- | --- | :-: | --: |")
	if !ok {
		t.Fatal("expected alignment row to parse")
	}
	want := []Alignment{AlignLeft, AlignDefault, AlignCenter, AlignRight}
	if diff := cmp.Diff(want, aligns); diff != "" {
		t.Errorf("alignments mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRowCells(t *testing.T) {
	tests := []struct {
		line string
		want []string
		ok   bool
	}{
		{"| a | b |", []string{"a", "b"}, true},
		{"a | b", []string{"a", "b"}, true},
		{"  | x | y | z |  ", []string{"x", "y", "z"}, true},
		{"| a | | c |", []string{"a", "", "c"}, true},
		{"no pipes here", nil, false},
		{"| single |", nil, false},
	}
	for _, tt := range tests {
		got, ok := parseRowCells(tt.line)
		if ok != tt.ok {
			t.Errorf("%q: ok = %v, want %v", tt.line, ok, tt.ok)
			continue
		}
		if tt.ok {
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%q: cells mismatch (-want +got):\n%s", tt.line, diff)
			}
		}
	}
}

func TestCellLines(t *testing.T) {
	tests := []struct {
		cell string
		want []string
	}{
		{"plain", []string{"plain"}},
		{"a<br>b", []string{"a", "b"}},
		{"a<br/>b<br />c", []string{"a", "b", "c"}},
		{"a<BR>b", []string{"a", "b"}},
		{"<br>x", []string{"", "x"}},
	}
	for _, tt := range tests {
		got := CellLines(tt.cell)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q: lines mismatch (-want +got):\n%s", tt.cell, diff)
		}
	}
}

func TestRowSlots(t *testing.T) {
	lines := strings.Split("| a | b |\n|---|---|\n| x<br>y<br>z | w |", "\n")
	tbl, ok := ParseTableAt(lines, 0)
	if !ok {
		t.Fatal("expected a table")
	}

	if got := tbl.RowSlots(0); got != 1 {
		t.Errorf("header slots = %d, want 1", got)
	}
	if got := tbl.RowSlots(1); got != 3 {
		t.Errorf("body slots = %d, want 3", got)
	}
	if got := tbl.RowSlots(9); got != 1 {
		t.Errorf("out-of-range slots = %d, want 1", got)
	}
}

func TestFindTablesSkipsInteriors(t *testing.T) {
	doc := "text\n| a | b |\n|---|---|\n| 1 | 2 |\nmore\n| c | d |\n|:--|--:|\n"
	tables := FindTables(strings.Split(doc, "\n"))

	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if tables[0].StartLine != 1 || tables[0].EndLine != 3 {
		t.Errorf("first table lines %d-%d", tables[0].StartLine, tables[0].EndLine)
	}
	if tables[1].StartLine != 5 || tables[1].EndLine != 6 {
		t.Errorf("second table lines %d-%d", tables[1].StartLine, tables[1].EndLine)
	}
}

func TestBuildRowIndex(t *testing.T) {
	lines := strings.Split("| a | b |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |", "\n")
	index := BuildRowIndex(FindTables(lines))

	if info := index[0]; info.Row != 0 || info.Separator {
		t.Errorf("line 0: %+v", info)
	}
	if info := index[1]; !info.Separator || info.Row != -1 {
		t.Errorf("line 1: %+v", info)
	}
	if info := index[2]; info.Row != 1 {
		t.Errorf("line 2: %+v", info)
	}
	if info := index[3]; info.Row != 2 {
		t.Errorf("line 3: %+v", info)
	}
	if _, ok := index[4]; ok {
		t.Error("line 4 should not be in the index")
	}
}
