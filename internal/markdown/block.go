package markdown

import (
	"strings"
	"unicode"

	"github.com/dshills/markboard/internal/engine/buffer"
)

// BlockKind discriminates the block-level variants.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockRule
	BlockTable
)

// String returns the string representation of the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockRule:
		return "rule"
	case BlockTable:
		return "table"
	default:
		return "unknown"
	}
}

// Block is one block-level region of the document. StartLine/EndLine are
// inclusive; StartOffset/EndOffset are the half-open flat-offset span.
// Table and CellSpans are set only for BlockTable; Level only for
// BlockHeading. Blocks carry no identity across edits: each parse
// produces fresh values.
type Block struct {
	Kind        BlockKind
	Level       int
	StartLine   int
	EndLine     int
	StartOffset int
	EndOffset   int

	Table     *Table
	CellSpans [][]buffer.Span // per table row (header first), per cell
}

// Parse segments the whole document into blocks. Tables take precedence
// over heading and rule classification at the same line; blank lines
// produce no block; a paragraph greedily consumes lines until a blank
// line, heading, rule, table start, or end of document.
func Parse(buf *buffer.Buffer) []Block {
	lines := buf.Lines()
	tableAt := make(map[int]*Table)
	for _, t := range FindTables(lines) {
		tableAt[t.StartLine] = t
	}

	var blocks []Block
	for i := 0; i < len(lines); {
		if t, ok := tableAt[i]; ok {
			blocks = append(blocks, tableBlock(buf, t))
			i = t.EndLine + 1
			continue
		}
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}
		if level, ok := IsHeading(line); ok {
			blocks = append(blocks, newBlock(buf, BlockHeading, i, i, level))
			i++
			continue
		}
		if IsRule(line) {
			blocks = append(blocks, newBlock(buf, BlockRule, i, i, 0))
			i++
			continue
		}

		end := i
		for end+1 < len(lines) {
			next := lines[end+1]
			if strings.TrimSpace(next) == "" {
				break
			}
			if _, ok := IsHeading(next); ok {
				break
			}
			if IsRule(next) {
				break
			}
			if _, ok := tableAt[end+1]; ok {
				break
			}
			end++
		}
		blocks = append(blocks, newBlock(buf, BlockParagraph, i, end, 0))
		i = end + 1
	}
	return blocks
}

// IsHeading reports whether line is an ATX heading: 1-6 leading hashes
// followed by a space or end of line. Seven or more hashes are not a
// heading.
func IsHeading(line string) (level int, ok bool) {
	for _, r := range line {
		if r == '#' {
			level++
			continue
		}
		if r != ' ' {
			return 0, false
		}
		break
	}
	if level < 1 || level > 6 {
		return 0, false
	}
	return level, true
}

// IsRule reports whether line is a horizontal rule: three or more
// identical characters from -, *, _ with internal whitespace ignored.
func IsRule(line string) bool {
	var marker rune
	count := 0
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		if r != '-' && r != '*' && r != '_' {
			return false
		}
		if marker == 0 {
			marker = r
		} else if r != marker {
			return false
		}
		count++
	}
	return count >= 3
}

// newBlock builds a block with its offset span anchored to the buffer.
func newBlock(buf *buffer.Buffer, kind BlockKind, startLine, endLine, level int) Block {
	return Block{
		Kind:        kind,
		Level:       level,
		StartLine:   startLine,
		EndLine:     endLine,
		StartOffset: buf.Offset(buffer.Point{Line: startLine}),
		EndOffset:   buf.Offset(buffer.Point{Line: endLine, Col: buf.LineLen(endLine)}),
	}
}

// tableBlock builds a table block, re-scanning each row line's pipe
// positions for per-cell spans. The separator line contributes no cells
// but stays inside the block span.
func tableBlock(buf *buffer.Buffer, t *Table) Block {
	b := newBlock(buf, BlockTable, t.StartLine, t.EndLine, 0)
	b.Table = t
	b.CellSpans = make([][]buffer.Span, len(t.Rows))
	for k := range t.Rows {
		line := t.StartLine + k
		if k > 0 {
			line++ // skip the separator row
		}
		b.CellSpans[k] = rowCellSpans(buf.Line(line), line)
	}
	return b
}

// rowCellSpans locates each cell of a row line as a column span with
// surrounding whitespace and pipes trimmed. Splitting mirrors
// parseRowCells so span arity matches the table model.
func rowCellSpans(line string, lineIdx int) []buffer.Span {
	r := []rune(line)
	start, end := 0, len(r)
	for start < end && unicode.IsSpace(r[start]) {
		start++
	}
	for end > start && unicode.IsSpace(r[end-1]) {
		end--
	}
	if start < end && r[start] == '|' {
		start++
	}
	if end > start && r[end-1] == '|' {
		end--
	}

	var spans []buffer.Span
	segStart := start
	for i := start; i <= end; i++ {
		if i != end && r[i] != '|' {
			continue
		}
		cs, ce := segStart, i
		for cs < ce && unicode.IsSpace(r[cs]) {
			cs++
		}
		for ce > cs && unicode.IsSpace(r[ce-1]) {
			ce--
		}
		spans = append(spans, buffer.Span{
			Start: buffer.Point{Line: lineIdx, Col: cs},
			End:   buffer.Point{Line: lineIdx, Col: ce},
		})
		segStart = i + 1
	}
	return spans
}
