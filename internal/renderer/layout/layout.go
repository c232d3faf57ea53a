package layout

import (
	"github.com/dshills/markboard/internal/engine/buffer"
	"github.com/dshills/markboard/internal/markdown"
)

// DefaultTabWidth is the tab size used when none is configured.
const DefaultTabWidth = 4

// VisualLine is one rendered row: either a sub-segment of a logical line
// after word wrap, or one vertical slot of a table row. StartCol and Len
// are rune columns into the underlying document line.
type VisualLine struct {
	Line     int  // document line index
	StartCol int  // first rune column of the segment
	Len      int  // rune length of the segment
	First    bool // first visual line of its document line

	TableRow bool // the line belongs to a parsed table
	Slot     int  // vertical slot within a multi-line table row
	Slots    int  // total slots of the row (1 for separator rows)
}

// EndCol returns the exclusive end column of the segment.
func (v VisualLine) EndCol() int {
	return v.StartCol + v.Len
}

// Engine computes visual lines and x<->column mappings.
type Engine struct {
	tabWidth   int
	wrapAtWord bool
	measure    Measurer
}

// Option configures an Engine.
type Option func(*Engine)

// WithTabWidth sets the tab size in columns.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width >= 1 {
			e.tabWidth = width
		}
	}
}

// WithWordWrap controls whether wrapping prefers whitespace boundaries.
func WithWordWrap(atWord bool) Option {
	return func(e *Engine) {
		e.wrapAtWord = atWord
	}
}

// NewEngine creates a layout engine around a width measurer.
func NewEngine(measure Measurer, opts ...Option) *Engine {
	e := &Engine{
		tabWidth:   DefaultTabWidth,
		wrapAtWord: true,
		measure:    measure,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TabWidth returns the configured tab size.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// Layout computes the visual lines for the whole document at the given
// available pixel width. Table rows are sized by their cell line-break
// splits instead of being wrapped.
func (e *Engine) Layout(buf *buffer.Buffer, width float64) []VisualLine {
	lines := buf.Lines()
	rows := markdown.BuildRowIndex(markdown.FindTables(lines))

	var out []VisualLine
	for i, line := range lines {
		if info, ok := rows[i]; ok {
			out = append(out, tableRowLines(i, line, info)...)
			continue
		}
		out = append(out, e.wrapLine(i, line, width)...)
	}
	return out
}

// tableRowLines emits one visual line per vertical slot of a table row,
// all referencing the same document line. Separator rows take one slot.
func tableRowLines(lineIdx int, line string, info markdown.RowInfo) []VisualLine {
	n := len([]rune(line))
	if info.Separator {
		return []VisualLine{{
			Line: lineIdx, Len: n, First: true,
			TableRow: true, Slots: 1,
		}}
	}
	slots := info.Table.RowSlots(info.Row)
	out := make([]VisualLine, slots)
	for k := 0; k < slots; k++ {
		out[k] = VisualLine{
			Line: lineIdx, Len: n, First: k == 0,
			TableRow: true, Slot: k, Slots: slots,
		}
	}
	return out
}

// wrapLine word-wraps one logical line. Each segment is the longest
// prefix that fits, preferring to break after the last whitespace inside
// the prefix; continuation segments never start with a space. A width
// that fits nothing still advances one character per segment.
func (e *Engine) wrapLine(lineIdx int, line string, width float64) []VisualLine {
	r := []rune(line)
	if len(r) == 0 {
		return []VisualLine{{Line: lineIdx, First: true}}
	}
	adv := e.advances(r)

	var out []VisualLine
	start := 0
	first := true
	for start < len(r) {
		if !first {
			for start < len(r) && r[start] == ' ' {
				start++
			}
			if start >= len(r) {
				break
			}
		}

		end := start
		w := 0.0
		for end < len(r) && w+adv[end] <= width {
			w += adv[end]
			end++
		}

		if end >= len(r) {
			out = append(out, VisualLine{Line: lineIdx, StartCol: start, Len: len(r) - start, First: first})
			break
		}
		if end == start {
			end = start + 1
		} else if e.wrapAtWord && r[end] != ' ' {
			for i := end - 1; i > start; i-- {
				if r[i] == ' ' {
					end = i + 1
					break
				}
			}
		}

		out = append(out, VisualLine{Line: lineIdx, StartCol: start, Len: end - start, First: first})
		start = end
		first = false
	}
	return out
}

// advances returns the tab-aware pixel advance of every rune in the
// line. A tab advances to the next multiple of the tab size, measured in
// space widths; all other runes measure themselves.
func (e *Engine) advances(r []rune) []float64 {
	space := e.measure(" ")
	adv := make([]float64, len(r))
	col := 0
	for i, c := range r {
		if c == '\t' {
			cells := e.tabWidth - col%e.tabWidth
			adv[i] = float64(cells) * space
			col += cells
			continue
		}
		adv[i] = e.measure(string(c))
		col++
	}
	return adv
}

// XForColumn returns the x position of col relative to the start of the
// segment beginning at startCol. Columns are clamped into the line.
func (e *Engine) XForColumn(line string, startCol, col int) float64 {
	r := []rune(line)
	adv := e.advances(r)
	startCol = clamp(startCol, 0, len(r))
	col = clamp(col, startCol, len(r))

	x := 0.0
	for i := startCol; i < col; i++ {
		x += adv[i]
	}
	return x
}

// ColumnForX returns the column within [startCol, endCol] closest to the
// given x position relative to the segment start, rounding at the visual
// midpoint of each character.
func (e *Engine) ColumnForX(line string, startCol, endCol int, x float64) int {
	r := []rune(line)
	adv := e.advances(r)
	startCol = clamp(startCol, 0, len(r))
	endCol = clamp(endCol, startCol, len(r))

	cum := 0.0
	for i := startCol; i < endCol; i++ {
		if x < cum+adv[i]/2 {
			return i
		}
		cum += adv[i]
	}
	return endCol
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
