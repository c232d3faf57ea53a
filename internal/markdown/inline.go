package markdown

// delim is an open emphasis or strong marker waiting for its close.
type delim struct {
	pos    int
	marker rune
}

// ScanLine scans one line left to right and returns its inline style
// runs. The scan is a single pass with explicit delimiter stacks for
// emphasis, strong, and strikethrough, plus lookahead for code spans and
// links. It is a greedy, non-recursive approximation of Markdown
// emphasis: ambiguous markup degrades to no style rather than erroring.
//
// An empty line produces one zero-length run with StyleNone.
func ScanLine(line string) []Run {
	r := []rune(line)
	n := len(r)
	if n == 0 {
		return []Run{{Start: 0, Len: 0, Style: StyleNone}}
	}

	mask := make([]Style, n)
	var emph, strong []delim
	var strike []int

	i := 0
	for i < n {
		switch c := r[i]; {
		case c == '`':
			// Code span: closes at the next backtick. Zero-length spans
			// are rejected and the backtick stays plain.
			j := indexRune(r, '`', i+1)
			if j > i+1 {
				applyStyle(mask, i, j+1, StyleCode)
				i = j + 1
				continue
			}
			i++

		case c == '[':
			if end, ok := linkEnd(r, i); ok {
				applyStyle(mask, i, end, StyleLink)
				i = end
				continue
			}
			i++

		case c == '~' && i+1 < n && r[i+1] == '~':
			if len(strike) > 0 {
				open := strike[len(strike)-1]
				strike = strike[:len(strike)-1]
				applyStyle(mask, open, i+2, StyleStrike)
			} else {
				strike = append(strike, i)
			}
			i += 2

		case c == '*' || c == '_':
			if i+1 < n && r[i+1] == c {
				strong = matchDelim(strong, mask, i, 2, c, StyleStrong)
				i += 2
			} else {
				emph = matchDelim(emph, mask, i, 1, c, StyleEmph)
				i++
			}

		default:
			i++
		}
	}

	return coalesce(mask)
}

// matchDelim closes the top of the stack when its marker character
// matches; a mismatched top pushes a new open instead of closing.
// Unmatched opens remain stylistically inert.
func matchDelim(stack []delim, mask []Style, pos, width int, marker rune, style Style) []delim {
	if len(stack) > 0 && stack[len(stack)-1].marker == marker {
		open := stack[len(stack)-1]
		applyStyle(mask, open.pos, pos+width, style)
		return stack[:len(stack)-1]
	}
	return append(stack, delim{pos: pos, marker: marker})
}

// linkEnd reports the exclusive end column of a [text](url) link opening
// at start, requiring "](", and a later ")".
func linkEnd(r []rune, start int) (int, bool) {
	bracket := indexRune(r, ']', start+1)
	if bracket < 0 || bracket+1 >= len(r) || r[bracket+1] != '(' {
		return 0, false
	}
	paren := indexRune(r, ')', bracket+2)
	if paren < 0 {
		return 0, false
	}
	return paren + 1, true
}

// indexRune returns the index of the first occurrence of c at or after
// from, or -1.
func indexRune(r []rune, c rune, from int) int {
	for i := from; i < len(r); i++ {
		if r[i] == c {
			return i
		}
	}
	return -1
}

// applyStyle ORs a style flag over [start, end).
func applyStyle(mask []Style, start, end int, style Style) {
	for i := start; i < end && i < len(mask); i++ {
		mask[i] = mask[i].With(style)
	}
}

// coalesce folds a per-character mask into maximal constant-style runs.
func coalesce(mask []Style) []Run {
	runs := []Run{{Start: 0, Len: 1, Style: mask[0]}}
	for i := 1; i < len(mask); i++ {
		if mask[i] == runs[len(runs)-1].Style {
			runs[len(runs)-1].Len++
			continue
		}
		runs = append(runs, Run{Start: i, Len: 1, Style: mask[i]})
	}
	return runs
}
