package markdown

import "strings"

// Style is a bitset of inline styles applied to a character.
type Style uint8

// Inline style flags.
const (
	StyleNone   Style = 0
	StyleEmph   Style = 1 << iota // *emphasis* or _emphasis_
	StyleStrong                   // **strong** or __strong__
	StyleCode                     // `code`
	StyleLink                     // [text](url)
	StyleStrike                   // ~~strikethrough~~
)

// Has returns true if the style set contains the given flag.
func (s Style) Has(flag Style) bool {
	return s&flag != 0
}

// With returns a new style set with the given flag added.
func (s Style) With(flag Style) Style {
	return s | flag
}

// Without returns a new style set with the given flag removed.
func (s Style) Without(flag Style) Style {
	return s &^ flag
}

// String returns a readable representation like "strong|code".
func (s Style) String() string {
	if s == StyleNone {
		return "none"
	}
	var parts []string
	if s.Has(StyleEmph) {
		parts = append(parts, "emph")
	}
	if s.Has(StyleStrong) {
		parts = append(parts, "strong")
	}
	if s.Has(StyleCode) {
		parts = append(parts, "code")
	}
	if s.Has(StyleLink) {
		parts = append(parts, "link")
	}
	if s.Has(StyleStrike) {
		parts = append(parts, "strike")
	}
	return strings.Join(parts, "|")
}

// Run is a maximal contiguous range of one line sharing identical style
// flags. Start and Len are rune columns. The runs produced for a line
// partition [0, length) exhaustively, left to right.
type Run struct {
	Start int
	Len   int
	Style Style
}
