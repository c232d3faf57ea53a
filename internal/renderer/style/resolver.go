// Package style resolves block context and inline style flags into
// abstract style descriptors. The descriptor is deliberately free of
// drawing primitives: the host UI maps it to concrete fonts and colors.
package style

import "github.com/dshills/markboard/internal/markdown"

// Descriptor is the abstract rendering style for a run of text.
type Descriptor struct {
	Bold      bool
	Italic    bool
	Mono      bool
	Strike    bool
	Underline bool

	// Scale is the font scale relative to body text; headings render
	// larger.
	Scale float64
}

// headingScales maps heading level 1..6 to a font scale.
var headingScales = [...]float64{1.6, 1.45, 1.3, 1.2, 1.1, 1.0}

// Resolve combines a block context with inline style flags into one
// descriptor. It is a pure function: equal inputs always produce equal
// descriptors.
func Resolve(kind markdown.BlockKind, level int, s markdown.Style) Descriptor {
	d := Descriptor{Scale: 1.0}

	if kind == markdown.BlockHeading {
		d.Bold = true
		if level >= 1 && level <= len(headingScales) {
			d.Scale = headingScales[level-1]
		}
	}

	if s.Has(markdown.StyleStrong) {
		d.Bold = true
	}
	if s.Has(markdown.StyleEmph) {
		d.Italic = true
	}
	if s.Has(markdown.StyleCode) {
		d.Mono = true
	}
	if s.Has(markdown.StyleStrike) {
		d.Strike = true
	}
	if s.Has(markdown.StyleLink) {
		d.Underline = true
	}
	return d
}
