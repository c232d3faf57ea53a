package engine

import "github.com/dshills/markboard/internal/renderer/layout"

// Default configuration values.
const (
	DefaultTabWidth  = 4
	DefaultCellWidth = 8.0
)

// Option configures an Editor.
type Option func(*Editor)

// WithText sets the initial document content.
func WithText(text string) Option {
	return func(e *Editor) {
		e.initText = text
	}
}

// WithTabWidth sets the tab size in columns.
func WithTabWidth(width int) Option {
	return func(e *Editor) {
		if width >= 1 {
			e.tabWidth = width
		}
	}
}

// WithWordWrap controls whether layout prefers whitespace wrap points.
func WithWordWrap(atWord bool) Option {
	return func(e *Editor) {
		e.wrapAtWord = atWord
	}
}

// WithMaxUndoEntries bounds the undo stack depth.
func WithMaxUndoEntries(n int) Option {
	return func(e *Editor) {
		e.maxUndo = n
	}
}

// WithMeasurer injects the text width measurement capability.
func WithMeasurer(m layout.Measurer) Option {
	return func(e *Editor) {
		e.measure = m
	}
}
