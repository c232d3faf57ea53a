// Package buffer provides the line-oriented text buffer that backs the
// markdown editing engine. It owns the ordered sequence of logical lines,
// the caret, and the selection anchor, and exposes span-addressed mutation
// primitives.
//
// The buffer package provides:
//
//   - Line-level storage: a document is always at least one line, and a
//     line never contains a newline
//   - A caret clamped to valid positions, with character, word, and line
//     motions
//   - Span-addressed read, delete, and replace operations
//   - Conversion between (line, column) points and flat document offsets
//   - Selection tracking via an anchor relative to the live caret
//
// Basic usage:
//
//	buf := buffer.NewFromString("# Title\n\nSome *text*.")
//
//	// Replace a span and learn where the new text landed
//	old, after := buf.ReplaceSpan(buffer.Span{
//	    Start: buffer.Point{Line: 2, Col: 5},
//	    End:   buffer.Point{Line: 2, Col: 11},
//	}, "prose")
//	_ = old
//	_ = after
//
// Columns are measured in runes. Out-of-range points and spans are clamped
// into the valid range rather than rejected; the buffer never panics or
// errors on stale coordinates.
//
// The buffer is not safe for concurrent use. The editing session owns it
// exclusively and a multi-threaded host must serialize all calls.
package buffer
