// Package engine ties the editing core together: the line buffer, the
// undo history, the markdown parsers, and the layout engine, behind the
// edit intents the host UI dispatches (type, paste, backspace, indent,
// undo). The host translates raw input events into these calls and
// consumes the derived views (blocks, inline runs, visual lines) for
// drawing and hit-testing.
//
// Basic usage:
//
//	ed := engine.New(
//	    engine.WithText("# Notes\n\nHello *world*"),
//	    engine.WithMeasurer(layout.Monospace(8)),
//	)
//
//	ed.Buffer().SetCaret(2, 11)
//	ed.Type("!")
//	ed.Undo()
//
//	blocks := ed.Blocks()
//	visual := ed.Layout(320)
//
// Every operation runs to completion before returning; the engine is
// single-threaded by design and a concurrent host must serialize calls.
// Derived views are valid only until the next mutation.
package engine
