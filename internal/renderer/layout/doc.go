// Package layout converts logical buffer lines into word-wrapped,
// tab-expanded visual lines for a given pixel width, and maps between
// pixel x positions and rune columns.
//
// Width measurement is injected as a Measurer so the core never touches
// font rasterization; Monospace builds a measurer from a fixed cell
// width. Tab expansion advances to the next multiple of the configured
// tab size and is used identically for wrapping, measurement, and
// x<->column mapping so caret placement and rendering agree.
//
// Table rows are never word-wrapped: a row becomes one visual line per
// vertical slot, driven by explicit <br> splits inside its cells.
//
// Visual lines are ephemeral. They are recomputed wholesale from the
// buffer on every layout pass and are invalid after the next mutation.
package layout
