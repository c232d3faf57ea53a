// Package markdown classifies and decorates the raw buffer text: it
// segments the document into block-level regions (paragraphs, headings,
// horizontal rules, pipe tables) and scans single lines into non-overlapping
// inline style runs (emphasis, strong, code, link, strikethrough).
//
// Everything in this package is a pure function of the current buffer
// content. Blocks, tables, and runs are recomputed wholesale on every
// call and must be considered stale the instant the buffer mutates.
//
// The parsers are deliberately forgiving: malformed constructs are never
// errors. Unbalanced emphasis degrades to plain text, a ragged table row
// ends the table, and a broken link falls through to ordinary characters.
// Full CommonMark compliance and nested block structures are non-goals.
package markdown
