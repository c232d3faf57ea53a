package layout

import "github.com/mattn/go-runewidth"

// Measurer reports the pixel width of a piece of text. It must be
// deterministic and additive over concatenation for the layout results
// to be consistent.
type Measurer func(text string) float64

// Monospace returns a Measurer for a monospaced font with the given cell
// width. Wide (CJK) runes count as two cells.
func Monospace(cellWidth float64) Measurer {
	return func(text string) float64 {
		return float64(runewidth.StringWidth(text)) * cellWidth
	}
}
