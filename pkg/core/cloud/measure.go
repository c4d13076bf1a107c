package cloud

import "github.com/mattn/go-runewidth"

// Glyph box ratios used by [EstimateMeasurer].
const (
	CharWidthRatio  = 0.6
	LineHeightRatio = 1.2
)

// Measurer estimates the rendered extents of text at a font size.
type Measurer interface {
	Measure(text string, fontSize float64) (width, height float64)
}

// EstimateMeasurer approximates glyph boxes without font data: each terminal
// cell of the text is CharWidthRatio em wide and a line is LineHeightRatio em
// tall. Wide runes such as CJK and most emoji count as two cells.
type EstimateMeasurer struct{}

// Measure implements [Measurer].
func (EstimateMeasurer) Measure(text string, fontSize float64) (float64, float64) {
	cells := max(1, runewidth.StringWidth(text))
	return fontSize * float64(cells) * CharWidthRatio, fontSize * LineHeightRatio
}
