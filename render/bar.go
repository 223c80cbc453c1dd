package render

import (
	"math"
	"strings"
)

const fullBlock = "█"

// partialBlocks is indexed by eighths of a cell
var partialBlocks = []rune(" ▏▎▍▌▋▊▉")

// Bar draws value as a horizontal meter. The value is mapped into
// [barLo, width-1] cells, drawn as full blocks plus one partial block for the
// remaining eighths, and the result is always exactly width runes.
func Bar(value, lo, hi, barLo float64, width int) string {
	if width <= 0 {
		return ""
	}

	n := Lerp(value, lo, hi, barLo, float64(width-1))
	if math.IsNaN(n) || n < 0 {
		n = 0
	}
	if n > float64(width) {
		n = float64(width)
	}

	full := int(n)
	eighths := int((n - float64(full)) * 8)

	var b strings.Builder
	b.WriteString(strings.Repeat(fullBlock, full))
	cells := full
	if cells < width {
		b.WriteRune(partialBlocks[eighths])
		cells++
	}
	b.WriteString(strings.Repeat(" ", width-cells))
	return b.String()
}
