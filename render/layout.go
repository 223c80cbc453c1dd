package render

import (
	"os"
	"strconv"

	"golang.org/x/term"

	"weather-term/window"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	minBarWidth = 4
	maxBarWidth = 24

	// rowFixedWidth is the width of a day table row without its two bars
	rowFixedWidth = 2 + 6 + 6 + 1 + 5 + 6 + 5 + 1 + 11 + LabelWidth

	// reservedRows covers the header and the shell prompt
	reservedRows = 2
)

// SizeFunc reports the terminal size
type SizeFunc func() (width, height int, err error)

// StdoutSize reads the size of the terminal attached to stdout
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// DetectSize asks size first, then the COLUMNS and LINES variables, then
// falls back to 80x24
func DetectSize(size SizeFunc, getenv func(string) string) (int, int) {
	if size != nil {
		if w, h, err := size(); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	w, errW := strconv.Atoi(getenv("COLUMNS"))
	h, errH := strconv.Atoi(getenv("LINES"))
	if errW == nil && errH == nil && w > 0 && h > 0 {
		return w, h
	}
	return DefaultWidth, DefaultHeight
}

// Layout holds the dimensions derived once per run
type Layout struct {
	Width    int
	Height   int
	BarWidth int
	Rows     int
}

// NewLayout derives bar width and available table rows from a terminal size
func NewLayout(width, height int) Layout {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	bar := (width - rowFixedWidth) / 2
	if bar < minBarWidth {
		bar = minBarWidth
	}
	if bar > maxBarWidth {
		bar = maxBarWidth
	}

	rows := height - reservedRows
	if rows < 1 {
		rows = 1
	}
	return Layout{Width: width, Height: height, BarWidth: bar, Rows: rows}
}

// Stride picks the downsampling step for a day table spanning the given
// number of hours before and after now
func (l Layout) Stride(hoursBefore, hoursAfter int) int {
	return window.StrideFor((hoursBefore+hoursAfter)*window.SamplesPerHour, l.Rows)
}
