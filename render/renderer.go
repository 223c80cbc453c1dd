package render

import (
	"math"
	"strconv"
	"time"

	"weather-term/models"
)

// Renderer turns a forecast document into terminal text. Everything it needs
// is fixed at construction so output depends only on the document.
type Renderer struct {
	painter *Painter
	style   Style
	layout  Layout
	now     time.Time
}

// NewRenderer creates a renderer for a single run
func NewRenderer(painter *Painter, style Style, layout Layout, now time.Time) *Renderer {
	if painter == nil {
		painter = &Painter{}
	}
	return &Renderer{
		painter: painter,
		style:   style,
		layout:  layout,
		now:     now,
	}
}

// units bundles the display units of a document
type units struct {
	temp       models.TempUnit
	tempSymbol string
	windLabel  string
	tempScale  Scale
	windScale  Scale
}

func unitsOf(doc *models.ForecastDocument) units {
	unit, ok := doc.TemperatureUnit()
	if !ok {
		unit = models.Fahrenheit
	}
	wind := doc.Minutely15Units.WindSpeed
	if wind == "" {
		wind = unit.WindLabel()
	}
	return units{
		temp:       unit,
		tempSymbol: unit.Symbol(),
		windLabel:  wind,
		tempScale:  TemperatureScale(unit),
		windScale:  WindScale(unit),
	}
}

// whole formats v rounded to an integer, never as "-0"
func whole(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	r := math.Round(v)
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// at returns v[i], or NaN when the series is short
func at(v []float64, i int) float64 {
	if i < 0 || i >= len(v) {
		return math.NaN()
	}
	return v[i]
}

func minMax(v []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range v {
		if math.IsNaN(x) {
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}
