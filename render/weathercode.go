package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// LabelWidth is the display width, in terminal cells, of every weather label
const LabelWidth = 10

// Style selects the glyph set used for weather labels
type Style string

// Label styles
const (
	StyleOriginal Style = "original"
	StyleClassic  Style = "classic"
	StyleNF       Style = "nf"
	StyleTech     Style = "tech"
)

// ParseStyle maps a style name to a Style
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case StyleOriginal:
		return StyleOriginal, nil
	case StyleClassic, "emoji":
		return StyleClassic, nil
	case StyleNF, "nerdfont", "nerd-font":
		return StyleNF, nil
	case StyleTech, "metar":
		return StyleTech, nil
	}
	return "", fmt.Errorf("unknown emoji style %q", s)
}

// moonMarker is replaced by the style's moon glyph
const moonMarker = "%m"

type label struct {
	day, night string
}

// labelTable maps WMO codes to labels. An empty night label reuses day.
type labelTable map[int]label

var originalLabels = labelTable{
	0:  {"Clear", "Clear"},
	1:  {"Mainly Clr", "Mainly Clr"},
	2:  {"Pt Cloudy", ""},
	3:  {"Overcast", ""},
	44: {"Mist", ""},
	45: {"Fog", ""},
	48: {"Rime Fog", ""},
	51: {"Lt Drizzle", ""},
	53: {"Drizzle", ""},
	55: {"Hv Drizzle", ""},
	56: {"Fz Drizzle", ""},
	57: {"Fz Drizzle", ""},
	61: {"Lt Rain", ""},
	63: {"Rain", ""},
	65: {"Heavy Rain", ""},
	66: {"Fz Rain", ""},
	67: {"Hv Fz Rain", ""},
	71: {"Lt Snow", ""},
	73: {"Snow", ""},
	75: {"Heavy Snow", ""},
	77: {"Snow Grain", ""},
	80: {"Lt Shower", ""},
	81: {"Showers", ""},
	82: {"Hv Shower", ""},
	85: {"Snow Showr", ""},
	86: {"Hv Snow Sh", ""},
	95: {"Thunder", ""},
	96: {"Thdr Hail", ""},
	99: {"Thdr Hail+", ""},
}

var classicLabels = labelTable{
	0:  {"🌞 Clear", "%m Clear"},
	1:  {"🌞 Mostly", "%m Mostly"},
	2:  {"⛅ Partly", ""},
	3:  {"☁️ Cloudy", ""},
	44: {"🌁 Mist", ""},
	45: {"🌁 Fog", ""},
	48: {"🌁 Rime", ""},
	51: {"🌂 Light", ""},
	53: {"🌂 Drizzle", ""},
	55: {"🌂 Heavy", ""},
	56: {"🧊 Drizzle", ""},
	57: {"🧊 Drizzle", ""},
	61: {"☔ Light", ""},
	63: {"☔ Rain", ""},
	65: {"☔ Heavy", ""},
	66: {"🧊 Rain", ""},
	67: {"🧊 Heavy", ""},
	71: {"⛄ Light", ""},
	73: {"⛄ Snow", ""},
	75: {"⛄ Heavy", ""},
	77: {"⛄ Grains", ""},
	80: {"🌦️ Light", ""},
	81: {"🌦️ Showers", ""},
	82: {"🌦️ Heavy", ""},
	85: {"⛄ Showers", ""},
	86: {"⛄ Heavy", ""},
	95: {"⚡ Thunder", ""},
	96: {"⚡ Hail", ""},
	99: {"⚡ Hail", ""},
}

var nerdFontLabels = labelTable{
	0:  {"\ue30d Clear", "%m Clear"},
	1:  {"\ue30d Mostly", "%m Mostly"},
	2:  {"\ue302 Partly", "\ue37e Partly"},
	3:  {"\ue312 Cloudy", ""},
	44: {"\ue3ae Mist", ""},
	45: {"\ue313 Fog", ""},
	48: {"\ue313 Rime", ""},
	51: {"\ue31c Light", ""},
	53: {"\ue31c Drizzle", ""},
	55: {"\ue31c Heavy", ""},
	56: {"\ue3ad Drizzle", ""},
	57: {"\ue3ad Drizzle", ""},
	61: {"\ue318 Light", ""},
	63: {"\ue318 Rain", ""},
	65: {"\ue318 Heavy", ""},
	66: {"\ue3ad Rain", ""},
	67: {"\ue3ad Heavy", ""},
	71: {"\ue31a Light", ""},
	73: {"\ue31a Snow", ""},
	75: {"\ue31a Heavy", ""},
	77: {"\ue36f Grains", ""},
	80: {"\ue309 Light", ""},
	81: {"\ue319 Showers", ""},
	82: {"\ue319 Heavy", ""},
	85: {"\ue316 Showers", ""},
	86: {"\ue316 Heavy", ""},
	95: {"\ue31d Thunder", ""},
	96: {"\ue314 Hail", ""},
	99: {"\ue314 Hail", ""},
}

var techLabels = labelTable{
	0:  {"SKC", "SKC %m"},
	1:  {"FEW", "FEW %m"},
	2:  {"SCT", ""},
	3:  {"OVC", ""},
	44: {"BR", ""},
	45: {"FG", ""},
	48: {"FZFG", ""},
	51: {"-DZ", ""},
	53: {"DZ", ""},
	55: {"+DZ", ""},
	56: {"-FZDZ", ""},
	57: {"FZDZ", ""},
	61: {"-RA", ""},
	63: {"RA", ""},
	65: {"+RA", ""},
	66: {"-FZRA", ""},
	67: {"+FZRA", ""},
	71: {"-SN", ""},
	73: {"SN", ""},
	75: {"+SN", ""},
	77: {"SG", ""},
	80: {"-SHRA", ""},
	81: {"SHRA", ""},
	82: {"+SHRA", ""},
	85: {"-SHSN", ""},
	86: {"+SHSN", ""},
	95: {"TS", ""},
	96: {"TSGR", ""},
	99: {"+TSGR", ""},
}

var labelTables = map[Style]labelTable{
	StyleOriginal: originalLabels,
	StyleClassic:  classicLabels,
	StyleNF:       nerdFontLabels,
	StyleTech:     techLabels,
}

var moonGlyphs = map[Style][moonPhases]string{
	StyleOriginal: {"", "", "", "", "", "", "", ""},
	StyleClassic:  {"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"},
	StyleNF:       {"\ue38d", "\ue390", "\ue394", "\ue397", "\ue39b", "\ue39e", "\ue3a2", "\ue3a5"},
	StyleTech:     {"NM", "WXC", "FQ", "WXG", "FM", "WNG", "LQ", "WNC"},
}

var (
	thunderColor = Color{255, 220, 40}
	unknownColor = gray
)

// codeColors is shared by every style so a code always has one color
var codeColors = map[int]Color{
	0:  {255, 200, 40},
	1:  {240, 210, 90},
	2:  {200, 200, 170},
	3:  {160, 160, 160},
	44: {170, 170, 190},
	45: {150, 150, 170},
	48: {170, 190, 210},
	51: {130, 180, 220},
	53: {110, 160, 220},
	55: {90, 140, 220},
	56: {150, 200, 230},
	57: {150, 200, 230},
	61: {90, 150, 230},
	63: {60, 120, 230},
	65: {30, 80, 220},
	66: {140, 190, 240},
	67: {120, 170, 240},
	71: {220, 230, 245},
	73: {230, 240, 250},
	75: {245, 250, 255},
	77: {210, 220, 235},
	80: {100, 160, 230},
	81: {70, 130, 230},
	82: {40, 90, 220},
	85: {220, 230, 245},
	86: {240, 245, 255},
	95: thunderColor,
	96: thunderColor,
	99: thunderColor,
}

var nightClearColor = Color{170, 180, 240}

// MoonGlyph returns the style's symbol for phase
func MoonGlyph(phase MoonPhase, style Style) string {
	glyphs, ok := moonGlyphs[style]
	if !ok || phase < 0 || int(phase) >= len(glyphs) {
		return ""
	}
	return glyphs[phase]
}

// DecodeWeatherCode returns the fixed-width label and color for a WMO code.
// Unknown codes fall into "N/A" decade buckets.
func DecodeWeatherCode(code int, isDay bool, moon MoonPhase, style Style) (string, Color) {
	table, ok := labelTables[style]
	if !ok {
		table = originalLabels
	}

	l, ok := table[code]
	if !ok {
		return FitLabel(fmt.Sprintf("N/A %d0s", code/10)), unknownColor
	}

	text := l.day
	color := codeColors[code]
	if !isDay {
		if l.night != "" {
			text = l.night
		}
		if code <= 1 {
			color = nightClearColor
		}
	}
	if strings.Contains(text, moonMarker) {
		text = strings.TrimSpace(strings.ReplaceAll(text, moonMarker, MoonGlyph(moon, style)))
	}
	return FitLabel(text), color
}

// FitLabel truncates or pads s to exactly LabelWidth cells
func FitLabel(s string) string {
	return runewidth.FillRight(runewidth.Truncate(s, LabelWidth, ""), LabelWidth)
}
