package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Painter colors text for the terminal. With color off every method returns
// its input unchanged.
type Painter struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// NewPainter creates a painter writing to w. The color profile is fixed
// rather than detected so output does not depend on the environment.
func NewPainter(w io.Writer, color bool) *Painter {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Painter{enabled: color, renderer: r}
}

// Enabled reports whether the painter emits color
func (p *Painter) Enabled() bool {
	return p != nil && p.enabled
}

// Paint renders s in the foreground color c
func (p *Painter) Paint(s string, c Color) string {
	if !p.Enabled() {
		return s
	}
	return p.renderer.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(s)
}

// Bold renders s in bold
func (p *Painter) Bold(s string) string {
	if !p.Enabled() {
		return s
	}
	return p.renderer.NewStyle().Bold(true).Render(s)
}

// Faint renders s dimmed
func (p *Painter) Faint(s string) string {
	if !p.Enabled() {
		return s
	}
	return p.renderer.NewStyle().Faint(true).Render(s)
}
