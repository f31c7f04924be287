// Package palette renders color tokens in the color they name.
package palette

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/birdayz/rainlight/pkg/codec"
)

// Mode selects when escape sequences are emitted.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// Palette styles tokens for one output writer.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[codec.Symbol]lipgloss.Style
}

// New returns a Palette for w. In ModeAuto the color profile is detected
// from w, so anything that is not a terminal gets plain text.
func New(w io.Writer, mode Mode) *Palette {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ModeNever:
		r.SetColorProfile(termenv.Ascii)
	case ModeAlways:
		r.SetColorProfile(termenv.TrueColor)
	}

	p := &Palette{
		renderer: r,
		styles:   make(map[codec.Symbol]lipgloss.Style, 2),
	}
	for _, s := range []codec.Symbol{codec.Zero, codec.One} {
		p.styles[s] = r.NewStyle().Foreground(lipgloss.Color(s.Hex()))
	}
	return p
}

// Enabled reports whether output will contain color escape sequences.
func (p *Palette) Enabled() bool {
	return p.renderer.ColorProfile() != termenv.Ascii
}

// Token renders the color name of s.
func (p *Palette) Token(s codec.Symbol) string {
	if !p.Enabled() {
		return s.String()
	}
	return p.styles[s].Render(s.String())
}

// Line renders one encoded byte.
func (p *Palette) Line(l codec.Line) string {
	if !p.Enabled() {
		return l.String()
	}
	tokens := make([]string, len(l.Symbols))
	for i, s := range l.Symbols {
		tokens[i] = p.Token(s)
	}
	return strings.Join(tokens, codec.Separator)
}
