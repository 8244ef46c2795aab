package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hayeah/tree/walk"
)

// Palette colours entry names by kind. A nil or disabled Palette leaves
// names untouched.
type Palette struct {
	enabled bool

	dir    lipgloss.Style
	link   lipgloss.Style
	exec   lipgloss.Style
	fifo   lipgloss.Style
	socket lipgloss.Style
}

// NewPalette creates a Palette for w. Colour is forced to plain ANSI when
// enabled, whatever w is connected to.
func NewPalette(w io.Writer, enabled bool) *Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)

	style := func(color string) lipgloss.Style {
		return r.NewStyle().
			Foreground(lipgloss.Color(color)).
			TabWidth(lipgloss.NoTabConversion)
	}

	return &Palette{
		enabled: enabled,
		dir:     style("4").Bold(true),
		link:    style("6"),
		exec:    style("2"),
		fifo:    style("3"),
		socket:  style("5"),
	}
}

// Paint returns name coloured for mode.
func (p *Palette) Paint(name string, mode os.FileMode) string {
	if p == nil || !p.enabled {
		return name
	}

	switch walk.KindOf(mode) {
	case walk.KindDir:
		return p.dir.Render(name)
	case walk.KindSymlink:
		return p.link.Render(name)
	case walk.KindFIFO:
		return p.fifo.Render(name)
	case walk.KindSocket:
		return p.socket.Render(name)
	case walk.KindRegular:
		if mode&0111 != 0 {
			return p.exec.Render(name)
		}
	}
	return name
}
