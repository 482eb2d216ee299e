package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

type styles struct {
	label  lipgloss.Style
	value  lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
}

// newStyles returns styles rendering for w. Outside FormatTerminal they
// render plain text.
func newStyles(w io.Writer, format Format) styles {
	renderer := lipgloss.NewRenderer(w)
	if format == FormatTerminal {
		pterm.EnableStyling()
	} else {
		renderer.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
	}

	return styles{
		label: renderer.NewStyle().Bold(true).Width(10),
		value: renderer.NewStyle(),
		accent: renderer.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}),
		muted: renderer.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}).
			Italic(true),
	}
}

func (s styles) field(name, value string) string {
	return s.label.Render(name) + s.value.Render(value)
}
