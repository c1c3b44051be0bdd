package ticker

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// styles holds the fully derived visual parameters for one build. All
// translucent tokens are composited over the theme background up front so
// the renderer only deals in opaque terminal colors.
type styles struct {
	// accentHex is empty when the accent value does not parse; rendering
	// then degrades to the terminal's default colors.
	accentHex      string
	accentLightHex string
	borderHex      string
	backgroundHex  string

	container lipgloss.Style
}

const mutedText = "#94a3b8"

func newStyles(cfg Config, background string) styles {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg, _ = colorful.Hex(defaultBackground)
	}

	s := styles{backgroundHex: bg.Hex()}

	if accent, ok := parseTint(cfg.Accent); ok {
		s.accentHex = accent.over(bg)
		s.accentLightHex = accent.lighter().over(bg)
	}
	if border, ok := parseTint(cfg.Border); ok {
		s.borderHex = border.over(bg)
	}

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if s.borderHex != "" {
		container = container.BorderForeground(lipgloss.Color(s.borderHex))
	}
	// Two-stop vertical gradient: the accent tints the top edge, its
	// lighter derivative the bottom.
	if s.accentHex != "" {
		container = container.
			BorderTopForeground(lipgloss.Color(s.accentHex)).
			BorderBottomForeground(lipgloss.Color(s.accentLightHex))
	}
	s.container = container

	return s
}

// glyphColor is the color for the logo mark of a chip.
func (s styles) glyphColor() string {
	return s.accentHex
}

// haloColor is the color for the glow halo layers.
func (s styles) haloColor() string {
	return s.accentLightHex
}

// nameColor renders entry names at rest in a reduced-emphasis tone, the
// terminal analog of the reduced opacity the items carry when idle.
func (s styles) nameColor() string {
	return mutedText
}
