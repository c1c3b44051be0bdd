package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors for the application chrome. The ticker's accent
// and border are component state, not theme state; the theme only supplies
// the surfaces around it and the background the component composites over.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Faint  string
	Accent string
	Danger string
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// Styles contains pre-built lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style

	Header lipgloss.Style
	Logo   lipgloss.Style
}

var themes = map[string]Theme{
	"Slate":    slateTheme(),
	"Nightfox": nightfoxTheme(),
}

var themeOrder = []string{"Slate", "Nightfox"}

// GetTheme returns a theme by name, falling back to Slate.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return slateTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900

		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Faint:  "#64748b", // slate-500
		Accent: "#38bdf8", // sky-400
		Danger: "#ef4444", // red-500
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1

		Text:   "#cdcecf", // fg1
		Muted:  "#738091", // comment
		Faint:  "#71839b", // fg3
		Accent: "#719cd6", // blue
		Danger: "#c94f6d", // red
	}
}
