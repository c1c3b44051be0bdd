package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	ToggleDirection key.Binding
	SpeedUp         key.Binding
	SpeedDown       key.Binding
	CycleAccent     key.Binding
	CycleVariant    key.Binding
	ReducedMotion   key.Binding
	Diagnostics     key.Binding
	Escape          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleDirection: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Toggle direction"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Faster (shorter loop)"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Slower (longer loop)"),
		),
		CycleAccent: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Cycle accent"),
		),
		CycleVariant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Cycle variant (reserved)"),
		),
		ReducedMotion: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle reduced motion"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Diagnostics"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),
	}
}
