package ui

import (
	"strings"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Ticker",
			items: []helpItem{
				{"d", "Toggle scroll direction"},
				{"+/-", "Shorter/longer loop"},
				{"a", "Cycle accent color"},
				{"v", "Cycle variant (reserved)"},
				{"m", "Toggle reduced motion"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"p", "Diagnostics view"},
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"esc", "Back to ticker"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(padKey(item.key)))
			b.WriteString(styles.MutedText.Render(item.desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render("Attributes"))
	b.WriteString("\n")
	for _, doc := range attributeDocs {
		b.WriteString("  ")
		b.WriteString(attributeBadge(styles, padKey(doc.key), doc.desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))
	return b.String()
}

func padKey(key string) string {
	const width = 12
	if len(key) >= width {
		return key + " "
	}
	return key + strings.Repeat(" ", width-len(key))
}
