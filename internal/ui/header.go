package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kmoran/logoticker/internal/ticker"
)

// renderHeader renders the status bar: app mark plus the component's live
// attribute summary.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	cfg := m.ticker.Config()

	parts := []string{
		styles.Logo.Render("logoticker"),
		styles.MutedText.Render("dir:") + " " + styles.Text.Render(cfg.Direction.String()),
		styles.MutedText.Render("loop:") + " " + styles.Text.Render(fmt.Sprintf("%.0fs", cfg.LoopDuration.Seconds())),
		styles.MutedText.Render("logos:") + " " + styles.Text.Render(fmt.Sprintf("%d", len(cfg.Logos))),
		styles.MutedText.Render("builds:") + " " + styles.Text.Render(fmt.Sprintf("%d", m.ticker.Rebuilds())),
	}

	if cfg.Variant != "" {
		parts = append(parts, styles.FaintText.Render("variant: "+cfg.Variant))
	}
	if m.ticker.ReducedMotion() {
		parts = append(parts, styles.DangerText.Render("static"))
	} else {
		parts = append(parts, styles.AccentText.Render(m.ticker.Animation()))
	}
	if m.diagBuf != nil && m.diagBuf.Len() > 0 {
		parts = append(parts, styles.DangerText.Render(fmt.Sprintf("⚠ %d", m.diagBuf.Len())))
	}

	content := parts[0]
	sep := "  "
	for _, p := range parts[1:] {
		content += sep + p
	}

	header := styles.Header
	if m.width > 0 {
		header = header.Width(m.width)
	}
	return header.Render(content)
}

// renderDiagnostics renders the diagnostics view fed by the component's
// developer channel.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()

	title := styles.Text.Bold(true).Render("Diagnostics")
	if m.diagBuf == nil || m.diagBuf.Len() == 0 {
		return title + "\n\n" + styles.FaintText.Render("No diagnostics recorded.")
	}

	out := title + "\n"
	entries := m.diagBuf.Entries()

	// Show the newest entries that fit the viewport.
	max := m.height - 6
	if max < 1 {
		max = 1
	}
	if len(entries) > max {
		entries = entries[len(entries)-max:]
	}
	for _, entry := range entries {
		line := styles.FaintText.Render(entry.Time.Format("15:04:05")) + " " +
			styles.MutedText.Render(entry.Line)
		out += "\n" + line
	}
	return out
}

// attributeBadge renders a small key/value chip; used by the help overlay
// to document the attribute contract.
func attributeBadge(styles Styles, key, desc string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.AccentText.Render(key),
		styles.MutedText.Render(" — "+desc),
	)
}

var attributeDocs = []struct{ key, desc string }{
	{ticker.AttrAccent, "accent color, raw passthrough"},
	{ticker.AttrSpeed, "loop seconds, falls back to 90"},
	{ticker.AttrDirection, `"right" or anything-else=left`},
	{ticker.AttrData, "JSON logo list, fallback set on failure"},
	{ticker.AttrVariant, "reserved, no effect"},
}
