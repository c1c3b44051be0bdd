package ticker

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	chipGlyph = '◆'

	// Glow entries carry two shadow layers around the chip, the dual
	// drop-shadow analog.
	glowOuter = '░'
	glowInner = '▒'

	maxNameRunes = 18
	maxChipWidth = 28
	minChipWidth = 3

	// The leading and trailing ~8% of the viewport fade toward the
	// background instead of clipping items abruptly.
	edgeMaskPercent = 8
)

// cell is one terminal column of the ticker row. An empty fg renders in the
// terminal's default color.
type cell struct {
	r  rune
	fg string
}

// View renders the component's full visual subtree: a gradient-bordered
// container holding the masked, animated row.
func (m Model) View() string {
	inner := m.width - 4
	if inner < 1 {
		inner = 1
	}

	row := m.rowCells()
	window := m.visibleCells(row, inner)
	if !m.reducedMotion {
		window = m.maskCells(window)
	}

	return m.styles.container.Render(renderCells(window))
}

// rowCells lays out the tripled item sequence as one flat band of cells.
func (m Model) rowCells() []cell {
	var row []cell
	for _, item := range m.items {
		row = append(row, chipCells(m.styles, item)...)
	}
	return row
}

// visibleCells extracts the animated viewport window from the band. The
// band is tripled, so modular indexing never exposes a seam.
func (m Model) visibleCells(row []cell, width int) []cell {
	if len(row) == 0 {
		return spaceCells(width)
	}

	offset := m.offsetCells()
	start := offset
	if m.cfg.Direction == DirectionRight {
		start = (len(row) - offset) % len(row)
	}

	window := make([]cell, width)
	for i := range window {
		window[i] = row[(start+i)%len(row)]
	}
	return window
}

// maskCells applies the edge fade: colors in the outer zones blend toward
// the background with a linear ramp.
func (m Model) maskCells(window []cell) []cell {
	zone := len(window) * edgeMaskPercent / 100
	if zone == 0 || len(window) < 2*zone {
		return window
	}

	bg, err := colorful.Hex(m.styles.backgroundHex)
	if err != nil {
		return window
	}

	masked := append([]cell(nil), window...)
	for i := 0; i < zone; i++ {
		t := float64(i+1) / float64(zone+1)
		masked[i] = fadeCell(masked[i], bg, t)
		j := len(masked) - 1 - i
		masked[j] = fadeCell(masked[j], bg, t)
	}
	return masked
}

func fadeCell(c cell, bg colorful.Color, t float64) cell {
	if c.fg == "" {
		return c
	}
	fg, err := colorful.Hex(c.fg)
	if err != nil {
		return c
	}
	c.fg = bg.BlendRgb(fg, t).Clamped().Hex()
	return c
}

// chipCells renders one item as a fixed-height chip: an accent-colored mark
// plus the entry name in a reduced-emphasis tone, optionally wrapped in the
// glow halo, sized by the entry's scale factor.
func chipCells(st styles, item Item) []cell {
	content := chipContent(st, item)

	base := len(content) + 2
	width := base
	if item.Scale != 0 {
		width = int(math.Round(float64(base) * item.Scale))
	}
	if width > maxChipWidth {
		width = maxChipWidth
	}
	if width < minChipWidth {
		width = minChipWidth
	}

	for len(content) > width-2 && len(content) > 1 {
		content = content[:len(content)-1]
	}

	pad := width - len(content)
	left := pad / 2
	cells := make([]cell, 0, width)
	cells = append(cells, spaceCells(left)...)
	cells = append(cells, content...)
	cells = append(cells, spaceCells(pad-left)...)
	return cells
}

func chipContent(st styles, item Item) []cell {
	var content []cell

	if item.Glow {
		content = append(content,
			cell{r: glowOuter, fg: st.haloColor()},
			cell{r: glowInner, fg: st.haloColor()},
		)
	}

	content = append(content, cell{r: chipGlyph, fg: st.glyphColor()}, cell{r: ' '})
	for _, r := range truncateName(item.Alt) {
		content = append(content, cell{r: r, fg: st.nameColor()})
	}

	if item.Glow {
		content = append(content,
			cell{r: glowInner, fg: st.haloColor()},
			cell{r: glowOuter, fg: st.haloColor()},
		)
	}

	return content
}

// chipWidth reports the cell width chipCells will produce for the item.
func chipWidth(item Item) int {
	return len(chipCells(styles{}, item))
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameRunes {
		return name
	}
	return string(runes[:maxNameRunes-1]) + "…"
}

func spaceCells(n int) []cell {
	cells := make([]cell, n)
	for i := range cells {
		cells[i] = cell{r: ' '}
	}
	return cells
}

// renderCells serializes the window, batching runs of the same color into a
// single styled segment.
func renderCells(cells []cell) string {
	var b strings.Builder
	var run []rune
	var fg string

	flush := func() {
		if len(run) == 0 {
			return
		}
		if fg == "" {
			b.WriteString(string(run))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Render(string(run)))
		}
		run = run[:0]
	}

	for _, c := range cells {
		if c.fg != fg {
			flush()
			fg = c.fg
		}
		run = append(run, c.r)
	}
	flush()
	return b.String()
}
