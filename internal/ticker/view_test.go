package ticker

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmoran/logoticker/internal/logoset"
)

func TestChipWidth_ScaleMultipliesBase(t *testing.T) {
	plain := Item{Alt: "Acme", Src: "acme.png"}
	base := chipWidth(plain)

	scaled := plain
	scaled.Scale = 1.5
	want := int(math.Round(float64(base) * 1.5))
	assert.Equal(t, want, chipWidth(scaled))

	// Default scale leaves the base width untouched.
	assert.Equal(t, base, chipWidth(plain))
}

func TestChipWidth_CappedAtMax(t *testing.T) {
	item := Item{Alt: "A very long logo entry name", Src: "x.png", Scale: 3}
	assert.Equal(t, maxChipWidth, chipWidth(item))
}

func TestChipCells_GlowAddsTwoShadowLayers(t *testing.T) {
	glow := chipCells(styles{}, Item{Alt: "A", Src: "x.png", Glow: true})

	outer, inner := 0, 0
	for _, c := range glow {
		switch c.r {
		case glowOuter:
			outer++
		case glowInner:
			inner++
		}
	}
	assert.Equal(t, 2, outer)
	assert.Equal(t, 2, inner)

	plain := chipCells(styles{}, Item{Alt: "A", Src: "x.png"})
	for _, c := range plain {
		assert.NotContains(t, []rune{glowOuter, glowInner}, c.r)
	}
}

func TestChipCells_ShrinkKeepsGlyph(t *testing.T) {
	item := Item{Alt: "Somewhat Long Name", Src: "x.png", Scale: 0.25}
	cells := chipCells(styles{}, item)

	require.GreaterOrEqual(t, len(cells), minChipWidth)
	found := false
	for _, c := range cells {
		if c.r == chipGlyph {
			found = true
		}
	}
	assert.True(t, found, "shrunken chip should keep the logo mark")
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short"))

	long := strings.Repeat("x", maxNameRunes+5)
	got := truncateName(long)
	assert.Len(t, []rune(got), maxNameRunes)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestVisibleCells_WrapsSeamlessly(t *testing.T) {
	m := newTestModel(map[string]string{
		AttrData: `[{"name":"A","logo":"a.png"}]`,
	})
	row := m.rowCells()
	require.NotEmpty(t, row)

	// A window wider than the row must repeat it without gaps.
	window := m.visibleCells(row, 3*len(row))
	for i, c := range window {
		assert.Equal(t, row[i%len(row)], c, "column %d", i)
	}
}

func TestVisibleCells_EmptyRowRendersSpaces(t *testing.T) {
	m := newTestModel(nil)
	window := m.visibleCells(nil, 10)
	require.Len(t, window, 10)
	for _, c := range window {
		assert.Equal(t, ' ', c.r)
	}
}

func TestMaskCells_FadesOnlyEdges(t *testing.T) {
	m := newTestModel(nil)

	width := 100
	window := make([]cell, width)
	for i := range window {
		window[i] = cell{r: 'x', fg: "#ffffff"}
	}

	masked := m.maskCells(window)
	zone := width * edgeMaskPercent / 100
	require.Equal(t, 8, zone)

	for i := 0; i < zone; i++ {
		assert.NotEqual(t, "#ffffff", masked[i].fg, "left edge column %d", i)
		assert.NotEqual(t, "#ffffff", masked[width-1-i].fg, "right edge column %d", width-1-i)
	}
	for i := zone; i < width-zone; i++ {
		assert.Equal(t, "#ffffff", masked[i].fg, "interior column %d", i)
	}
}

func TestView_ReducedMotionIsStaticAndUnmasked(t *testing.T) {
	m := New(Options{
		Width:         60,
		ReducedMotion: true,
		Attributes:    map[string]string{AttrData: `[{"name":"A","logo":"a.png"}]`},
	})

	assert.Nil(t, m.Tick())

	before := m.View()
	m, cmd := m.Update(FrameMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.View())
}

func TestUpdate_FrameAdvancesOffset(t *testing.T) {
	m := newTestModel(map[string]string{
		AttrData:  `[{"name":"A","logo":"a.png"},{"name":"B","logo":"b.png"}]`,
		AttrSpeed: "1",
	})
	require.Equal(t, 0, m.offsetCells())

	for i := 0; i < 15; i++ {
		m, _ = m.Update(FrameMsg{})
	}
	assert.NotEqual(t, 0, m.offsetCells())
	assert.Less(t, m.offsetCells(), m.bandW)
}

func TestFallbackRenderCount(t *testing.T) {
	m := newTestModel(map[string]string{AttrData: `{not valid`})
	assert.Len(t, m.Items(), 3*logoset.FallbackSize())
	assert.Equal(t, 69, len(m.Items()))
}
