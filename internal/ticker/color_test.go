package ticker

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTint_Forms(t *testing.T) {
	cases := []struct {
		in    string
		alpha float64
	}{
		{"#fff", 1},
		{"#ffffff", 1},
		{"#ffffff80", float64(0x80) / 255},
		{"rgb(255, 255, 255)", 1},
		{"rgba(255, 255, 255, 0.5)", 0.5},
		{"  RGBA(0, 0, 0, 1)  ", 1},
	}
	for _, tc := range cases {
		tint, ok := parseTint(tc.in)
		require.True(t, ok, "parseTint(%q)", tc.in)
		assert.InDelta(t, tc.alpha, tint.alpha, 0.001, "parseTint(%q) alpha", tc.in)
	}
}

func TestParseTint_Rejects(t *testing.T) {
	for _, in := range []string{
		"", "red", "#ff", "#ggg", "rgba(255,255,255)", "rgb(1,2)",
		"rgba(300, 0, 0, 0.5)", "rgba(0, 0, 0, 2)", "hsl(10, 50%, 50%)",
	} {
		if _, ok := parseTint(in); ok {
			t.Fatalf("parseTint(%q) accepted, want rejection", in)
		}
	}
}

func TestLighter_ReducesAlpha(t *testing.T) {
	tint, ok := parseTint(defaultAccent)
	require.True(t, ok)
	assert.InDelta(t, 0.25, tint.alpha, 0.001)

	// The derived stop for the default token matches the original's lower
	// opacity value.
	assert.InDelta(t, 0.10, tint.lighter().alpha, 0.001)
}

func TestOver_CompositesTowardBackground(t *testing.T) {
	bg, err := colorful.Hex("#000000")
	require.NoError(t, err)

	opaque, ok := parseTint("rgba(255, 255, 255, 1)")
	require.True(t, ok)
	assert.Equal(t, "#ffffff", opaque.over(bg))

	half, ok := parseTint("rgba(255, 255, 255, 0.5)")
	require.True(t, ok)
	blended, err := colorful.Hex(half.over(bg))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, blended.R, 0.01)
}

func TestNewStyles_InvalidAccentDegrades(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Accent = "definitely-not-a-color"
	st := newStyles(cfg, defaultBackground)

	assert.Empty(t, st.accentHex)
	assert.Empty(t, st.accentLightHex)
	assert.NotEmpty(t, st.borderHex, "fixed border tint still applies")
}

func TestNewStyles_BadBackgroundFallsBack(t *testing.T) {
	st := newStyles(DefaultConfig(), "nonsense")
	assert.Equal(t, defaultBackground, st.backgroundHex)
}
