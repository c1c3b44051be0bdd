package ticker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// accentAlphaFactor derives the lighter gradient stop from the accent color.
// For the default accent token (alpha 0.25) this yields 0.10, matching the
// documented two-stop gradient.
const accentAlphaFactor = 0.4

// tint is a color with an explicit alpha channel. Terminals have no alpha,
// so tints are composited over the theme background before rendering.
type tint struct {
	color colorful.Color
	alpha float64
}

// parseTint accepts #rgb, #rrggbb, #rrggbbaa, rgb(...) and rgba(...) forms.
// Anything else is rejected; callers degrade to unstyled rendering.
func parseTint(value string) (tint, bool) {
	s := strings.TrimSpace(strings.ToLower(value))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexTint(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFuncTint(s[len("rgba(") : len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFuncTint(s[len("rgb(") : len(s)-1], false)
	}
	return tint{}, false
}

func parseHexTint(s string) (tint, bool) {
	hex := s[1:]
	alpha := 1.0
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return tint{}, false
		}
		alpha = float64(a) / 255
		hex = hex[:6]
	}
	if len(hex) == 3 {
		hex = fmt.Sprintf("%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2])
	}
	if len(hex) != 6 {
		return tint{}, false
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return tint{}, false
	}
	return tint{color: c, alpha: alpha}, true
}

func parseFuncTint(args string, hasAlpha bool) (tint, bool) {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return tint{}, false
	}

	var channels [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return tint{}, false
		}
		channels[i] = v / 255
	}

	alpha := 1.0
	if hasAlpha {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || v < 0 || v > 1 {
			return tint{}, false
		}
		alpha = v
	}

	return tint{color: colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, alpha: alpha}, true
}

// lighter returns the tint with its alpha channel reduced. This replaces the
// original textual opacity-token substitution with a real color transform.
func (t tint) lighter() tint {
	return tint{color: t.color, alpha: t.alpha * accentAlphaFactor}
}

// over composites the tint onto an opaque background and returns the
// resulting hex value.
func (t tint) over(background colorful.Color) string {
	blended := background.BlendRgb(t.color, t.alpha)
	return blended.Clamped().Hex()
}
