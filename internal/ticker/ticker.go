package ticker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kmoran/logoticker/internal/logoset"
)

// Attribute keys observed by the component. Unrecognized keys are ignored
// silently.
const (
	AttrAccent    = "accent"
	AttrSpeed     = "speed"
	AttrDirection = "direction"
	AttrData      = "data-json"
	AttrVariant   = "variant" // reserved, observed but has no effect
)

// ObservedAttributes returns the attribute keys the component reacts to, in
// declaration order.
func ObservedAttributes() []string {
	return []string{AttrAccent, AttrSpeed, AttrDirection, AttrData, AttrVariant}
}

// Direction selects which way the ticker row travels.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	if d == DirectionRight {
		return "right"
	}
	return "left"
}

const (
	defaultLoopSeconds = 90

	// Muted slate tokens, translucent. The border is fixed and not
	// externally configurable.
	defaultAccent = "rgba(100, 116, 139, 0.25)"
	borderColor   = "rgba(148, 163, 184, 0.18)"

	defaultBackground = "#0f172a"
)

// Config is the component's live configuration snapshot.
type Config struct {
	Accent       string
	Border       string
	LoopDuration time.Duration
	Direction    Direction
	Variant      string
	Logos        []logoset.Entry
}

// DefaultConfig returns the configuration used at construction before any
// host attributes apply.
func DefaultConfig() Config {
	return Config{
		Accent:       defaultAccent,
		Border:       borderColor,
		LoopDuration: defaultLoopSeconds * time.Second,
		Direction:    DirectionLeft,
		Logos:        logoset.Fallback(),
	}
}

// Options configure a new ticker widget.
type Options struct {
	// Width is the initial outer width in cells. Hosts update it later via
	// SetWidth.
	Width int

	// Attributes holds the host element's initial attribute values. Absent
	// keys keep their defaults; an absent data-json means the fallback set
	// is used immediately without a parse attempt.
	Attributes map[string]string

	// Background is the theme background the translucent accent and border
	// tints composite over. Defaults to a dark slate surface.
	Background string

	// ReducedMotion forces the static, unmasked fallback rendering and
	// stops the animation from being scheduled.
	ReducedMotion bool

	Logger zerolog.Logger
}

// Model is the ticker widget state. The host owns exactly one per mounted
// component and drives it through SetAttribute, Update and View.
type Model struct {
	cfg     Config
	attrs   map[string]string
	styles  styles
	items   []Item
	bandW   int
	elapsed time.Duration

	width         int
	background    string
	reducedMotion bool
	rebuilds      int
	logger        zerolog.Logger
}

// New constructs the widget, applies the initial attribute set and performs
// the first build.
func New(opts Options) Model {
	background := opts.Background
	if background == "" {
		background = defaultBackground
	}

	m := Model{
		cfg:           DefaultConfig(),
		attrs:         make(map[string]string),
		width:         opts.Width,
		background:    background,
		reducedMotion: opts.ReducedMotion,
		logger:        opts.Logger,
	}

	for _, key := range ObservedAttributes() {
		value, ok := opts.Attributes[key]
		if !ok {
			continue
		}
		m.attrs[key] = value
		m.processAttr(key, value)
	}
	m.rebuild()
	return m
}

// SetAttribute applies one host attribute change. Setting a key to its
// current raw value is a no-op; any processed change triggers a full rebuild
// of the visual state, whether or not the derived configuration differs.
func (m *Model) SetAttribute(key, value string) {
	switch key {
	case AttrAccent, AttrSpeed, AttrDirection, AttrData, AttrVariant:
	default:
		return
	}
	if old, ok := m.attrs[key]; ok && old == value {
		return
	}
	m.attrs[key] = value
	m.processAttr(key, value)
	m.rebuild()
}

func (m *Model) processAttr(key, value string) {
	switch key {
	case AttrAccent:
		// Raw passthrough. An unparsable color degrades to unstyled
		// rendering rather than failing.
		m.cfg.Accent = value

	case AttrSpeed:
		m.cfg.LoopDuration = parseLoopDuration(value)

	case AttrDirection:
		if value == "right" {
			m.cfg.Direction = DirectionRight
		} else {
			m.cfg.Direction = DirectionLeft
		}

	case AttrData:
		entries, err := logoset.Parse([]byte(value))
		if err != nil {
			m.logger.Warn().Err(err).Msg("invalid logo data, using fallback set")
			m.cfg.Logos = logoset.Fallback()
			return
		}
		m.cfg.Logos = entries

	case AttrVariant:
		m.cfg.Variant = value
	}
}

// parseLoopDuration maps the speed attribute to a loop duration. Parse
// failures and non-positive values fall back to the 90 second default.
func parseLoopDuration(value string) time.Duration {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || seconds <= 0 {
		seconds = defaultLoopSeconds
	}
	return time.Duration(seconds * float64(time.Second))
}

// rebuild replaces the derived visual state wholesale. There is no diffing;
// the full-replacement semantics are part of the component contract.
func (m *Model) rebuild() {
	m.styles = newStyles(m.cfg, m.background)
	m.items = tripled(m.cfg.Logos)
	m.bandW = 0
	for i := 0; i < len(m.items)/3; i++ {
		m.bandW += chipWidth(m.items[i])
	}
	m.rebuilds++
}

// Config returns a copy of the current configuration snapshot.
func (m *Model) Config() Config {
	cfg := m.cfg
	cfg.Logos = append([]logoset.Entry(nil), m.cfg.Logos...)
	return cfg
}

// Rebuilds reports how many full builds have run, including the initial
// mount build.
func (m *Model) Rebuilds() int {
	return m.rebuilds
}

// SetWidth updates the outer width in cells.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetBackground changes the surface the translucent tints composite over
// and rebuilds the derived styles.
func (m *Model) SetBackground(hex string) {
	if hex == "" || hex == m.background {
		return
	}
	m.background = hex
	m.rebuild()
}

// SetReducedMotion toggles the static fallback rendering.
func (m *Model) SetReducedMotion(on bool) {
	m.reducedMotion = on
	if on {
		m.elapsed = 0
	}
}

// ReducedMotion reports whether the static fallback is active.
func (m *Model) ReducedMotion() bool {
	return m.reducedMotion
}

// Item is one rendered entry of the tripled row.
type Item struct {
	// Key is the entry name concatenated with the item's position in the
	// tripled sequence, so duplicate names across copies stay distinct.
	Key string
	Alt string
	Src string

	// Scale is zero when the entry uses the default size; the scale style
	// fragment is omitted entirely in that case.
	Scale float64
	Glow  bool
}

// Items exposes the tripled item sequence so hosts and tests can observe the
// rendered structure without scraping escape codes.
func (m *Model) Items() []Item {
	return append([]Item(nil), m.items...)
}

// tripled concatenates the logo list with itself twice. A translation of
// exactly one third of the resulting row width loops with no visible seam.
func tripled(logos []logoset.Entry) []Item {
	items := make([]Item, 0, 3*len(logos))
	for copies := 0; copies < 3; copies++ {
		for _, entry := range logos {
			item := Item{
				Key:  fmt.Sprintf("%s-%d", entry.Name, len(items)),
				Alt:  entry.Name,
				Src:  entry.Logo,
				Glow: entry.Glow,
			}
			if entry.Scale != 0 && entry.Scale != 1 {
				item.Scale = entry.Scale
			}
			items = append(items, item)
		}
	}
	return items
}
