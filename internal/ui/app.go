package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kmoran/logoticker/internal/diag"
	"github.com/kmoran/logoticker/internal/prefs"
	"github.com/kmoran/logoticker/internal/state"
	"github.com/kmoran/logoticker/internal/ticker"
)

// View represents the current active view.
type View int

const (
	ViewTicker View = iota
	ViewDiagnostics
)

// accentPresets are the accent values the 'a' binding cycles through. The
// first entry is the component's muted default.
var accentPresets = []string{
	"rgba(100, 116, 139, 0.25)",
	"rgba(56, 189, 248, 0.25)",
	"rgba(129, 140, 248, 0.25)",
	"rgba(52, 211, 153, 0.25)",
	"rgba(251, 146, 60, 0.25)",
}

// variantPresets exercise the reserved variant attribute. None of them
// change rendering; the attribute is observed but unconsumed.
var variantPresets = []string{"", "compact", "wide"}

// Options configures the UI.
type Options struct {
	Context           context.Context
	Store             *state.Store
	Diagnostics       *diag.Buffer
	InitialAttributes map[string]string
	ReducedMotion     bool
	PollTick          time.Duration
	ThemeName         string
	PrefsPath         string
	Logger            zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	diagBuf   *diag.Buffer
	prefsPath string
	pollTick  time.Duration

	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	ticker     ticker.Model
	accentIdx  int
	variantIdx int
}

// New creates a new Bubble Tea model hosting one ticker component.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	tickerOpts := ticker.Options{
		Attributes:    opts.InitialAttributes,
		Background:    theme.Surface,
		ReducedMotion: opts.ReducedMotion,
		Logger:        opts.Logger,
	}

	// The component is instantiated through the registry the application
	// registered it in at startup.
	construct := ticker.New
	if fn, ok := ticker.Lookup(ticker.ElementName); ok {
		construct = fn
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		diagBuf:   opts.Diagnostics,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		keys:      DefaultKeyMap(),
		theme:     theme,
		ticker:    construct(tickerOpts),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		pollTickCmd(m.pollTick),
		m.ticker.Tick(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ticker.SetWidth(msg.Width)
		m.ready = true
		return m, nil

	case pollTickMsg:
		return m.handlePollTick()

	case ticker.FrameMsg:
		var cmd tea.Cmd
		m.ticker, cmd = m.ticker.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.currentView {
	case ViewDiagnostics:
		b.WriteString(m.renderDiagnostics())
	default:
		b.WriteString(m.ticker.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewTicker
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.currentView = ViewDiagnostics
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.ticker.SetBackground(m.theme.Surface)
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleDirection):
		next := "right"
		if m.ticker.Config().Direction == ticker.DirectionRight {
			next = "left"
		}
		m.ticker.SetAttribute(ticker.AttrDirection, next)
		return m, nil

	case key.Matches(msg, m.keys.SpeedUp):
		return m.adjustSpeed(-15), nil

	case key.Matches(msg, m.keys.SpeedDown):
		return m.adjustSpeed(15), nil

	case key.Matches(msg, m.keys.CycleAccent):
		m.accentIdx = (m.accentIdx + 1) % len(accentPresets)
		m.ticker.SetAttribute(ticker.AttrAccent, accentPresets[m.accentIdx])
		return m, nil

	case key.Matches(msg, m.keys.CycleVariant):
		m.variantIdx = (m.variantIdx + 1) % len(variantPresets)
		m.ticker.SetAttribute(ticker.AttrVariant, variantPresets[m.variantIdx])
		return m, nil

	case key.Matches(msg, m.keys.ReducedMotion):
		m.ticker.SetReducedMotion(!m.ticker.ReducedMotion())
		return m, m.ticker.Tick()
	}

	return m, nil
}

// adjustSpeed nudges the loop duration by delta seconds through the speed
// attribute, clamped to stay positive.
func (m Model) adjustSpeed(delta float64) Model {
	seconds := m.ticker.Config().LoopDuration.Seconds() + delta
	if seconds < 5 {
		seconds = 5
	}
	m.ticker.SetAttribute(ticker.AttrSpeed, strconv.FormatFloat(seconds, 'f', -1, 64))
	return m
}

// handlePollTick drains queued host attribute writes into the component and
// schedules the next poll.
func (m Model) handlePollTick() (tea.Model, tea.Cmd) {
	if m.store != nil {
		for _, change := range m.store.Drain() {
			m.ticker.SetAttribute(change.Key, change.Value)
		}
	}
	return m, pollTickCmd(m.pollTick)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	hint := "h help · d direction · +/- speed · a accent · m motion · p diagnostics · q quit"
	return styles.FaintText.Render(hint)
}

// Messages

type pollTickMsg time.Time

// Commands

func pollTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
