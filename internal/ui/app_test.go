package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kmoran/logoticker/internal/diag"
	"github.com/kmoran/logoticker/internal/state"
	"github.com/kmoran/logoticker/internal/ticker"
)

func newTestApp(t *testing.T, opts Options) Model {
	t.Helper()
	opts.Logger = zerolog.Nop()
	m := New(opts)

	// Simulate the initial window size message.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_SeedsInitialAttributes(t *testing.T) {
	m := newTestApp(t, Options{
		InitialAttributes: map[string]string{
			ticker.AttrSpeed:     "30",
			ticker.AttrDirection: "right",
		},
	})

	cfg := m.ticker.Config()
	if cfg.LoopDuration != 30*time.Second {
		t.Fatalf("LoopDuration = %v, want 30s", cfg.LoopDuration)
	}
	if cfg.Direction != ticker.DirectionRight {
		t.Fatalf("Direction = %v, want right", cfg.Direction)
	}
}

func TestHandleKey_ToggleDirection(t *testing.T) {
	m := newTestApp(t, Options{})
	if m.ticker.Animation() != ticker.AnimationLeft {
		t.Fatalf("initial animation = %q, want %q", m.ticker.Animation(), ticker.AnimationLeft)
	}

	updated, _ := m.Update(keyMsg("d"))
	m = updated.(Model)
	if m.ticker.Animation() != ticker.AnimationRight {
		t.Fatalf("animation after toggle = %q, want %q", m.ticker.Animation(), ticker.AnimationRight)
	}

	updated, _ = m.Update(keyMsg("d"))
	m = updated.(Model)
	if m.ticker.Animation() != ticker.AnimationLeft {
		t.Fatalf("animation after second toggle = %q, want %q", m.ticker.Animation(), ticker.AnimationLeft)
	}
}

func TestHandleKey_SpeedClampsAtMinimum(t *testing.T) {
	m := newTestApp(t, Options{
		InitialAttributes: map[string]string{ticker.AttrSpeed: "10"},
	})

	updated, _ := m.Update(keyMsg("+"))
	m = updated.(Model)
	if got := m.ticker.Config().LoopDuration; got != 5*time.Second {
		t.Fatalf("LoopDuration = %v, want clamped 5s", got)
	}
}

func TestPollTick_DrainsStoreIntoComponent(t *testing.T) {
	store := &state.Store{}
	m := newTestApp(t, Options{Store: store})

	store.Push(ticker.AttrData, `[{"name":"Polled","logo":"p.png"}]`)
	store.Push(ticker.AttrSpeed, "12")

	updated, cmd := m.Update(pollTickMsg(time.Now()))
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("poll tick returned nil cmd, want next tick scheduled")
	}

	if got := len(m.ticker.Items()); got != 3 {
		t.Fatalf("len(Items) = %d, want 3 after polled data applied", got)
	}
	if got := m.ticker.Config().LoopDuration; got != 12*time.Second {
		t.Fatalf("LoopDuration = %v, want 12s", got)
	}
	if store.Pending() != 0 {
		t.Fatalf("store still has %d pending changes, want 0", store.Pending())
	}
}

func TestView_ShowsHeaderAndTicker(t *testing.T) {
	m := newTestApp(t, Options{
		InitialAttributes: map[string]string{
			ticker.AttrData: `[{"name":"Solo","logo":"s.png"}]`,
		},
	})

	view := m.View()
	if !strings.Contains(view, "logoticker") {
		t.Fatalf("view missing app mark:\n%s", view)
	}
	if !strings.Contains(view, "Solo") {
		t.Fatalf("view missing entry name:\n%s", view)
	}
}

func TestView_DiagnosticsView(t *testing.T) {
	buf := diag.NewBuffer(10)
	if _, err := buf.Write([]byte("something went sideways\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	m := newTestApp(t, Options{Diagnostics: buf})
	updated, _ := m.Update(keyMsg("p"))
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "Diagnostics") {
		t.Fatalf("view missing diagnostics title:\n%s", view)
	}
	if !strings.Contains(view, "sideways") {
		t.Fatalf("view missing diagnostic line:\n%s", view)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)
	if m.currentView != ViewTicker {
		t.Fatalf("currentView = %v after esc, want ticker view", m.currentView)
	}
}

func TestHelpOverlay_TogglesAndClosesOnAnyKey(t *testing.T) {
	m := newTestApp(t, Options{})

	updated, _ := m.Update(keyMsg("?"))
	m = updated.(Model)
	if !m.showHelp {
		t.Fatalf("showHelp = false after ?, want true")
	}
	if view := m.View(); !strings.Contains(view, "Keyboard Shortcuts") {
		t.Fatalf("help view missing title:\n%s", view)
	}

	updated, _ = m.Update(keyMsg("x"))
	m = updated.(Model)
	if m.showHelp {
		t.Fatalf("showHelp = true after keypress, want false")
	}
}

func TestHandleKey_VariantCyclesWithoutVisualChange(t *testing.T) {
	m := newTestApp(t, Options{})
	before := m.ticker.View()

	updated, _ := m.Update(keyMsg("v"))
	m = updated.(Model)
	if got := m.ticker.Config().Variant; got != "compact" {
		t.Fatalf("Variant = %q, want compact", got)
	}
	if m.ticker.View() != before {
		t.Fatalf("ticker view changed after variant cycle, want identical output")
	}
}
