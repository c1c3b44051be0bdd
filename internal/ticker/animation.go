package ticker

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The two keyframe tracks. Left scrolls toward negative offsets, right
// toward positive ones; the direction attribute selects the binding.
const (
	AnimationLeft  = "ticker-left"
	AnimationRight = "ticker-right"
)

// frameInterval is the animation step cadence. The loop position is derived
// from accumulated elapsed time, so the cadence only affects smoothness.
const frameInterval = time.Second / 30

// FrameMsg advances the animation by one frame.
type FrameMsg time.Time

// Animation returns the keyframe track bound to the row for the current
// direction.
func (m Model) Animation() string {
	if m.cfg.Direction == DirectionRight {
		return AnimationRight
	}
	return AnimationLeft
}

// Tick schedules the next animation frame. Under reduced motion no frame is
// scheduled and the row stays static.
func (m Model) Tick() tea.Cmd {
	if m.reducedMotion {
		return nil
	}
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Update advances the animation clock on frame messages. All other messages
// are ignored; configuration changes arrive through SetAttribute instead.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(FrameMsg); !ok {
		return m, nil
	}
	if m.reducedMotion {
		return m, nil
	}

	m.elapsed += frameInterval
	if m.cfg.LoopDuration > 0 {
		m.elapsed %= m.cfg.LoopDuration
	}
	return m, m.Tick()
}

// offsetCells maps the loop progress to a cell offset within one band. One
// full LoopDuration translates the row by exactly one band width, which is
// one third of the tripled row, so the loop is seamless.
func (m Model) offsetCells() int {
	if m.reducedMotion || m.bandW == 0 || m.cfg.LoopDuration <= 0 {
		return 0
	}
	progress := float64(m.elapsed) / float64(m.cfg.LoopDuration)
	return int(progress*float64(m.bandW)) % m.bandW
}
