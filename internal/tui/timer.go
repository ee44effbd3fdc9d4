package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timer is the single periodic subscription driving ticks. Every start or
// stop bumps gen, so a tick scheduled under an older generation is dropped
// and at most one tick chain is ever live.
type timer struct {
	interval time.Duration
	gen      int
	running  bool
}

func newTimer(interval time.Duration) timer {
	return timer{interval: interval, gen: 1, running: true}
}

// start resubscribes if stopped. It returns nil when already running.
func (t *timer) start() tea.Cmd {
	if t.running {
		return nil
	}
	t.gen++
	t.running = true
	return t.schedule()
}

// stop cancels the subscription; an in-flight tick becomes stale.
func (t *timer) stop() {
	if !t.running {
		return
	}
	t.running = false
	t.gen++
}

// accept reports whether msg belongs to the live subscription.
func (t *timer) accept(msg TickMsg) bool {
	return t.running && msg.Gen == t.gen
}

func (t *timer) schedule() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: now}
	})
}
