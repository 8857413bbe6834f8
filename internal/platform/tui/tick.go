// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// armed timer that produced it; ticks from a cancelled timer are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Ticker implements snake.Ticker on top of tea.Tick. Bubble Tea commands can
// only be scheduled by returning them from Update, so Arm queues a command
// and the model collects it with Flush after calling into the controller.
type Ticker struct {
	gen      uint64
	armed    bool
	interval time.Duration
	pending  tea.Cmd
}

// NewTicker creates an idle ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Arm starts a new generation at interval, invalidating any earlier one.
func (t *Ticker) Arm(interval time.Duration) snake.TickHandle {
	t.gen++
	t.armed = true
	t.interval = interval
	t.pending = tickCmd(t.gen, interval)
	return tickHandle{t: t, gen: t.gen}
}

// Flush returns the command queued by the last Arm, if it was not yet taken.
func (t *Ticker) Flush() tea.Cmd {
	cmd := t.pending
	t.pending = nil
	return cmd
}

// Live reports whether a tick of generation gen should advance the game.
func (t *Ticker) Live(gen uint64) bool {
	return t.armed && gen == t.gen
}

// Interval returns the period of the current generation.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// After returns the command that keeps ticking once a tick of generation gen
// has been handled: a freshly armed generation wins, a still-live one is
// re-issued, and a cancelled one stops.
func (t *Ticker) After(gen uint64) tea.Cmd {
	if cmd := t.Flush(); cmd != nil {
		return cmd
	}
	if t.Live(gen) {
		return tickCmd(gen, t.interval)
	}
	return nil
}

type tickHandle struct {
	t   *Ticker
	gen uint64
}

// Cancel stops the handle's generation. Cancelling a superseded handle is a no-op.
func (h tickHandle) Cancel() {
	if h.t.gen != h.gen || !h.t.armed {
		return
	}
	h.t.armed = false
	h.t.pending = nil
}
