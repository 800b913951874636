// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping and the tick timer.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var timerIDs atomic.Int64

// TickMsg is sent to trigger a game tick. TimerID ties it to the timer that
// scheduled it, so ticks from a finished game cannot reach a new one.
type TickMsg struct {
	TimerID int64
	Time    time.Time
}

// teaTimer drives a GameLoop through Bubble Tea's single update goroutine.
// Each delivered tick schedules the next one until Stop is called.
type teaTimer struct {
	id       int64
	interval time.Duration
	running  bool
	pending  bool // Start called, first tick not yet scheduled
}

func newTeaTimer() *teaTimer {
	return &teaTimer{id: timerIDs.Add(1)}
}

// Start implements snake.Timer.
func (t *teaTimer) Start(interval time.Duration) {
	t.interval = interval
	t.running = true
	t.pending = true
}

// Stop implements snake.Timer.
func (t *teaTimer) Stop() {
	t.running = false
	t.pending = false
}

// takeStart returns the first tick command after Start, once.
func (t *teaTimer) takeStart() tea.Cmd {
	if !t.pending {
		return nil
	}
	t.pending = false
	return t.next()
}

// next returns a command that delivers the next tick, or nil when stopped.
func (t *teaTimer) next() tea.Cmd {
	if !t.running {
		return nil
	}
	id := t.id
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{TimerID: id, Time: now}
	})
}

// owns reports whether msg was scheduled by this timer.
func (t *teaTimer) owns(msg TickMsg) bool {
	return msg.TimerID == t.id
}
