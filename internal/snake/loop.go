package snake

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Status is the lifecycle state of a GameLoop.
type Status int

const (
	StatusIdle     Status = iota // Constructed, waiting for the first input
	StatusActive                 // Timer running
	StatusTerminal               // Collision detected; absorbing
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Renderer draws board snapshots. It must treat the snapshot as read-only.
type Renderer interface {
	Render(snap Snapshot)
}

// GameOverNotifier is told once when the game ends.
type GameOverNotifier interface {
	NotifyGameOver()
}

// Timer is the recurring task that drives GameLoop.Tick. Start is called
// once when the first input arrives and Stop once when the game ends.
// Ticks must be delivered on the same goroutine that delivers input.
type Timer interface {
	Start(interval time.Duration)
	Stop()
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Snapshot)

// Render calls f(snap).
func (f RenderFunc) Render(snap Snapshot) { f(snap) }

// NotifyFunc adapts a function to GameOverNotifier.
type NotifyFunc func()

// NotifyGameOver calls f().
func (f NotifyFunc) NotifyGameOver() { f() }

type nopTimer struct{}

func (nopTimer) Start(time.Duration) {}
func (nopTimer) Stop()               {}

// LoopOptions wires a GameLoop to its collaborators. Nil fields are
// replaced with no-op implementations.
type LoopOptions struct {
	TickInterval time.Duration
	Renderer     Renderer
	Notifier     GameOverNotifier
	Timer        Timer
	Logger       *log.Logger
}

// GameLoop advances a GridState once per tick and reacts to input.
// It is not safe for concurrent use: input and ticks must be delivered from
// a single goroutine.
type GameLoop struct {
	grid     *GridState
	interval time.Duration
	status   Status
	ticks    uint64

	renderer Renderer
	notifier GameOverNotifier
	timer    Timer
	logger   *log.Logger
}

// NewGameLoop creates an idle loop that exclusively owns grid, and renders
// the starting snapshot.
func NewGameLoop(grid *GridState, opts LoopOptions) *GameLoop {
	l := &GameLoop{
		grid:     grid,
		interval: opts.TickInterval,
		status:   StatusIdle,
		renderer: opts.Renderer,
		notifier: opts.Notifier,
		timer:    opts.Timer,
		logger:   opts.Logger,
	}
	if l.interval <= 0 {
		l.interval = core.DefaultTickInterval
	}
	if l.renderer == nil {
		l.renderer = RenderFunc(func(Snapshot) {})
	}
	if l.notifier == nil {
		l.notifier = NotifyFunc(func() {})
	}
	if l.timer == nil {
		l.timer = nopTimer{}
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}

	l.renderer.Render(l.Snapshot())
	return l
}

// Status returns the lifecycle state.
func (l *GameLoop) Status() Status {
	return l.status
}

// Ticks returns the number of ticks processed while active.
func (l *GameLoop) Ticks() uint64 {
	return l.ticks
}

// TickInterval returns the fixed period between ticks.
func (l *GameLoop) TickInterval() time.Duration {
	return l.interval
}

// Grid returns the owned board for read access.
func (l *GameLoop) Grid() *GridState {
	return l.grid
}

// Snapshot returns a copy of the body and the food cell.
func (l *GameLoop) Snapshot() Snapshot {
	return Snapshot{
		Body: l.grid.Body(),
		Food: l.grid.Food(),
	}
}

// OnInput handles a direction from the input layer. The first valid input
// starts the timer. After the game has ended the call is ignored, as are
// invalid directions.
func (l *GameLoop) OnInput(d Direction) {
	if l.status == StatusTerminal || !d.Valid() {
		return
	}
	if l.status == StatusIdle {
		l.status = StatusActive
		l.timer.Start(l.interval)
		l.logger.Debug("game started", "interval", l.interval, "grid", l.grid.GridSize())
	}
	if d == l.grid.Direction().Opposite() {
		l.logger.Debug("reversal requested", "from", l.grid.Direction(), "to", d, "length", l.grid.TargetLength())
	}
	if !l.grid.RequestDirection(d) {
		l.logger.Debug("direction rejected", "direction", d)
	}
}

// Tick runs one step of the game. It does nothing unless the loop is
// active, which turns ticks already scheduled before the game ended into
// no-ops.
func (l *GameLoop) Tick() {
	if l.status != StatusActive {
		return
	}
	l.ticks++

	l.grid.Advance()

	if l.grid.IsBoundaryCollision() || l.grid.IsSelfCollision() {
		l.status = StatusTerminal
		l.timer.Stop()
		l.logger.Debug("game over",
			"tick", l.ticks,
			"head", l.grid.CurrentHead(),
			"length", l.grid.TargetLength(),
		)
		l.notifier.NotifyGameOver()
		return
	}

	if l.grid.IsFoodCollision() {
		l.grid.ConsumeFood()
		l.logger.Debug("food eaten", "length", l.grid.TargetLength(), "food", l.grid.Food())
	}

	l.renderer.Render(l.Snapshot())
}
