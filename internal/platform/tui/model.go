package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// boardView receives snapshots and the game-over notice from the loop.
type boardView struct {
	snap     snake.Snapshot
	renders  int
	gameOver bool
}

// Render implements snake.Renderer.
func (v *boardView) Render(snap snake.Snapshot) {
	v.snap = snap
	v.renders++
}

// NotifyGameOver implements snake.GameOverNotifier.
func (v *boardView) NotifyGameOver() {
	v.gameOver = true
}

// Model is the Bubble Tea model for one player's game. Keys, mouse presses
// and ticks all arrive through Update, so the loop only ever runs on
// Bubble Tea's update goroutine.
type Model struct {
	config   core.RuntimeConfig
	loop     *snake.GameLoop
	timer    *teaTimer
	view     *boardView
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	games    int
	quitting bool
}

// NewModel creates a model with a fresh, idle game.
func NewModel(cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		config: cfg,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
	m.newGame()
	return m
}

// newGame builds a new GridState and GameLoop. A finished game is never
// reset; it is replaced.
func (m *Model) newGame() {
	m.view = &boardView{}
	m.timer = newTeaTimer()
	grid := snake.GridStateFromConfig(m.config)
	m.loop = snake.NewGameLoop(grid, snake.LoopOptions{
		TickInterval: m.config.TickInterval,
		Renderer:     m.view,
		Notifier:     m.view,
		Timer:        m.timer,
		Logger:       m.logger,
	})
	m.games++
	m.logger.Info("new game",
		"game", m.games,
		"grid", grid.GridSize(),
		"interval", m.loop.TickInterval(),
		"seed", m.config.Seed,
	)
}

// Init implements tea.Model. The timer only starts on the first input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.timer.owns(msg) {
			return m, nil
		}
		m.loop.Tick()
		return m, m.timer.next()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionRestart:
		if m.loop.Status() == snake.StatusTerminal {
			m.config.Seed = time.Now().UnixNano()
			m.newGame()
		}
		return m, nil
	}

	if dir, ok := ActionDirection(action); ok {
		return m.steer(dir)
	}
	return m, nil
}

// handleMouse treats a left press like a touch on the board: the side of
// the screen it lands on picks the direction.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if dir, ok := ClassifyPoint(m.screen.Bounds(), msg.X, msg.Y); ok {
		return m.steer(dir)
	}
	return m, nil
}

// steer forwards a direction to the loop and schedules the first tick when
// the input started the game.
func (m Model) steer(dir snake.Direction) (tea.Model, tea.Cmd) {
	m.loop.OnInput(dir)
	return m, m.timer.takeStart()
}

// Status returns the state of the current game.
func (m Model) Status() snake.Status {
	return m.loop.Status()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawHUD()

	gridSize := m.loop.Grid().GridSize()
	reqW, reqH := snake.RequiredSize(gridSize)
	if m.screen.Width() < reqW || m.screen.Height() < reqH {
		snake.DrawOverlay(m.screen, "Window too small", fmt.Sprintf("Need %dx%d", reqW, reqH+1))
		return RenderScreen(m.screen)
	}

	board := snake.BoardRect(gridSize, m.screen.Width())
	snake.DrawBoard(m.screen, board, gridSize, m.view.snap)

	switch m.loop.Status() {
	case snake.StatusIdle:
		m.screen.CenterText(board.Bottom(), "Press an arrow key or click to start", core.ColorNotice)
	case snake.StatusTerminal:
		snake.DrawOverlay(m.screen, "Game Over", "Press R to play again")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawHUD draws the title bar and separator.
func (m Model) drawHUD() {
	n := m.loop.Grid().GridSize()
	m.screen.Text(0, 0, fmt.Sprintf(" Snake  %dx%d  %s", n, n, m.loop.Status()), core.ColorDefault)
	m.screen.Fill(core.NewRect(0, 1, m.screen.Width(), 1), '─', core.ColorFrame)
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, logger),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses steer like touches
	)

	_, err := p.Run()
	return err
}
