package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

var flagQuiet bool

// replayHUDWidth keeps the tick line readable above small boards.
const replayHUDWidth = 40

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Run a move script and print every frame",
	Long: `Run a game without a terminal UI. Each symbol of the script is one tick:
U, D, L and R turn the snake before the tick, '.' keeps the current heading.
The game starts on the first turn, so leading dots do nothing.

Use --seed to make food placement reproducible.

Examples:
  gridsnake replay DDDRRU --seed 42
  gridsnake replay R.....D.... --grid-size 7 --quiet`,
	Args: cobra.ExactArgs(1),
	Run:  runReplayCmd,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Print only the final frame")
}

func runReplayCmd(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := runtimeConfig(cfg, 0, 0)
	if err := runReplay(cmd.OutOrStdout(), rc, args[0], flagQuiet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseMoves turns a move script into per-tick directions. A zero
// Direction means no input for that tick.
func parseMoves(script string) ([]snake.Direction, error) {
	moves := make([]snake.Direction, 0, len(script))
	for _, r := range strings.TrimSpace(script) {
		if r == '.' {
			moves = append(moves, 0)
			continue
		}
		d, err := snake.ParseDirection(string(r))
		if err != nil {
			return nil, fmt.Errorf("move %d (%q): %w", len(moves)+1, r, err)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// runReplay plays the script against a fresh game and writes frames to w.
// It stops early when the game ends.
func runReplay(w io.Writer, rc core.RuntimeConfig, script string, quiet bool) error {
	moves, err := parseMoves(script)
	if err != nil {
		return err
	}

	grid := snake.GridStateFromConfig(rc)
	boardW, boardH := snake.RequiredSize(grid.GridSize())
	screen := core.NewScreen(max(boardW, replayHUDWidth), boardH)
	board := snake.BoardRect(grid.GridSize(), screen.Width())

	var (
		last     snake.Snapshot
		gameOver bool
		loop     *snake.GameLoop
	)
	printFrame := func(snap snake.Snapshot) {
		screen.Clear()
		tick := uint64(0)
		if loop != nil {
			tick = loop.Ticks()
		}
		hud := fmt.Sprintf("tick %d  length %d", tick, snap.Length())
		if head, ok := snap.Head(); ok {
			hud += "  head " + head.String()
		}
		screen.Text(0, 0, hud, core.ColorDefault)
		snake.DrawBoard(screen, board, grid.GridSize(), snap)
		fmt.Fprintln(w, screen.String())
	}

	loop = snake.NewGameLoop(grid, snake.LoopOptions{
		TickInterval: rc.TickInterval,
		Renderer: snake.RenderFunc(func(snap snake.Snapshot) {
			last = snap
			if !quiet {
				printFrame(snap)
			}
		}),
		Notifier: snake.NotifyFunc(func() { gameOver = true }),
		Logger:   log.New(io.Discard),
	})

	for _, d := range moves {
		if d != 0 {
			loop.OnInput(d)
		}
		loop.Tick()
		if gameOver {
			break
		}
	}

	if quiet {
		printFrame(last)
	}
	if gameOver {
		fmt.Fprintf(w, "Game over after %d ticks, length %d\n", loop.Ticks(), last.Length())
	}
	return nil
}
