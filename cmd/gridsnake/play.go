package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

var (
	flagLogFile string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL  - Steer (the first move starts the clock)
  Mouse click       - Steer towards the clicked side of the screen
  R                 - New game (after game over)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Examples:
  gridsnake play
  gridsnake play --grid-size 20 --tick 200
  gridsnake play --avoid-body --no-reverse
  gridsnake play --log-file /tmp/snake.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log game events at debug level")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early to warn about small windows
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if reqW, reqH := snake.RequiredSize(cfg.Grid.Size); width < reqW || height < reqH+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, a %d grid needs %dx%d\n",
			width, height, cfg.Grid.Size, reqW, reqH+1)
	}

	logger, closeLog, err := newFileLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := tui.Run(runtimeConfig(cfg, width, height), logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newFileLogger returns a logger writing to path, or a discarding logger
// when path is empty. The terminal belongs to the game while it runs.
func newFileLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridsnake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
