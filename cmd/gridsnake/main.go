// gridsnake is a terminal snake game: the snake moves one cell per tick on a
// square grid, grows when it eats food and dies on the walls or its own body.
//
// Usage:
//
//	gridsnake play             - Play in this terminal
//	gridsnake serve            - Start SSH server for remote play
//	gridsnake replay <moves>   - Run a move script headless and print frames
//	gridsnake config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Path to a YAML config file
//	--grid-size <n>     - Cells per side (default: 11)
//	--tick <ms>         - Milliseconds per tick (default: 700)
//	--seed <value>      - RNG seed for reproducible food placement
//	--avoid-body        - Never place food on the snake
//	--no-reverse        - Ignore turns straight back into the body
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

var (
	// Global flags
	flagConfig    string
	flagGridSize  int
	flagTickMS    int
	flagSeed      int64
	flagAvoidBody bool
	flagNoReverse bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Snake on a small grid, in your terminal",
	Long: `gridsnake is the classic snake game on a fixed square grid.

The game waits for the first arrow key, then moves the snake one cell per
tick. Eating food makes the snake one cell longer. Hitting a wall or the
snake's own body ends the game.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  replay   - Run a move script without a terminal UI
  config   - Print the effective configuration

Examples:
  gridsnake play
  gridsnake play --grid-size 15 --tick 300
  gridsnake serve --ssh :2222
  gridsnake replay DDDRRU --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagGridSize, "grid-size", core.DefaultGridSize, "Cells per side of the grid")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", int(core.DefaultTickInterval.Milliseconds()), "Milliseconds per tick")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagAvoidBody, "avoid-body", false, "Never place food on the snake")
	rootCmd.PersistentFlags().BoolVar(&flagNoReverse, "no-reverse", false, "Ignore turns straight back into the body")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the YAML configuration and applies any flags the user
// set explicitly on top of it. It also returns where the file came from.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, string, error) {
	cfg, source, err := config.LoadSnakeFrom(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("grid-size") {
		cfg.Grid.Size = flagGridSize
	}
	if flags.Changed("tick") {
		cfg.Grid.TickIntervalMS = flagTickMS
	}
	if flags.Changed("avoid-body") {
		cfg.Policies.AvoidBodyWhenPlacingFood = flagAvoidBody
	}
	if flags.Changed("no-reverse") {
		cfg.Policies.ForbidReversal = flagNoReverse
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, source, nil
}

// runtimeConfig builds the runtime configuration for a screen of the given size.
func runtimeConfig(cfg config.SnakeConfig, width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.Seed = flagSeed
	return cfg.Apply(rc)
}
