package config

import (
	_ "embed"

	"github.com/vovakirdan/gridsnake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the classic settings. It must match defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:           core.DefaultGridSize,
			TickIntervalMS: int(core.DefaultTickInterval.Milliseconds()),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
