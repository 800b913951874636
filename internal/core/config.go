package core

import "time"

// Classic board: 11 by 11 cells, one step every 700ms.
const (
	DefaultGridSize     = 11
	DefaultTickInterval = 700 * time.Millisecond
)

// MaxGridSize is the largest board accepted. At two columns per cell it is
// already wider than any real terminal.
const MaxGridSize = 1024

// RuntimeConfig contains configuration passed to a game at construction.
// The platform fills it from the YAML config and command-line flags.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	GridSize     int           // Cells per side of the square board
	TickInterval time.Duration // Fixed period between movement ticks
	Seed         int64         // RNG seed for food placement (0 = time based)

	// Opt-in rule variants, both off by default.
	AvoidBodyWhenPlacingFood bool
	ForbidReversal           bool
}

// DefaultConfig returns the classic settings for an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		GridSize:     DefaultGridSize,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}
