// Package config provides YAML-based game configuration loading for the
// snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid     GridConfig   `yaml:"grid"`
	Policies PolicyConfig `yaml:"policies"`
}

// GridConfig defines the board and its clock.
type GridConfig struct {
	Size           int `yaml:"size"`
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// PolicyConfig toggles the optional rule variants. Both default to off.
type PolicyConfig struct {
	AvoidBodyWhenPlacingFood bool `yaml:"avoid_body_when_placing_food"`
	ForbidReversal           bool `yaml:"forbid_reversal"`
}

// TickInterval returns the tick period as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Grid.TickIntervalMS) * time.Millisecond
}

// Validate checks that the board and clock are usable.
func (c SnakeConfig) Validate() error {
	if c.Grid.Size < 1 {
		return fmt.Errorf("%w: grid.size must be positive, got %d", ErrInvalidConfig, c.Grid.Size)
	}
	if c.Grid.Size > core.MaxGridSize {
		return fmt.Errorf("%w: grid.size must be at most %d, got %d", ErrInvalidConfig, core.MaxGridSize, c.Grid.Size)
	}
	if c.Grid.TickIntervalMS < 1 {
		return fmt.Errorf("%w: grid.tick_interval_ms must be positive, got %d", ErrInvalidConfig, c.Grid.TickIntervalMS)
	}
	return nil
}

// Apply copies the game settings into a runtime config, leaving screen size
// and seed untouched.
func (c SnakeConfig) Apply(rc core.RuntimeConfig) core.RuntimeConfig {
	rc.GridSize = c.Grid.Size
	rc.TickInterval = c.TickInterval()
	rc.AvoidBodyWhenPlacingFood = c.Policies.AvoidBodyWhenPlacingFood
	rc.ForbidReversal = c.Policies.ForbidReversal
	return rc
}
