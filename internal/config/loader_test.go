package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := writeConfig(t, `
grid:
  size: 15
  tick_interval_ms: 250
policies:
  avoid_body_when_placing_food: true
`)

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Grid.Size != 15 {
		t.Errorf("Grid.Size = %d, expected 15", cfg.Grid.Size)
	}
	if cfg.TickInterval() != 250*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 250ms", cfg.TickInterval())
	}
	if !cfg.Policies.AvoidBodyWhenPlacingFood {
		t.Error("AvoidBodyWhenPlacingFood should be true")
	}
	if cfg.Policies.ForbidReversal {
		t.Error("ForbidReversal should keep its default")
	}
}

func TestLoadSnakePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "policies:\n  forbid_reversal: true\n")

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Size != core.DefaultGridSize {
		t.Errorf("Grid.Size = %d, expected default %d", cfg.Grid.Size, core.DefaultGridSize)
	}
	if cfg.TickInterval() != core.DefaultTickInterval {
		t.Errorf("TickInterval() = %v, expected default", cfg.TickInterval())
	}
	if !cfg.Policies.ForbidReversal {
		t.Error("ForbidReversal should be true")
	}
}

func TestLoadSnakeErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeConfig(t, "grid: [not, a, map]\n")
	if _, err := LoadSnake(path); err == nil {
		t.Error("expected error for malformed YAML")
	}

	path = writeConfig(t, "grid:\n  size: 0\n")
	_, err := LoadSnake(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SnakeConfig
		wantErr bool
	}{
		{"defaults", DefaultSnakeConfig(), false},
		{"one cell", SnakeConfig{Grid: GridConfig{Size: 1, TickIntervalMS: 1}}, false},
		{"zero size", SnakeConfig{Grid: GridConfig{Size: 0, TickIntervalMS: 700}}, true},
		{"negative interval", SnakeConfig{Grid: GridConfig{Size: 11, TickIntervalMS: -5}}, true},
		{"largest grid", SnakeConfig{Grid: GridConfig{Size: core.MaxGridSize, TickIntervalMS: 700}}, false},
		{"grid too large", SnakeConfig{Grid: GridConfig{Size: core.MaxGridSize + 1, TickIntervalMS: 700}}, true},
		{"overflowing grid", SnakeConfig{Grid: GridConfig{Size: 1 << 31, TickIntervalMS: 700}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApply(t *testing.T) {
	cfg := SnakeConfig{
		Grid:     GridConfig{Size: 9, TickIntervalMS: 100},
		Policies: PolicyConfig{ForbidReversal: true},
	}
	rc := cfg.Apply(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})

	if rc.GridSize != 9 || rc.TickInterval != 100*time.Millisecond {
		t.Errorf("Apply() grid = %d/%v, expected 9/100ms", rc.GridSize, rc.TickInterval)
	}
	if !rc.ForbidReversal || rc.AvoidBodyWhenPlacingFood {
		t.Errorf("Apply() policies = %+v", rc)
	}
	if rc.ScreenW != 80 || rc.Seed != 7 {
		t.Error("Apply() should keep screen size and seed")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Policies.AvoidBodyWhenPlacingFood = true

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := parse(data)
	if err != nil {
		t.Fatalf("parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}

// isolate points HOME and the working directory at empty temp dirs and
// returns them.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestLoadSnakeFromSearchOrder(t *testing.T) {
	home, _ := isolate(t)

	cfg, src, err := LoadSnakeFrom("")
	if err != nil {
		t.Fatalf("LoadSnakeFrom() failed: %v", err)
	}
	if src != SourceEmbedded || cfg != DefaultSnakeConfig() {
		t.Errorf("no files: got %+v from %q, expected embedded defaults", cfg, src)
	}

	writeFile(t, filepath.Join("configs", "snake.yaml"), "grid:\n  size: 9\n")
	cfg, src, _ = LoadSnakeFrom("")
	if src != filepath.Join("configs", "snake.yaml") || cfg.Grid.Size != 9 {
		t.Errorf("local file: got size %d from %q", cfg.Grid.Size, src)
	}

	userPath := filepath.Join(home, ".gridsnake", "config.yaml")
	writeFile(t, userPath, "grid:\n  size: 13\n")
	cfg, src, _ = LoadSnakeFrom("")
	if src != userPath || cfg.Grid.Size != 13 {
		t.Errorf("user file: got size %d from %q, expected 13 from %q", cfg.Grid.Size, src, userPath)
	}
}

func TestLoadSnakeFromSkipsBrokenOptionalFile(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".gridsnake", "config.yaml"), "grid:\n  size: -1\n")
	writeFile(t, filepath.Join("configs", "snake.yaml"), "grid:\n  size: 7\n")

	cfg, src, err := LoadSnakeFrom("")
	if err != nil {
		t.Fatalf("LoadSnakeFrom() failed: %v", err)
	}
	if cfg.Grid.Size != 7 || src != filepath.Join("configs", "snake.yaml") {
		t.Errorf("got size %d from %q, expected the local file", cfg.Grid.Size, src)
	}
}
