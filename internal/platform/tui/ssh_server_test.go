package tui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestResolveHostKeyPathCreatesDirectory(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath error: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestResolveHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath error: %v", err)
	}
	if want := filepath.Join(home, ".gridsnake", "host_key"); got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
}

func TestSessionConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Game.GridSize = 7

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer error: %v", err)
	}

	a := srv.sessionConfig(100, 40)
	if a.ScreenW != 100 || a.ScreenH != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", a.ScreenW, a.ScreenH)
	}
	if a.GridSize != 7 {
		t.Errorf("GridSize = %d, expected the template's 7", a.GridSize)
	}
	if a.Seed == 0 {
		t.Error("each session should get a seed")
	}
	if srv.config.Game.ScreenW != cfg.Game.ScreenW {
		t.Error("sessionConfig must not modify the template")
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d, expected 0", srv.ActiveSessions())
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
}

func TestSessionConfigKeepsFixedSeed(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Game.Seed = 42

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer error: %v", err)
	}
	if got := srv.sessionConfig(80, 24).Seed; got != 42 {
		t.Errorf("Seed = %d, expected the configured 42", got)
	}
}

func TestServeReturnsAfterDirectShutdown(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer error: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background()) }()

	// Shutdown may land before the listener is up, so keep closing it
	// until Serve notices.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Serve returned %v, expected nil", err)
			}
			return
		case <-ticker.C:
			_ = srv.Shutdown()
		case <-deadline:
			t.Fatal("Serve did not return after Shutdown")
		}
	}
}

func TestServeReturnsOnCancel(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v, expected nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
