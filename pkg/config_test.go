package pkg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chessboard.yml")
	body := `theme: blue
fps: 60
startFen: "8/P6k/8/8/8/8/8/K7 w - - 0 1"
clockMinutes: 3
clockIncrementSeconds: 2
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "blue" {
		t.Fatalf("expected theme blue, got %s", cfg.Theme)
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Fatalf("expected 60fps tick, got %s", cfg.TickInterval())
	}
	if cfg.StartFEN == "" {
		t.Fatal("expected startFen set")
	}
	base, inc := cfg.ClockTime()
	if base != 3*time.Minute || inc != 2*time.Second {
		t.Fatalf("expected 3m+2s clocks, got %s+%s", base, inc)
	}
	// Untouched keys keep their defaults.
	if cfg.SSHPort != DefaultConfig().SSHPort {
		t.Fatalf("expected default ssh port, got %s", cfg.SSHPort)
	}
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chessboard.yml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
