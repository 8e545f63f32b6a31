package pkg

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries everything tunable about the board app and the session
// server. Zero values fall back to the defaults below, so a partial YAML
// file only overrides what it names.
type Config struct {
	LogPath   string `yaml:"logPath"`
	Theme     string `yaml:"theme"`
	StartFEN  string `yaml:"startFen"`
	SSHPort   string `yaml:"sshPort"`
	HostKey   string `yaml:"hostKey"`
	ClientCmd string `yaml:"clientCmd"`
	// FPS is the render/tick rate of the interactive board.
	FPS int `yaml:"fps"`
	// ClockMinutes and ClockIncrementSeconds configure the display
	// clocks. Zero minutes disables them.
	ClockMinutes          int `yaml:"clockMinutes"`
	ClockIncrementSeconds int `yaml:"clockIncrementSeconds"`
	// IdleMinutes is how long a server session may sit idle before it is
	// cleaned up.
	IdleMinutes int `yaml:"idleMinutes"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogPath:      "./log",
		Theme:        "basic",
		SSHPort:      ":2222",
		ClientCmd:    "chessboard",
		FPS:          30,
		ClockMinutes: 10,
		IdleMinutes:  5,
	}
}

// LoadConfig reads a YAML config file on top of the defaults. A missing
// file is not an error; it just means defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("'%s': %v", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("'%s': %v", path, err)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}
	return cfg, nil
}

// TickInterval returns the duration between board ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// IdleTimeout returns how long a session may sit idle.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleMinutes) * time.Minute
}

// ClockTime returns the base time and increment for the display clocks.
func (c Config) ClockTime() (base, increment time.Duration) {
	return time.Duration(c.ClockMinutes) * time.Minute,
		time.Duration(c.ClockIncrementSeconds) * time.Second
}
