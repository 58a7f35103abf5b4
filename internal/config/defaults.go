package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bobby.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickRate: 60,
			Seed:     0,
		},
		Storage: StorageConfig{
			Path: "~/.bobby/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.bobby/bobby.log",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Keys: KeysConfig{
			Flap:    []string{" ", "up", "w", "k"},
			Pause:   []string{"p", "esc"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
