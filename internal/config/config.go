// Package config provides YAML-based configuration loading for Bobby Glide.
// Level layout is fixed in the game package; this covers runtime settings only.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config contains all runtime configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
	Audio   AudioConfig   `yaml:"audio"`
	Keys    KeysConfig    `yaml:"keys"`
}

// GameConfig defines simulation parameters.
type GameConfig struct {
	TickRate int   `yaml:"tick_rate"` // Ticks per second
	Seed     int64 `yaml:"seed"`      // 0 = seed from the clock
}

// StorageConfig defines where finished runs are recorded.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = stderr
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// AudioConfig defines sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear, 0 to 1
}

// KeysConfig lists the keys bound to each action.
type KeysConfig struct {
	Flap    []string `yaml:"flap"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Game.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("game.tick_rate must be positive, got %d", c.Game.TickRate))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must not be negative"))
	}
	keys := map[string][]string{
		"flap":    c.Keys.Flap,
		"pause":   c.Keys.Pause,
		"restart": c.Keys.Restart,
		"quit":    c.Keys.Quit,
	}
	for name, bound := range keys {
		if len(bound) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: at least one key is required", name))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
