package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(default) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() differ:\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
game:
  seed: 42
ssh:
  idle_timeout: 5m
keys:
  flap: ["j"]
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Game.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", cfg.Game.Seed)
	}
	if cfg.Game.TickRate != 60 {
		t.Errorf("TickRate = %d, missing fields should keep the default 60", cfg.Game.TickRate)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 5m", cfg.SSH.IdleTimeout)
	}
	if !reflect.DeepEqual(cfg.Keys.Flap, []string{"j"}) {
		t.Errorf("Flap = %v, expected [j]", cfg.Keys.Flap)
	}
	if len(cfg.Keys.Quit) == 0 {
		t.Error("unset key lists should keep their defaults")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("game: [")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero tick rate", func(c *Config) { c.Game.TickRate = 0 }, "tick_rate"},
		{"negative tick rate", func(c *Config) { c.Game.TickRate = -5 }, "tick_rate"},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"volume too high", func(c *Config) { c.Audio.Volume = 1.5 }, "audio.volume"},
		{"negative idle timeout", func(c *Config) { c.SSH.IdleTimeout = -time.Second }, "idle_timeout"},
		{"no flap keys", func(c *Config) { c.Keys.Flap = nil }, "keys.flap"},
		{"no quit keys", func(c *Config) { c.Keys.Quit = []string{} }, "keys.quit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("error = %v, expected it to mention %q", err, tc.errMsg)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bobby.yaml")
	if err := os.WriteFile(path, []byte("game:\n  tick_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Game.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("game: ["), 0o600)
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("game:\n  tick_rate: 0\n"), 0o600)
	if _, err := Load(invalid); err == nil {
		t.Error("invalid custom config should fail validation")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("round trip changed the config:\n%s", data)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, want string
	}{
		{"~/.bobby/scores.db", filepath.Join(home, ".bobby/scores.db")},
		{"~", home},
		{"/tmp/x.db", "/tmp/x.db"},
		{"relative/x.db", "relative/x.db"},
		{"~other/x", "~other/x"},
	}
	for _, tc := range tests {
		if got := ExpandPath(tc.in); got != tc.want {
			t.Errorf("ExpandPath(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
