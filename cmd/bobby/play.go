package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bobby-glide/internal/audio"
	"github.com/vovakirdan/bobby-glide/internal/config"
	"github.com/vovakirdan/bobby-glide/internal/core"
	"github.com/vovakirdan/bobby-glide/internal/games/bobby"
	"github.com/vovakirdan/bobby-glide/internal/platform/tui"
	"github.com/vovakirdan/bobby-glide/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run at level 1.

Controls (configurable under "keys" in the config file):
  Space/Up/W/K - Flap
  P/Esc        - Pause
  R            - Restart (after win or lose)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot to ~/.bobby/screenshots

Examples:
  bobby play
  bobby play --seed 42
  bobby play --sound --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so without a log file logs are dropped
	logger, closeLog, err := newLogger(cfg.Log, "bobby", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Game.TickRate,
		Seed:     cfg.Game.Seed,
	}

	keys := tui.NewKeyMap(cfg.Keys)
	opts := tui.Options{
		Logger: logger,
		Keys:   &keys,
	}
	if dir := config.UserDir(); dir != "" {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if cfg.Audio.Enabled {
		sounds := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer sounds.Cleanup()
			opts.Sounds = sounds
		}
	}

	return tui.Run(bobby.New(), rcfg, opts)
}
