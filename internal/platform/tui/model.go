package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bobby-glide/internal/core"
	"github.com/vovakirdan/bobby-glide/internal/games/bobby"
	"github.com/vovakirdan/bobby-glide/internal/storage"
)

// maxFrameDelta caps dt after a stall so a long pause in delivery cannot
// teleport obstacles through the player.
const maxFrameDelta = 250 * time.Millisecond

// RunStore records finished runs.
type RunStore interface {
	SaveRun(run storage.RunResult) (string, error)
}

// SoundPlayer plays a cue for a game event.
type SoundPlayer interface {
	Play(kind core.EventKind)
}

// Options are the optional collaborators of a Model. Nil fields are disabled.
type Options struct {
	Store         RunStore
	Sounds        SoundPlayer
	Logger        *log.Logger
	Keys          *KeyMap
	Palette       *Palette
	Player        string // Recorded with each run; defaults to "local"
	ScreenshotDir string // Empty disables screenshots
}

// Model is the Bubble Tea model for a Bobby Glide session.
type Model struct {
	game       *bobby.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	palette    *Palette
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	savedRun   int // Run number last written to the store
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *bobby.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	palette := opts.Palette
	if palette == nil {
		palette = NewPalette(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       keys,
		palette:    palette,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "player", m.opts.Player, "seed", m.game.Seed())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.finishRun(core.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the run and only changes the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	runs := m.game.Runs()
	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	if m.game.Runs() != runs {
		m.logger.Info("run restarted", "player", m.opts.Player, "seed", m.game.Seed())
	}

	m.handleEvents(result.Events)

	if m.gameState.GameOver {
		m.finishRun(m.gameState.Outcome)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// frameDelta returns the simulated time for a tick arriving at now.
// The first tick uses the nominal interval.
func frameDelta(last, now time.Time, tickRate int) time.Duration {
	if last.IsZero() {
		return time.Second / time.Duration(tickRate)
	}
	dt := now.Sub(last)
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrameDelta)
}

func (m *Model) handleEvents(events []core.Event) {
	for _, e := range events {
		if m.opts.Sounds != nil {
			m.opts.Sounds.Play(e.Kind)
		}
		switch e.Kind {
		case core.EventCoinCollected:
			m.logger.Debug("coin collected", "level", e.Level, "slot", e.Slot, "score", m.gameState.Score)
		case core.EventLevelAdvanced:
			m.logger.Info("level advanced", "level", e.Level, "score", m.gameState.Score)
		case core.EventZapped:
			m.logger.Info("zapped", "level", e.Level, "slot", e.Slot, "score", m.gameState.Score)
		case core.EventWon:
			m.logger.Info("won", "score", m.gameState.Score)
		}
	}
}

// finishRun records the current run once. Runs quit before any time passed
// are not recorded.
func (m *Model) finishRun(outcome core.Outcome) {
	run := m.game.Runs()
	if m.savedRun == run {
		return
	}
	s := m.game.Session()
	if outcome == core.OutcomeQuit && (s.Stage().Terminal() || s.Played() == 0) {
		return
	}
	m.savedRun = run

	m.logger.Info("run finished",
		"player", m.opts.Player,
		"outcome", outcome,
		"score", s.Score(),
		"stage", s.Stage(),
		"seconds", fmt.Sprintf("%.1f", s.Played()),
	)

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.RunResult{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    s.Score(),
		Stage:    int(s.Stage()),
		Outcome:  string(outcome),
		Duration: s.Played(),
		Seed:     m.game.Seed(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current frame as text.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.Paused {
		m.drawKeyHints()
	}
	return m.palette.Render(m.screen)
}

// drawKeyHints lists the bindings under the pause banner.
func (m Model) drawKeyHints() {
	hints := make([]string, 0, 4)
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	m.screen.DrawTextCentered(m.screen.Height()/2+2, strings.Join(hints, "  |  "), core.ColorGray)
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game *bobby.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
