// Package bobby implements Bobby Glide, a side-scrolling arcade game.
// Bobby falls under gravity, rises on input, and must survive three levels of
// scrolling coins and spinning zapper blades.
package bobby

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bobby-glide/internal/core"
)

// GameID is used for score storage.
const GameID = "bobby"

// Game wraps a Session with restart handling and rendering for the platform.
type Game struct {
	session *Session
	config  core.RuntimeConfig
	rng     *rand.Rand // Seeds the next run on restart
	seed    int64      // Seed of the current run
	runs    int
}

// New creates a new game instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bobby Glide"
}

// Reset starts a fresh run using the seed in cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.seed = cfg.Seed
	g.session = NewSession(SeededStreams(g.seed))
	g.runs = 1
}

// Resize updates the screen dimensions without touching the run.
func (g *Game) Resize(w, h int) {
	g.config.ScreenW = w
	g.config.ScreenH = h
}

// Step advances the game by one tick lasting dt.
// A restart request on a terminal screen begins a new session.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.Stage().Terminal() {
		g.seed = g.rng.Int63()
		g.session = NewSession(SeededStreams(g.seed))
		g.runs++
		return core.StepResult{State: g.session.State()}
	}
	return g.session.Step(dt.Seconds(), in)
}

// State returns the current HUD state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Seed returns the seed the current run was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Runs returns how many runs have started since Reset.
func (g *Game) Runs() int {
	return g.runs
}
