package bobby

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/bobby-glide/internal/core"
)

const tick = time.Second / 60

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%5 == 0 {
			inputs[i].Set(core.ActionFlap)
		}
	}

	play := func() Snapshot {
		g := New()
		g.Reset(testConfig(2024))
		for _, in := range inputs {
			if g.Step(in, tick).State.GameOver {
				break
			}
		}
		return g.Session().Snapshot()
	}

	a, b := play(), play()
	if a.Tick != b.Tick || a.Score != b.Score || a.Stage != b.Stage || a.PlayerY != b.PlayerY {
		t.Errorf("Determinism failed:\n%+v\n%+v", a, b)
	}
}

func TestGameRestartAfterLose(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.Session().stage = StageLose

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	result := g.Step(restart, tick)

	if result.State.GameOver {
		t.Error("restart should begin a new run")
	}
	if g.Session().Stage() != StageLevel1 {
		t.Errorf("new run should start at level 1, got %v", g.Session().Stage())
	}
	if g.Runs() != 2 {
		t.Errorf("Runs = %d, expected 2", g.Runs())
	}
}

func TestGameRestartIgnoredWhilePlaying(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	before := g.Session()

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart, tick)

	if g.Session() != before || g.Runs() != 1 {
		t.Error("restart during play should be ignored")
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig(1)
	g := New()
	g.Reset(cfg)
	g.Session().Level().Zappers[0].X = 0 // Bring the blade on screen

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Coins: 0") {
		t.Errorf("HUD should show coins, got %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Level: 1/3") {
		t.Errorf("HUD should show level, got %q", screen.Row(0))
	}
	if screen.Get(0, cfg.ScreenH-1) != GroundChar {
		t.Errorf("Ground should be drawn at bottom, got %q", screen.Get(0, cfg.ScreenH-1))
	}
	if !strings.ContainsRune(screen.String(), PlayerChar) {
		t.Error("player should be drawn")
	}
	if !strings.ContainsRune(screen.String(), BladeChar) {
		t.Error("zapper blade should be drawn")
	}
}

func TestGameRenderTerminalScreens(t *testing.T) {
	tests := []struct {
		stage Stage
		title string
	}{
		{StageWin, "YOU MADE IT!"},
		{StageLose, "ZAPPED!"},
	}

	for _, tc := range tests {
		t.Run(tc.stage.String(), func(t *testing.T) {
			g := New()
			g.Reset(testConfig(1))
			g.Session().score = 3
			g.Session().stage = tc.stage

			screen := core.NewScreen(80, 24)
			g.Render(screen)
			out := screen.String()

			if !strings.Contains(out, tc.title) {
				t.Errorf("terminal screen should contain %q", tc.title)
			}
			if !strings.Contains(out, "Coins: 3") {
				t.Error("terminal screen should show the cumulative score")
			}
			if strings.ContainsRune(out, PlayerChar) {
				t.Error("terminal screen should not draw the playfield")
			}
		})
	}
}

func TestGameRenderHiddenCoin(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	c := g.Session().Level().Coins[0]
	c.X, c.Y = 0, 0
	c.Visible = false

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if strings.ContainsRune(screen.String(), CoinChar) {
		t.Error("hidden coin should not be drawn")
	}
}

func TestGameRenderKeepsPlayerInPlayfield(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		row  int
	}{
		{"far below the baseline", -5, 22},
		{"far above the ceiling", 5, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			g.Reset(testConfig(1))
			g.Session().Level().Player.Y = tc.y

			screen := core.NewScreen(80, 24)
			g.Render(screen)

			if !strings.ContainsRune(screen.Row(tc.row), PlayerChar) {
				t.Errorf("player should be clamped to row %d, got %q", tc.row, screen.Row(tc.row))
			}
			if strings.ContainsRune(screen.Row(23), PlayerChar) {
				t.Error("player must not overwrite the ground")
			}
			if strings.ContainsRune(screen.Row(0), PlayerChar) {
				t.Error("player must not overwrite the HUD")
			}
		})
	}
}
