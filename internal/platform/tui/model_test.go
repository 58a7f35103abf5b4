package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bobby-glide/internal/core"
	"github.com/vovakirdan/bobby-glide/internal/games/bobby"
	"github.com/vovakirdan/bobby-glide/internal/storage"
)

type fakeStore struct {
	runs []storage.RunResult
}

func (f *fakeStore) SaveRun(run storage.RunResult) (string, error) {
	f.runs = append(f.runs, run)
	return "id", nil
}

type fakeSounds struct {
	played []core.EventKind
}

func (f *fakeSounds) Play(kind core.EventKind) {
	f.played = append(f.played, kind)
}

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(store RunStore, sounds SoundPlayer) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	return NewModel(bobby.New(), cfg, Options{Store: store, Sounds: sounds})
}

// tickAt feeds one tick n frames after epoch.
func tickAt(m Model, n int) Model {
	next, _ := m.Update(TickMsg(epoch.Add(time.Duration(n) * time.Second / 60)))
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// armZapper places the first zapper so the next tick collides with the player.
func armZapper(g *bobby.Game) {
	l := g.Session().Level()
	p := l.Player
	p.Y = 0
	z := l.Zappers[0]
	z.X = p.X - z.BaseX + bobby.ScrollStep
	z.Y = p.AbsY() - z.BaseY
	z.Rotation = 0
}

func TestModelSavesLostRunOnce(t *testing.T) {
	store := &fakeStore{}
	sounds := &fakeSounds{}
	m := newTestModel(store, sounds)

	m = tickAt(m, 0)
	armZapper(m.game)
	m = tickAt(m, 1)

	if !m.GameState().GameOver || m.GameState().Outcome != core.OutcomeLose {
		t.Fatalf("state = %+v, expected lose", m.GameState())
	}

	for i := 2; i < 10; i++ {
		m = tickAt(m, i)
	}

	if len(store.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(store.runs))
	}
	run := store.runs[0]
	if run.Outcome != "lose" || run.Stage != int(bobby.StageLose) || run.Player != "local" {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.GameID != bobby.GameID || run.Seed != 7 {
		t.Errorf("GameID/Seed = %s/%d, expected bobby/7", run.GameID, run.Seed)
	}

	zaps := 0
	for _, k := range sounds.played {
		if k == core.EventZapped {
			zaps++
		}
	}
	if zaps != 1 {
		t.Errorf("zap cue played %d times, expected 1", zaps)
	}
}

func TestModelRestartRecordsNewRun(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(store, nil)

	m = tickAt(m, 0)
	armZapper(m.game)
	m = tickAt(m, 1)

	m, _ = press(m, runeKey('r'))
	m = tickAt(m, 2)
	if m.GameState().GameOver {
		t.Fatal("restart should start a new run")
	}
	if m.game.Runs() != 2 {
		t.Fatalf("Runs = %d, expected 2", m.game.Runs())
	}

	armZapper(m.game)
	m = tickAt(m, 3)

	if len(store.runs) != 2 {
		t.Errorf("saved %d runs, expected 2", len(store.runs))
	}
}

func TestModelQuitRecordsUnfinishedRun(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(store, nil)

	for i := 0; i < 30; i++ {
		m = tickAt(m, i)
	}
	m, cmd := press(m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should issue tea.Quit")
	}
	if len(store.runs) != 1 || store.runs[0].Outcome != "quit" {
		t.Errorf("runs = %+v, expected one quit run", store.runs)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitBeforePlayingRecordsNothing(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(store, nil)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if len(store.runs) != 0 {
		t.Errorf("saved %d runs, expected none", len(store.runs))
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	m := newTestModel(nil, nil)
	m = tickAt(m, 0)
	m, _ = press(m, runeKey('r'))
	m = tickAt(m, 1)

	if m.game.Runs() != 1 {
		t.Errorf("Runs = %d, restart during play should be ignored", m.game.Runs())
	}
}

func TestModelPauseViewShowsKeys(t *testing.T) {
	m := newTestModel(nil, nil)
	m = tickAt(m, 0)
	m, _ = press(m, runeKey('p'))
	m = tickAt(m, 1)

	if !m.GameState().Paused {
		t.Fatal("expected paused state")
	}
	view := m.View()
	if !strings.Contains(view, "PAUSED") {
		t.Error("pause banner missing")
	}
	if !strings.Contains(view, "flap") {
		t.Error("key hints missing from pause view")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(nil, nil)
	for i := 0; i < 20; i++ {
		m = tickAt(m, i)
	}
	before := m.game.Session()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.game.Session() != before {
		t.Error("resize must not restart the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
	m := NewModel(bobby.New(), cfg, Options{ScreenshotDir: dir})

	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "bobby_") {
		t.Fatalf("expected one bobby screenshot, got %v", entries)
	}
	data, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if !strings.Contains(string(data), "Coins: 0") {
		t.Error("screenshot should contain the HUD")
	}
}

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want time.Duration
	}{
		{"first tick is nominal", time.Time{}, epoch, time.Second / 60},
		{"measured gap", epoch, epoch.Add(20 * time.Millisecond), 20 * time.Millisecond},
		{"stall is capped", epoch, epoch.Add(3 * time.Second), maxFrameDelta},
		{"clock going backwards", epoch, epoch.Add(-time.Second), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameDelta(tc.last, tc.now, 60); got != tc.want {
				t.Errorf("frameDelta = %v, expected %v", got, tc.want)
			}
		})
	}
}
