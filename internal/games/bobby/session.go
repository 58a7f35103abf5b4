package bobby

import "github.com/vovakirdan/bobby-glide/internal/core"

// Stage is the session's position in the level sequence. The numeric values
// double as the HUD level number (4 = win screen, 5 = lose screen).
type Stage int

const (
	StageLevel1 Stage = iota + 1
	StageLevel2
	StageLevel3
	StageWin
	StageLose
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageLevel1:
		return "level 1"
	case StageLevel2:
		return "level 2"
	case StageLevel3:
		return "level 3"
	case StageWin:
		return "win"
	case StageLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal reports whether the stage ends simulation.
func (s Stage) Terminal() bool {
	return s == StageWin || s == StageLose
}

// Session owns one run: the active level, the cumulative score and the stage.
// It is driven by a single frame loop and is not safe for concurrent use.
type Session struct {
	stage   Stage
	score   int
	level   *Level
	paused  bool
	ticks   uint64
	played  float64 // Seconds simulated across all levels
	streams StreamFunc
}

// NewSession starts a run at level 1.
func NewSession(streams StreamFunc) *Session {
	s := &Session{streams: streams}
	s.enterLevel(1)
	return s
}

// enterLevel rebuilds the obstacle roster for the given level.
func (s *Session) enterLevel(number int) {
	cfg, _ := GetLevel(number)
	s.stage = Stage(number)
	s.level = NewLevel(cfg, s.streams)
}

// Step advances the run by dt seconds. Order within a tick: input, player,
// coins (step then collide), zappers (step then collide), level progress.
func (s *Session) Step(dt float64, in core.InputFrame) core.StepResult {
	if s.stage.Terminal() {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	if dt < 0 {
		dt = 0
	}
	s.ticks++
	s.played += dt

	l := s.level
	l.Elapsed += dt
	number := l.Config.Number

	var events []core.Event

	if in.Has(core.ActionFlap) {
		l.Player.Flap()
	}
	l.Player.Integrate(dt)

	for _, c := range l.Coins {
		c.Step()
		if c.Visible && CoinCollision(l.Player, c) {
			c.Visible = false
			s.score++
			events = append(events, core.Event{Kind: core.EventCoinCollected, Level: number, Slot: c.Slot})
		}
	}

	for _, z := range l.Zappers {
		z.Step()
		if ZapperCollision(l.Player, z) {
			s.stage = StageLose
			events = append(events, core.Event{Kind: core.EventZapped, Level: number, Slot: z.Slot})
			return core.StepResult{State: s.State(), Events: events}
		}
	}

	if l.Done() {
		if number < LevelCount() {
			s.enterLevel(number + 1)
			events = append(events, core.Event{Kind: core.EventLevelAdvanced, Level: number + 1})
		} else {
			s.stage = StageWin
			events = append(events, core.Event{Kind: core.EventWon, Level: number})
		}
	}

	return core.StepResult{State: s.State(), Events: events}
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// Score returns the number of coins collected so far.
func (s *Session) Score() int {
	return s.score
}

// Level returns the active level. On a terminal stage it is the level the
// run ended in, kept for the final frame.
func (s *Session) Level() *Level {
	return s.level
}

// Distance returns whole seconds survived in the current level.
func (s *Session) Distance() int {
	return int(s.level.Elapsed)
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Played returns seconds simulated across the whole run.
func (s *Session) Played() float64 {
	return s.played
}

// State returns the HUD view of the session.
func (s *Session) State() core.GameState {
	st := core.GameState{
		Score:    s.score,
		Level:    int(s.stage),
		Distance: s.Distance(),
		Paused:   s.paused,
		GameOver: s.stage.Terminal(),
	}
	switch s.stage {
	case StageWin:
		st.Outcome = core.OutcomeWin
	case StageLose:
		st.Outcome = core.OutcomeLose
	}
	return st
}
