package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeQuit Outcome = "quit"
)

// GameState is the read-only HUD view of a run.
type GameState struct {
	Score    int     // Coins collected across all levels
	Level    int     // 1-3 while playing, 4 = win screen, 5 = lose screen
	Distance int     // Whole seconds survived in the current level
	Paused   bool    // Whether the game is paused
	GameOver bool    // Win or lose screen reached
	Outcome  Outcome // Set once GameOver is true
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventCoinCollected EventKind = iota + 1
	EventZapped
	EventLevelAdvanced
	EventWon
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin_collected"
	case EventZapped:
		return "zapped"
	case EventLevelAdvanced:
		return "level_advanced"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event is a discrete outcome of one tick.
type Event struct {
	Kind  EventKind
	Level int // Level the event happened in
	Slot  int // Obstacle slot for coin/zapper events
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
