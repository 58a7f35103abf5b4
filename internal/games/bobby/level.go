package bobby

// LevelConfig describes one level: how many obstacles of each kind it fields
// and how long the player must survive to clear it.
type LevelConfig struct {
	Number  int
	Name    string
	Coins   int
	Zappers int
	Target  float64 // Seconds to survive
	PlayerX float64
}

// levels is the fixed campaign, in play order.
var levels = []LevelConfig{
	{Number: 1, Name: "Warm-up", Coins: 1, Zappers: 1, Target: 9, PlayerX: PlayerX},
	{Number: 2, Name: "Crosswind", Coins: 2, Zappers: 2, Target: 14, PlayerX: PlayerX},
	{Number: 3, Name: "Blade Run", Coins: 3, Zappers: 3, Target: 19, PlayerX: PlayerX},
}

// LevelCount returns the number of playable levels.
func LevelCount() int {
	return len(levels)
}

// GetLevel returns the config for a 1-based level number.
func GetLevel(number int) (LevelConfig, bool) {
	if number < 1 || number > len(levels) {
		return LevelConfig{}, false
	}
	return levels[number-1], true
}

// Levels returns a copy of the campaign table.
func Levels() []LevelConfig {
	out := make([]LevelConfig, len(levels))
	copy(out, levels)
	return out
}

// Level is the live state of the level being played. It is rebuilt from its
// LevelConfig on entry and dropped on exit.
type Level struct {
	Config  LevelConfig
	Player  *Player
	Coins   []*Coin
	Zappers []*Zapper
	Elapsed float64 // Seconds since level start
}

// NewLevel builds a level, giving every obstacle slot its own random stream.
func NewLevel(cfg LevelConfig, streams StreamFunc) *Level {
	l := &Level{
		Config:  cfg,
		Player:  NewPlayer(cfg.PlayerX),
		Coins:   make([]*Coin, cfg.Coins),
		Zappers: make([]*Zapper, cfg.Zappers),
	}
	for i := range l.Coins {
		l.Coins[i] = NewCoin(cfg.Number, i, streams(cfg.Number, i, KindCoin))
	}
	for i := range l.Zappers {
		l.Zappers[i] = NewZapper(cfg.Number, i, streams(cfg.Number, i, KindZapper))
	}
	return l
}

// Done reports whether the survival target has been exceeded.
func (l *Level) Done() bool {
	return l.Elapsed > l.Config.Target
}
