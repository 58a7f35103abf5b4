package bobby

// ObstacleSnapshot is the observable state of one obstacle slot.
type ObstacleSnapshot struct {
	Kind     ObstacleKind
	Slot     int
	X, Y     float64
	Rotation float64
	Visible  bool
}

// Snapshot captures the complete run state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Stage     Stage
	Score     int
	Elapsed   float64
	PlayerY   float64
	Velocity  float64
	Obstacles []ObstacleSnapshot
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	l := s.level
	snap := Snapshot{
		Tick:      s.ticks,
		Stage:     s.stage,
		Score:     s.score,
		Elapsed:   l.Elapsed,
		PlayerY:   l.Player.Y,
		Velocity:  l.Player.Velocity,
		Obstacles: make([]ObstacleSnapshot, 0, len(l.Coins)+len(l.Zappers)),
	}
	for _, c := range l.Coins {
		snap.Obstacles = append(snap.Obstacles, ObstacleSnapshot{
			Kind:    KindCoin,
			Slot:    c.Slot,
			X:       c.X,
			Y:       c.Y,
			Visible: c.Visible,
		})
	}
	for _, z := range l.Zappers {
		snap.Obstacles = append(snap.Obstacles, ObstacleSnapshot{
			Kind:     KindZapper,
			Slot:     z.Slot,
			X:        z.X,
			Y:        z.Y,
			Rotation: z.Rotation,
			Visible:  true,
		})
	}
	return snap
}
