package bobby

import "github.com/vovakirdan/bobby-glide/internal/core"

// Player physics constants, in world units (screen spans [-1, 1]).
const (
	Gravity     = 9.8  // Downward acceleration, units/s²
	FallDamping = 0.4  // Scales velocity into vertical displacement
	FlapLift    = 0.03 // Height gained per flap
	FlapCeiling = 1.01 // Flaps only lift while Y is below this

	PlayerX        = -0.72 // Fixed horizontal position
	PlayerBaseline = -0.5  // World Y that corresponds to Y == 0
	PlayerHalfW    = 0.08
	PlayerHalfH    = 0.1
	PlayerStartY   = 0 // Starts on the baseline
)

// Player is Bobby, the glider. Only the vertical axis moves.
type Player struct {
	X        float64 // Fixed for the whole level
	Y        float64 // Offset above the baseline; may dip below zero
	Velocity float64 // Accumulated fall speed, reset by Flap
	Baseline float64
	HalfW    float64
	HalfH    float64
}

// NewPlayer creates a player at its starting height.
func NewPlayer(x float64) *Player {
	return &Player{
		X:        x,
		Y:        PlayerStartY,
		Baseline: PlayerBaseline,
		HalfW:    PlayerHalfW,
		HalfH:    PlayerHalfH,
	}
}

// Integrate advances the fall by dt seconds. Velocity always grows with
// gravity; the player only descends while above the baseline.
func (p *Player) Integrate(dt float64) {
	if dt <= 0 {
		return
	}
	p.Velocity += Gravity * dt
	if p.Y > 0 {
		p.Y -= p.Velocity * dt * FallDamping
	}
}

// Flap lifts the player by FlapLift unless already at the ceiling.
// Velocity is zeroed either way.
func (p *Player) Flap() {
	if p.Y < FlapCeiling {
		p.Y += FlapLift
	}
	p.Velocity = 0
}

// AbsY returns the world Y of the player's center.
func (p *Player) AbsY() float64 {
	return p.Baseline + p.Y
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.AbsY(), p.HalfW, p.HalfH)
}
