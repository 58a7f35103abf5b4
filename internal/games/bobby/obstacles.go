package bobby

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/bobby-glide/internal/core"
)

// Obstacle movement constants.
const (
	ScrollStep = 0.01          // Leftward movement per tick
	SpinStep   = math.Pi / 120 // Zapper rotation per tick, multiplied by the zapper's tag

	CoinSize    = 0.032
	CoinExitX   = -1.1
	CoinEntryX  = 1.1
	CoinMinY    = -0.6
	CoinMaxY    = 0.6
	CoinSpacing = 0.7 // Initial gap between coin slots

	ZapperBaseX   = 0.77
	ZapperBaseY   = -0.45
	ZapperHalfW   = 0.03
	ZapperHalfLen = 0.15
	ZapperExitX   = -1.8
	ZapperEntryX  = 0.5
	ZapperMinY    = -0.1
	ZapperMaxY    = 0.95
	ZapperSpacing = 0.9 // Initial gap between zapper slots
	zapperStartY  = 0.4
)

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// ObstacleKind distinguishes the two obstacle variants.
type ObstacleKind int

const (
	KindCoin ObstacleKind = iota + 1
	KindZapper
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindZapper:
		return "zapper"
	default:
		return "unknown"
	}
}

// StreamFunc returns the random stream for one obstacle slot.
type StreamFunc func(level, slot int, kind ObstacleKind) RandSource

// SeededStreams derives an independent math/rand stream per
// (level, slot, kind) from a single seed.
func SeededStreams(seed int64) StreamFunc {
	return func(level, slot int, kind ObstacleKind) RandSource {
		mixed := seed + int64(level)*7919 + int64(slot)*104729 + int64(kind)*15485863
		return rand.New(rand.NewSource(mixed))
	}
}

// uniform draws a value in [lo, hi).
func uniform(r RandSource, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Coin is a collectible. A collected coin is hidden until its next Step,
// which relocates it to the right edge.
type Coin struct {
	X, Y    float64
	Size    float64 // Half-extent of the square hitbox
	Visible bool
	Level   int
	Slot    int
	rng     RandSource
}

// NewCoin creates a coin for the given slot of a level.
func NewCoin(level, slot int, rng RandSource) *Coin {
	return &Coin{
		X:       CoinEntryX + float64(slot)*CoinSpacing,
		Y:       uniform(rng, CoinMinY, CoinMaxY),
		Size:    CoinSize,
		Visible: true,
		Level:   level,
		Slot:    slot,
		rng:     rng,
	}
}

// Step scrolls the coin left and recycles it when it leaves the screen or
// was collected on the previous tick.
func (c *Coin) Step() {
	c.X -= ScrollStep
	if !c.Visible || c.X < CoinExitX {
		c.X = CoinEntryX
		c.Y = uniform(c.rng, CoinMinY, CoinMaxY)
		c.Visible = true
	}
}

// Box returns the coin's collision box.
func (c *Coin) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.Size, c.Size)
}

// Zapper is a rotating hazard blade. X and Y are offsets from its base
// position; Rotation grows without bound.
type Zapper struct {
	X, Y     float64
	Rotation float64
	BaseX    float64
	BaseY    float64
	HalfW    float64
	HalfLen  float64
	Level    int
	Slot     int
	Tag      int // Slot+1; sets the spin rate
	rng      RandSource
}

// NewZapper creates a zapper for the given slot of a level.
func NewZapper(level, slot int, rng RandSource) *Zapper {
	return &Zapper{
		X:       ZapperEntryX + float64(slot)*ZapperSpacing,
		Y:       zapperStartY,
		BaseX:   ZapperBaseX,
		BaseY:   ZapperBaseY,
		HalfW:   ZapperHalfW,
		HalfLen: ZapperHalfLen,
		Level:   level,
		Slot:    slot,
		Tag:     slot + 1,
		rng:     rng,
	}
}

// Step scrolls and spins the zapper, recycling it past the left edge.
func (z *Zapper) Step() {
	z.X -= ScrollStep
	z.Rotation += float64(z.Tag) * SpinStep
	if z.X < ZapperExitX {
		z.X = ZapperEntryX
		z.Y = uniform(z.rng, ZapperMinY, ZapperMaxY)
	}
}

// Center returns the blade's absolute world position.
func (z *Zapper) Center() core.Vec2 {
	return core.Vec2{X: z.BaseX + z.X, Y: z.BaseY + z.Y}
}

// Blade returns the hazardous segment: a vertical segment of half-length
// HalfLen rotated by Rotation around Center.
func (z *Zapper) Blade() core.Segment {
	c := z.Center()
	top := core.Vec2{X: c.X, Y: c.Y + z.HalfLen}
	bottom := core.Vec2{X: c.X, Y: c.Y - z.HalfLen}
	return core.Segment{
		A: core.RotateAround(top, c, z.Rotation),
		B: core.RotateAround(bottom, c, z.Rotation),
	}
}
