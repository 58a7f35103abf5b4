package bobby

import (
	"math"
	"testing"
)

// zapperAt returns a zapper whose blade center sits at world (x, y).
func zapperAt(x, y, rotation float64) *Zapper {
	z := NewZapper(1, 0, &seqSource{vals: []float64{0.5}})
	z.X = x - z.BaseX
	z.Y = y - z.BaseY
	z.Rotation = rotation
	return z
}

func TestCoinCollision(t *testing.T) {
	p := NewPlayer(PlayerX)
	p.Y = 0 // box [-0.8, -0.64] x [-0.6, -0.4]

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"coin inside player box", -0.7, -0.5, true},
		{"coin overlapping top edge", -0.72, -0.38, true},
		{"coin above player", -0.72, -0.3, false},
		{"coin ahead of player", -0.5, -0.5, false},
		{"coin behind player", -0.9, -0.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCoin(1, 0, &seqSource{vals: []float64{0.5}})
			c.X, c.Y = tc.x, tc.y

			if got := CoinCollision(p, c); got != tc.expected {
				t.Errorf("CoinCollision() = %v, expected %v", got, tc.expected)
			}
			// Overlap must not depend on which box is tested against which.
			if got := c.Box().Overlaps(p.Box()); got != tc.expected {
				t.Errorf("reverse overlap = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestZapperCollision(t *testing.T) {
	p := NewPlayer(PlayerX)
	p.Y = 0 // center (-0.72, -0.5)

	tests := []struct {
		name     string
		zapper   *Zapper
		expected bool
	}{
		{"vertical blade through player", zapperAt(-0.72, -0.5, 0), true},
		{"horizontal blade through player", zapperAt(-0.72, -0.5, math.Pi/2), true},
		{"diagonal blade through player", zapperAt(-0.72, -0.5, math.Pi/4), true},
		{"vertical blade reaching down into top edge", zapperAt(-0.72, -0.28, 0), true},
		{"vertical blade hovering over player", zapperAt(-0.72, -0.2, 0), false},
		{"horizontal blade above player", zapperAt(-0.72, -0.2, math.Pi/2), false},
		{"blade far to the right", zapperAt(0.6, -0.5, 0), false},
		{"vertical blade just ahead of player", zapperAt(-0.6, -0.5, 0), false},
		{"full turn is vertical again", zapperAt(-0.72, -0.28, 2*math.Pi), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ZapperCollision(p, tc.zapper); got != tc.expected {
				t.Errorf("ZapperCollision() = %v, expected %v (blade %+v)", got, tc.expected, tc.zapper.Blade())
			}
		})
	}
}

func TestZapperCollisionFollowsPlayerHeight(t *testing.T) {
	p := NewPlayer(PlayerX)
	z := zapperAt(-0.72, -0.5, math.Pi/2) // horizontal at world y = -0.5

	p.Y = 0
	if !ZapperCollision(p, z) {
		t.Fatal("player at baseline should be hit by blade at its height")
	}

	p.Y = 0.5
	if ZapperCollision(p, z) {
		t.Error("player that rose above the blade should not be hit")
	}
}
