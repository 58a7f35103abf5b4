package bobby

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bobby-glide/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	PlayerEye  = '▶'
	CoinChar   = '●'
	BladeChar  = '#'
	HubChar    = '+'
	GroundChar = '═'
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// viewport maps world coordinates ([-1, 1] on both axes, y up) to cells.
type viewport struct {
	w, h int // Playfield size in cells
	top  int // First playfield row
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		w:   dst.Width(),
		h:   max(dst.Height()-hudRows-1, 1), // Last row is the ground
		top: hudRows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Round((x + 1) / 2 * float64(v.w-1)))
}

// row keeps every world height inside the playfield so nothing is drawn
// over the HUD or the ground.
func (v viewport) row(y float64) int {
	r := v.top + int(math.Round((1-y)/2*float64(v.h-1)))
	return core.Clamp(r, v.top, v.top+v.h-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := newViewport(dst)
	l := g.session.Level()

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)

	if !g.session.Stage().Terminal() {
		for _, z := range l.Zappers {
			drawZapper(dst, vp, z)
		}
		for _, c := range l.Coins {
			if c.Visible {
				dst.SetColored(vp.col(c.X), vp.row(c.Y), CoinChar, core.ColorBrightYellow)
			}
		}
		drawPlayer(dst, vp, l.Player)
	}

	g.drawHUD(dst)

	switch g.session.Stage() {
	case StageWin:
		drawCenteredMessage(dst, "YOU MADE IT!", fmt.Sprintf("Coins: %d  |  R restart  Q quit", g.session.Score()), core.ColorBrightGreen)
	case StageLose:
		drawCenteredMessage(dst, "ZAPPED!", fmt.Sprintf("Coins: %d  |  R restart  Q quit", g.session.Score()), core.ColorBrightRed)
	default:
		if g.session.Paused() {
			drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
		}
	}
}

func drawPlayer(dst *core.Screen, vp viewport, p *Player) {
	b := p.Box()
	lo, hi := b.Min(), b.Max()
	x0, x1 := vp.col(lo.X), vp.col(hi.X)
	y0, y1 := vp.row(hi.Y), vp.row(lo.Y)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, PlayerChar, core.ColorBrightCyan)
		}
	}
	dst.SetColored(x1, y0, PlayerEye, core.ColorBrightWhite)
}

func drawZapper(dst *core.Screen, vp viewport, z *Zapper) {
	blade := z.Blade()
	dst.DrawLine(vp.col(blade.A.X), vp.row(blade.A.Y), vp.col(blade.B.X), vp.row(blade.B.Y), BladeChar, core.ColorRed)
	c := z.Center()
	dst.SetColored(vp.col(c.X), vp.row(c.Y), HubChar, core.ColorOrange)
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.session.State()
	level := fmt.Sprintf("%d/%d", st.Level, LevelCount())
	if st.GameOver {
		level = g.session.Stage().String()
	}
	hud := fmt.Sprintf(" Coins: %d  Level: %s  Distance: %ds ", st.Score, level, st.Distance)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
