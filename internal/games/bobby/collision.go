package bobby

// CoinCollision reports whether the player's box overlaps the coin's box.
// Visibility is the caller's concern.
func CoinCollision(p *Player, c *Coin) bool {
	return p.Box().Overlaps(c.Box())
}

// ZapperCollision reports whether any edge of the player's box crosses the
// zapper blade.
func ZapperCollision(p *Player, z *Zapper) bool {
	blade := z.Blade()
	for _, edge := range p.Box().Edges() {
		if edge.Intersects(blade) {
			return true
		}
	}
	return false
}
