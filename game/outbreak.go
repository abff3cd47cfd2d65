package game

// MaxOutbreaks is the number of outbreaks the players survive. The next one loses the game.
const MaxOutbreaks = 7

// chainLink is one (city, color) pair that already broke out during the current draw.
type chainLink struct {
	city  string
	color Color
}

// Infect places one cube of the city's home color.
func (c *City) Infect() {
	c.InfectWith(c.Color)
}

// InfectWith places one cube of color on the city, or triggers an outbreak
// when the city already holds MaxCubesPerColor cubes of it.
func (c *City) InfectWith(color Color) {
	g := c.game
	if g.Lost || g.IsEradicated(color) {
		return
	}

	if c.Cubes[color] < MaxCubesPerColor {
		if g.CubeSupply[color] == 0 {
			g.lose(CubesExhausted)
			return
		}
		c.Cubes[color]++
		g.CubeSupply[color]--
		return
	}

	c.Outbreak(color)
}

// Outbreak spreads one cube of color to every neighbor that has not already
// broken out in the current chain.
func (c *City) Outbreak(color Color) {
	g := c.game
	g.Outbreaks++
	g.log.Debug().Str("city", c.Name).Stringer("color", color).Int("outbreaks", g.Outbreaks).Msg("outbreak")

	if g.Outbreaks > MaxOutbreaks {
		g.lose(EighthOutbreak)
		return
	}

	g.outbreakChain[chainLink{city: c.Name, color: color}] = struct{}{}
	for _, name := range g.Map.neighbors(c.Name) {
		if _, chained := g.outbreakChain[chainLink{city: name, color: color}]; chained {
			continue
		}
		g.Cities[name].InfectWith(color)
	}
}

// resetOutbreakChain starts a fresh propagation context; every infection card draw calls it.
func (g *Game) resetOutbreakChain() {
	clear(g.outbreakChain)
}

// InOutbreakChain reports whether city already broke out with color during the current draw.
func (g *Game) InOutbreakChain(city string, color Color) bool {
	_, ok := g.outbreakChain[chainLink{city: city, color: color}]
	return ok
}
