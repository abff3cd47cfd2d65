package game

// MaxCubesPerColor is the most cubes of one color a city can hold. Another cube causes an outbreak.
const MaxCubesPerColor = 3

// City holds the mutable state of one board location: its disease cubes and research station.
// Connections live in the CityGraph, player positions live on the players.
type City struct {
	game *Game

	Name               string
	Color              Color          // Home color, fixed for the whole game
	Cubes              [NumColors]int // Cubes per color, indexed by Color
	HasResearchStation bool
}

func newCity(g *Game, name string, color Color) *City {
	return &City{
		game:  g,
		Name:  name,
		Color: color,
	}
}

func (c *City) String() string {
	return c.Name
}

// CubeCount returns the cubes of one color on the city.
func (c *City) CubeCount(color Color) int {
	return c.Cubes[color]
}

// TotalCubes returns the cubes of all colors on the city.
func (c *City) TotalCubes() int {
	total := 0
	for _, n := range c.Cubes {
		total += n
	}
	return total
}

// removeCubes takes up to n cubes of color off the city and returns them to the supply.
func (c *City) removeCubes(color Color, n int) int {
	if n > c.Cubes[color] {
		n = c.Cubes[color]
	}
	c.Cubes[color] -= n
	c.game.CubeSupply[color] += n
	return n
}
