package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// customGame builds a two player game on a small blue graph. Every city named
// in borders is added; atlanta is always present.
func customGame(t *testing.T, borders [][2]string) *Game {
	t.Helper()
	m := NewCityGraph()
	require.NoError(t, m.AddCity(StartingCity, Blue))
	for _, border := range borders {
		for _, name := range border {
			if !m.Has(name) {
				require.NoError(t, m.AddCity(name, Blue))
			}
		}
		require.NoError(t, m.AddBorder(border[0], border[1]))
	}
	g, err := NewGame(m, 2, 0, WithSeed(5))
	require.NoError(t, err)
	return g
}

func TestInfect(t *testing.T) {
	t.Run("places a cube of the home color", func(t *testing.T) {
		g := startedGame(t, 2)

		g.Cities["tokyo"].Infect()
		g.Cities["tokyo"].InfectWith(Blue)

		require.Equal(t, 1, g.Cities["tokyo"].CubeCount(Red))
		require.Equal(t, 1, g.Cities["tokyo"].CubeCount(Blue))
		require.Equal(t, 2, g.Cities["tokyo"].TotalCubes())
		require.Equal(t, 23, g.CubeSupply[Red])
		require.Equal(t, 23, g.CubeSupply[Blue])
	})

	t.Run("eradicated disease is ignored", func(t *testing.T) {
		g := startedGame(t, 2)
		g.CuredDiseases = []Color{Blue}
		g.EradicatedDiseases = []Color{Blue}

		g.Cities["paris"].Infect()

		require.Zero(t, g.Cities["paris"].TotalCubes())
		require.Equal(t, CubesPerColor, g.CubeSupply[Blue])
	})

	t.Run("cured disease still spreads", func(t *testing.T) {
		g := startedGame(t, 2)
		g.CuredDiseases = []Color{Blue}

		g.Cities["paris"].Infect()

		require.Equal(t, 1, g.Cities["paris"].Cubes[Blue])
	})

	t.Run("running out of cubes loses", func(t *testing.T) {
		g := startedGame(t, 2)
		for _, name := range []string{"san_francisco", "chicago", "montreal", "new_york", "washington", "atlanta", "london", "madrid"} {
			setCubes(t, g, name, Blue, 3)
		}
		require.Zero(t, g.CubeSupply[Blue])

		g.Cities["paris"].Infect()

		require.True(t, g.Lost)
		require.Equal(t, CubesExhausted, g.LossReason)
		require.Zero(t, g.Cities["paris"].Cubes[Blue], "No cube placed")
		require.Zero(t, g.CubeSupply[Blue], "Supply never goes negative")
		require.Nil(t, g.Turn)
		requireConservation(t, g)
	})
}

func TestOutbreak(t *testing.T) {
	t.Run("spreads to every neighbor", func(t *testing.T) {
		g := startedGame(t, 2)
		setCubes(t, g, "atlanta", Blue, 3)

		g.Cities["atlanta"].Infect()

		require.Equal(t, 1, g.Outbreaks)
		require.Equal(t, 3, g.Cities["atlanta"].Cubes[Blue])
		for _, name := range []string{"chicago", "washington", "miami"} {
			require.Equal(t, 1, g.Cities[name].Cubes[Blue], name)
		}
		require.Zero(t, g.Cities["miami"].Cubes[Yellow], "Outbreak spreads its own color")
		require.True(t, g.InOutbreakChain("atlanta", Blue))
		requireConservation(t, g)
	})

	t.Run("chain reaction", func(t *testing.T) {
		g := startedGame(t, 2)
		setCubes(t, g, "atlanta", Blue, 3)
		setCubes(t, g, "miami", Blue, 3)

		g.Cities["atlanta"].Infect()

		require.Equal(t, 2, g.Outbreaks)
		require.Equal(t, 3, g.Cities["atlanta"].Cubes[Blue], "Chained city is not infected again")
		require.Equal(t, 2, g.Cities["washington"].Cubes[Blue], "Neighbor of both outbreaks")
		require.Equal(t, 1, g.Cities["bogota"].Cubes[Blue])
		requireConservation(t, g)
	})

	t.Run("each city breaks out once per chain", func(t *testing.T) {
		names := []string{StartingCity, "b", "c", "d"}
		var borders [][2]string
		for i := range names {
			for j := i + 1; j < len(names); j++ {
				borders = append(borders, [2]string{names[i], names[j]})
			}
		}
		g := customGame(t, borders)
		for _, name := range names {
			setCubes(t, g, name, Blue, 3)
		}

		g.resetOutbreakChain()
		g.Cities[StartingCity].Infect()

		require.Equal(t, 4, g.Outbreaks)
		for _, name := range names {
			require.Equal(t, 3, g.Cities[name].Cubes[Blue])
			require.True(t, g.InOutbreakChain(name, Blue))
		}
		require.False(t, g.Lost)
	})

	t.Run("eighth outbreak loses and stops", func(t *testing.T) {
		g := customGame(t, [][2]string{{StartingCity, "b"}, {"b", "c"}, {"c", "d"}})
		for _, name := range []string{StartingCity, "b", "c"} {
			setCubes(t, g, name, Blue, 3)
		}
		g.Outbreaks = 5

		g.Cities[StartingCity].Infect()

		require.Equal(t, 8, g.Outbreaks)
		require.True(t, g.Lost)
		require.Equal(t, EighthOutbreak, g.LossReason)
		require.Zero(t, g.Cities["d"].Cubes[Blue], "Nothing spreads after the eighth outbreak")
		require.Equal(t, CubesPerColor-9, g.CubeSupply[Blue])

		g.Cities["d"].Infect()
		require.Zero(t, g.Cities["d"].Cubes[Blue], "Lost game ignores infections")
	})

	t.Run("first loss reason is kept", func(t *testing.T) {
		g := startedGame(t, 2)
		g.lose(CubesExhausted)
		g.lose(EighthOutbreak)

		require.Equal(t, CubesExhausted, g.LossReason)
	})
}
