package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var blueCards = []string{"san_francisco", "chicago", "montreal", "new_york", "washington"}

func TestActionGuard(t *testing.T) {
	t.Run("four actions per turn", func(t *testing.T) {
		g := startedGame(t, 2)

		for i := 0; i < ActionsPerTurn; i++ {
			require.NoError(t, g.Turn.Skip())
		}
		require.Zero(t, g.Turn.Actions)

		require.ErrorIs(t, g.Turn.Skip(), ErrInvalidState)
		require.ErrorIs(t, g.Turn.Drive("chicago"), ErrInvalidState)
		require.Equal(t, StartingCity, g.CurrentPlayer().City)
	})

	t.Run("failed action costs nothing", func(t *testing.T) {
		g := startedGame(t, 2)

		err := g.Turn.Drive("tokyo")

		require.ErrorIs(t, err, ErrIllegalAction)
		require.Equal(t, ActionsPerTurn, g.Turn.Actions)
		require.Equal(t, StartingCity, g.CurrentPlayer().City)
	})

	t.Run("hand over the limit blocks actions", func(t *testing.T) {
		g := startedGame(t, 2)
		other := g.Players[1]
		other.Hand.Add("paris", "london", "essen", "milan", "madrid", "tokyo", "osaka", "seoul")

		require.ErrorIs(t, g.Turn.Skip(), ErrInvalidState)
		require.ErrorIs(t, g.Turn.End(), ErrInvalidState)

		require.NoError(t, other.Hand.Discard("seoul"))
		require.NoError(t, g.Turn.Skip())
		require.Equal(t, []PlayerCard{{Kind: CityCard, City: "seoul"}}, g.PlayerDiscardPile)
	})

	t.Run("no actions after the phase ended", func(t *testing.T) {
		g := startedGame(t, 2)

		require.NoError(t, g.Turn.End())

		require.ErrorIs(t, g.Turn.Skip(), ErrInvalidState)
		require.ErrorIs(t, g.Turn.End(), ErrInvalidState)
		require.NotNil(t, g.InfectionTurn)
		require.Equal(t, g.Turn.Player, g.InfectionTurn.Player)
		require.Equal(t, InfectionPhase, g.Phase())
	})
}

func TestMovement(t *testing.T) {
	t.Run("drive", func(t *testing.T) {
		g := startedGame(t, 2)

		require.NoError(t, g.Turn.Drive("chicago"))
		require.NoError(t, g.Turn.Drive("montreal"))

		require.Equal(t, "montreal", g.Players[0].City)
		require.Equal(t, 2, g.Turn.Actions)
		require.Equal(t, StartingCity, g.Players[1].City, "Only the current player moves")
	})

	t.Run("direct flight", func(t *testing.T) {
		g := startedGame(t, 2)
		player := g.CurrentPlayer()
		player.Hand.Add("tokyo")

		require.ErrorIs(t, g.Turn.DirectFlight("paris"), ErrIllegalAction, "Card not in hand")
		require.ErrorIs(t, g.Turn.DirectFlight("atlantis"), ErrIllegalAction)
		require.NoError(t, g.Turn.DirectFlight("tokyo"))

		require.Equal(t, "tokyo", player.City)
		require.False(t, player.Hand.Contains("tokyo"))
		require.Equal(t, []PlayerCard{{Kind: CityCard, City: "tokyo"}}, g.PlayerDiscardPile)
		require.Equal(t, 3, g.Turn.Actions)
	})

	t.Run("charter flight", func(t *testing.T) {
		g := startedGame(t, 2)
		player := g.CurrentPlayer()

		require.ErrorIs(t, g.Turn.CharterFlight("sydney"), ErrIllegalAction, "Current city card not in hand")

		player.Hand.Add(StartingCity)
		require.NoError(t, g.Turn.CharterFlight("sydney"))

		require.Equal(t, "sydney", player.City)
		require.Zero(t, player.Hand.Len())
		require.Len(t, g.PlayerDiscardPile, 1)
	})

	t.Run("shuttle flight", func(t *testing.T) {
		g := startedGame(t, 2)

		require.ErrorIs(t, g.Turn.ShuttleFlight("paris"), ErrIllegalAction, "No station in paris")

		g.Cities["paris"].HasResearchStation = true
		g.ResearchStations++
		require.NoError(t, g.Turn.ShuttleFlight("paris"))
		require.Equal(t, "paris", g.CurrentPlayer().City)

		require.NoError(t, g.Turn.Drive("london"))
		require.ErrorIs(t, g.Turn.ShuttleFlight(StartingCity), ErrIllegalAction, "No station in london")
	})
}

func TestBuildResearchStation(t *testing.T) {
	t.Run("needs the city card which stays in hand", func(t *testing.T) {
		g := startedGame(t, 2)
		player := g.CurrentPlayer()
		require.NoError(t, g.Turn.Drive("chicago"))

		require.ErrorIs(t, g.Turn.BuildResearchStation(), ErrIllegalAction)

		player.Hand.Add("chicago")
		require.NoError(t, g.Turn.BuildResearchStation())

		require.True(t, g.Cities["chicago"].HasResearchStation)
		require.Equal(t, 2, g.ResearchStations)
		require.True(t, player.Hand.Contains("chicago"))
		require.Empty(t, g.PlayerDiscardPile)

		require.ErrorIs(t, g.Turn.BuildResearchStation(), ErrIllegalAction, "Already built")
	})

	t.Run("at most six stations", func(t *testing.T) {
		g := startedGame(t, 2)
		for _, name := range []string{"paris", "tokyo", "lima", "cairo", "sydney"} {
			g.Cities[name].HasResearchStation = true
			g.ResearchStations++
		}
		player := g.CurrentPlayer()
		require.NoError(t, g.Turn.Drive("chicago"))
		player.Hand.Add("chicago")

		require.ErrorIs(t, g.Turn.BuildResearchStation(), ErrIllegalAction)

		require.NoError(t, g.RemoveResearchStation("sydney"))
		require.NoError(t, g.Turn.BuildResearchStation())
		require.Equal(t, MaxResearchStations, g.ResearchStations)
	})
}

func TestTreatDisease(t *testing.T) {
	t.Run("uncured removes one cube", func(t *testing.T) {
		g := startedGame(t, 2)
		setCubes(t, g, StartingCity, Blue, 3)

		require.NoError(t, g.Turn.TreatDisease(Blue))

		require.Equal(t, 2, g.Cities[StartingCity].Cubes[Blue])
		require.Equal(t, 22, g.CubeSupply[Blue])
	})

	t.Run("cured removes every cube", func(t *testing.T) {
		g := startedGame(t, 2)
		setCubes(t, g, StartingCity, Blue, 3)
		setCubes(t, g, "paris", Blue, 1)
		g.CuredDiseases = []Color{Blue}

		require.NoError(t, g.Turn.TreatDisease(Blue))

		require.Zero(t, g.Cities[StartingCity].Cubes[Blue])
		require.Equal(t, 23, g.CubeSupply[Blue])
		require.False(t, g.IsEradicated(Blue), "Paris still has a cube")
	})

	t.Run("last cube of a cured disease eradicates it", func(t *testing.T) {
		g := startedGame(t, 2)
		setCubes(t, g, StartingCity, Blue, 2)
		g.CuredDiseases = []Color{Blue}

		require.NoError(t, g.Turn.TreatDisease(Blue))

		require.True(t, g.IsEradicated(Blue))
	})

	t.Run("other colors in the city", func(t *testing.T) {
		g := startedGame(t, 2)
		setCubes(t, g, StartingCity, Yellow, 1)

		require.ErrorIs(t, g.Turn.TreatDisease(Blue), ErrIllegalAction, "No blue cubes")
		require.ErrorIs(t, g.Turn.TreatDisease(Color(9)), ErrIllegalAction)
		require.NoError(t, g.Turn.TreatDisease(Yellow))
		require.Zero(t, g.Cities[StartingCity].TotalCubes())
	})
}

func TestShareKnowledge(t *testing.T) {
	t.Run("give and take", func(t *testing.T) {
		g := startedGame(t, 2)
		me, other := g.Players[0], g.Players[1]
		me.Hand.Add(StartingCity)

		require.NoError(t, g.Turn.ShareKnowledge(other))
		require.True(t, other.Hand.Contains(StartingCity))
		require.False(t, me.Hand.Contains(StartingCity))

		require.NoError(t, g.Turn.ShareKnowledge(other))
		require.True(t, me.Hand.Contains(StartingCity), "Taken back")
		require.Empty(t, g.PlayerDiscardPile)
		require.Equal(t, 2, g.Turn.Actions)
	})

	t.Run("preconditions", func(t *testing.T) {
		g := startedGame(t, 2)
		me, other := g.Players[0], g.Players[1]

		require.ErrorIs(t, g.Turn.ShareKnowledge(other), ErrIllegalAction, "Nobody holds the card")
		require.ErrorIs(t, g.Turn.ShareKnowledge(me), ErrIllegalAction, "Not with yourself")
		require.ErrorIs(t, g.Turn.ShareKnowledge(nil), ErrIllegalAction)

		other.Hand.Add("chicago")
		require.NoError(t, g.Turn.Drive("chicago"))
		require.ErrorIs(t, g.Turn.ShareKnowledge(other), ErrIllegalAction, "Not in the same city")
	})
}

func TestDiscoverCure(t *testing.T) {
	t.Run("cures with five cards at a station", func(t *testing.T) {
		g := startedGame(t, 2)
		player := g.CurrentPlayer()
		player.Hand.Add(blueCards...)
		player.Hand.Add("tokyo")
		setCubes(t, g, "paris", Blue, 1)

		require.NoError(t, g.Turn.DiscoverCure(Blue, blueCards))

		require.True(t, g.IsCured(Blue))
		require.False(t, g.IsEradicated(Blue))
		require.Equal(t, []string{"tokyo"}, player.Hand.Cards())
		require.Len(t, g.PlayerDiscardPile, CardsToCure)
		require.False(t, g.Won)
		require.Equal(t, 3, g.Turn.Actions)

		require.ErrorIs(t, g.Turn.DiscoverCure(Blue, blueCards), ErrIllegalAction, "Already cured")
	})

	t.Run("eradicates a disease without cubes", func(t *testing.T) {
		g := startedGame(t, 2)
		g.CurrentPlayer().Hand.Add(blueCards...)

		require.NoError(t, g.Turn.DiscoverCure(Blue, blueCards))

		require.True(t, g.IsEradicated(Blue))
	})

	t.Run("fourth cure wins", func(t *testing.T) {
		g := startedGame(t, 2)
		g.CuredDiseases = []Color{Yellow, Black, Red}
		g.CurrentPlayer().Hand.Add(blueCards...)

		require.NoError(t, g.Turn.DiscoverCure(Blue, blueCards))

		require.True(t, g.Won)
		require.True(t, g.IsOver())
		require.Equal(t, GameOverPhase, g.Phase())
		require.ErrorIs(t, g.Turn.Skip(), ErrGameOver)
		require.ErrorIs(t, g.NextTurn(), ErrGameOver)
	})

	t.Run("preconditions", func(t *testing.T) {
		cases := []struct {
			name  string
			color Color
			cards []string
		}{
			{"too few cards", Blue, blueCards[:4]},
			{"too many cards", Blue, append([]string{"atlanta"}, blueCards...)},
			{"duplicate card", Blue, []string{"chicago", "chicago", "montreal", "new_york", "washington"}},
			{"wrong color", Yellow, blueCards},
			{"mixed colors", Blue, []string{"tokyo", "chicago", "montreal", "new_york", "washington"}},
			{"card not in hand", Blue, []string{"london", "chicago", "montreal", "new_york", "washington"}},
			{"invalid color", Color(-1), blueCards},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				g := startedGame(t, 2)
				player := g.CurrentPlayer()
				player.Hand.Add(blueCards...)
				player.Hand.Add("tokyo", "atlanta")

				err := g.Turn.DiscoverCure(c.color, c.cards)

				require.ErrorIs(t, err, ErrIllegalAction)
				require.Equal(t, 7, player.Hand.Len(), "Nothing discarded")
				require.Empty(t, g.CuredDiseases)
				require.Equal(t, ActionsPerTurn, g.Turn.Actions)
			})
		}
	})

	t.Run("needs a research station", func(t *testing.T) {
		g := startedGame(t, 2)
		g.CurrentPlayer().Hand.Add(blueCards...)
		require.NoError(t, g.Turn.Drive("chicago"))

		require.ErrorIs(t, g.Turn.DiscoverCure(Blue, blueCards), ErrIllegalAction)
	})
}
