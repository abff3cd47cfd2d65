package agent

import (
	"testing"

	"pandemic/experiments/metrics"
	"pandemic/game"

	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, seed uint64) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.CreateMap(), 2, 4, game.WithSeed(seed))
	require.NoError(t, err)
	require.NoError(t, g.Setup())
	return g
}

func requireLegal(t *testing.T, g *game.Game, move game.Move) {
	t.Helper()
	require.Contains(t, g.LegalMoves(), move)
}

func TestNew(t *testing.T) {
	require.IsType(t, &randomAgent{}, New(metrics.AgentConfig{Kind: metrics.RandomAgent}, 1))
	require.IsType(t, &heuristicAgent{}, New(metrics.AgentConfig{Kind: metrics.HeuristicAgent}, 1))
	require.IsType(t, evaluationAgent{}, New(metrics.AgentConfig{Kind: metrics.SearchAgent, Episodes: 5}, 1))
	require.IsType(t, &randomAgent{}, New(metrics.AgentConfig{Kind: "unknown"}, 1))
}

func TestRandomAgent(t *testing.T) {
	g := newGame(t, 1)
	a := NewRandomAgent(1)

	for i := 0; i < 50 && !g.IsOver(); i++ {
		move, metric := a.FindMove(g)
		requireLegal(t, g, move)
		require.Zero(t, metric.Episodes)
		require.NoError(t, g.Play(move))
	}
}

func TestHeuristicAgent(t *testing.T) {
	t.Run("cures when possible", func(t *testing.T) {
		g := newGame(t, 2)
		player := g.CurrentPlayer()
		for _, card := range player.Hand.Cards() {
			require.NoError(t, player.Hand.Discard(card))
		}
		player.Hand.Add("san_francisco", "chicago", "montreal", "new_york", "washington")

		move, _ := NewHeuristicAgent(1).FindMove(g)

		require.Equal(t, game.DiscoverCureAction, move.Type)
		require.Equal(t, game.Blue, move.Color)
	})

	t.Run("treats the current city", func(t *testing.T) {
		g := newGame(t, 3)
		here := g.Cities[game.StartingCity]
		here.InfectWith(game.Red)
		most := 0
		for _, color := range game.AllColors {
			most = max(most, here.Cubes[color])
		}

		move, _ := NewHeuristicAgent(1).FindMove(g)

		require.Equal(t, game.TreatDiseaseAction, move.Type)
		require.Equal(t, most, here.Cubes[move.Color], "Worst color first")
	})

	t.Run("discards the weakest color", func(t *testing.T) {
		g := newGame(t, 4)
		other := g.Players[1]
		for _, card := range other.Hand.Cards() {
			require.NoError(t, other.Hand.Discard(card))
		}
		other.Hand.Add("paris", "london", "essen", "milan", "madrid", "lima", "cairo", "tokyo")

		move, _ := NewHeuristicAgent(1).FindMove(g)

		require.Equal(t, game.DiscardAction, move.Type)
		require.Equal(t, 1, move.Player)
		require.Contains(t, []string{"lima", "cairo", "tokyo"}, move.City)
	})

	t.Run("plays a whole game", func(t *testing.T) {
		g := newGame(t, 5)
		a := NewHeuristicAgent(5)

		for i := 0; i < 2000 && !g.IsOver(); i++ {
			move, _ := a.FindMove(g)
			require.NoError(t, g.Play(move), "move %v", move)
		}

		require.True(t, g.IsOver())
	})
}

func TestNextStep(t *testing.T) {
	g := newGame(t, 6)

	require.Equal(t, "london", nextStep(g, "essen", func(city string) bool { return city == "madrid" }))
	require.Equal(t, "chicago", nextStep(g, "montreal", hasStation(g)))
	require.Empty(t, nextStep(g, "montreal", func(string) bool { return false }))
}

func TestEvaluationAgent(t *testing.T) {
	g := newGame(t, 7)
	a := NewEvaluationAgent(createMCTS(metrics.AgentConfig{Kind: metrics.SearchAgent, Goroutines: 2, Episodes: 30, Cutoff: 20}))

	move, metric := a.FindMove(g)

	requireLegal(t, g, move)
	require.Equal(t, 30, metric.Episodes)

	require.NoError(t, g.Play(game.Move{Type: game.EndActionsAction}))
	move, metric = a.FindMove(g)
	require.Equal(t, game.Move{Type: game.DrawPlayerCardAction}, move, "Forced moves skip the search")
	require.Zero(t, metric.Episodes)
}
