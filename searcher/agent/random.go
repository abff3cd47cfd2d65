package agent

import (
	"pandemic/experiments/metrics"
	"pandemic/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves")
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}
