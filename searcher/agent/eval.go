package agent

import (
	"pandemic/experiments/metrics"
	"pandemic/game"
	"pandemic/meta"
	"pandemic/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent that plays the move its search visited most.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves")
	}
	if len(moves) == 1 { // Forced, e.g. drawing cards
		return moves[0], metrics.SearchMetric{}
	}

	policy, metric := a.mcts.Simulate(g, moves)
	return moves[findMax(policy)], metric
}

func findMax(policy []float64) int {
	maxIndex := 0
	maxVisit := -1.0
	for i, visit := range policy {
		if visit > maxVisit {
			maxVisit = visit
			maxIndex = i
		}
	}
	return maxIndex
}

func createMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	} else {
		options = append(options, searcher.WithCutoff(meta.WITH_CUTOFF))
	}
	if config.Episodes <= 0 && config.Duration <= 0 {
		options = append(options, searcher.WithEpisodes(meta.EPISODES))
	}

	options = append(options, searcher.WithMetrics())
	goroutines := config.Goroutines
	if goroutines <= 0 {
		goroutines = meta.GO_ROUTINES
	}
	return searcher.NewMCTS(goroutines, options...)
}
