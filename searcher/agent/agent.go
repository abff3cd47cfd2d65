package agent

import (
	"pandemic/experiments/metrics"
	"pandemic/game"
)

type Agent interface {
	// FindMove returns one of g.LegalMoves() and performance metrics (if collected) from the decision process.
	// The game must not be modified.
	FindMove(g *game.Game) (game.Move, metrics.SearchMetric)
}

// New builds the agent described by config. Unknown kinds fall back to a random agent.
func New(config metrics.AgentConfig, seed uint64) Agent {
	switch config.Kind {
	case metrics.HeuristicAgent:
		return NewHeuristicAgent(seed)
	case metrics.SearchAgent:
		return NewEvaluationAgent(createMCTS(config))
	default:
		return NewRandomAgent(seed)
	}
}
