package engine

import (
	"fmt"
	"time"

	"pandemic/experiments/metrics"
	"pandemic/game"
	"pandemic/meta"
	"pandemic/searcher/agent"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Option func(e *Local)

// WithMaxMoves stops the game after n moves, won or not.
func WithMaxMoves(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// Local drives one game in the calling goroutine, asking an agent per player
// for every move. It is the only caller of the game while Run is in progress.
type Local struct {
	Game   *game.Game
	Agents []agent.Agent // Indexed like Game.Players

	maxMoves int
}

func LocalEngine(g *game.Game, agents []agent.Agent, options ...Option) *Local {
	if len(g.Players) != len(agents) {
		panic("number of players does not match number of agents")
	}

	e := &Local{
		Game:     g,
		Agents:   agents,
		maxMoves: meta.MAX_MOVES,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run sets the game up if needed and plays it to the end. A move the agent
// gets wrong is logged, counted and replaced with the first legal move.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	g := e.Game
	startTime := time.Now()

	if g.TurnCount == 0 {
		if err := g.Setup(); err != nil {
			return metrics.GameMetric{}, nil, fmt.Errorf("failed to set up game: %w", err)
		}
	}

	log.Debug().Msgf("game %s starting with %d players and %d epidemics", g.ID, len(g.Players), g.NumEpidemicCards)

	var moveMetrics []metrics.MoveMetric
	rejected := 0
	for step := 1; !g.IsOver() && step <= e.maxMoves; step++ {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			return metrics.GameMetric{}, moveMetrics, fmt.Errorf("no legal moves at turn %d in %s phase", g.TurnCount, g.Phase())
		}

		actor := g.CurrentPlayer().Index
		if moves[0].Type == game.DiscardAction {
			actor = moves[0].Player
		}
		turn := g.TurnCount

		move, searchMetric := e.Agents[actor].FindMove(g)
		if err := g.Play(move); err != nil {
			rejected++
			log.Warn().Msgf("player %d move %v rejected: %v, playing %v instead", actor, move, err, moves[0])
			move = moves[0]
			if err := g.Play(move); err != nil {
				return metrics.GameMetric{}, moveMetrics, fmt.Errorf("legal move %v failed: %w", move, err)
			}
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Turn:         turn,
			Player:       actor,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
	}

	if !g.IsOver() {
		log.Warn().Msgf("game %s stopped after %d moves without a result", g.ID, e.maxMoves)
	}

	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		GameID:         g.ID,
		Players:        len(g.Players),
		Epidemics:      g.NumEpidemicCards,
		Won:            g.Won,
		Turns:          g.TurnCount,
		Outbreaks:      g.Outbreaks,
		Cured:          len(g.CuredDiseases),
		Eradicated:     len(g.EradicatedDiseases),
		InfectionTrack: g.InfectionTrack,
		TotalMoves:     len(moveMetrics),
		RejectedMoves:  rejected,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
	}
	if g.Lost {
		gameMetric.LossReason = g.LossReason.String()
	}

	return gameMetric, moveMetrics, nil
}
