package agent

import (
	"pandemic/experiments/metrics"
	"pandemic/game"

	"golang.org/x/exp/rand"
)

type heuristicAgent struct {
	rng *rand.Rand
}

// NewHeuristicAgent returns a rule based agent: cure when possible, treat the
// worst color under the player, head for a research station once a cure is in
// hand and otherwise drive towards the most infected neighbor.
func NewHeuristicAgent(seed uint64) Agent {
	return &heuristicAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *heuristicAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves")
	}
	if len(moves) == 1 {
		return moves[0], metrics.SearchMetric{}
	}
	return a.choose(g, moves), metrics.SearchMetric{}
}

func (a *heuristicAgent) choose(g *game.Game, moves []game.Move) game.Move {
	if moves[0].Type == game.DiscardAction {
		return a.discard(g, moves)
	}

	if move, ok := first(moves, game.DiscoverCureAction); ok {
		return move
	}

	player := g.CurrentPlayer()
	here := g.Cities[player.City]

	// Treat the color with the most cubes here
	var treat *game.Move
	for i, move := range moves {
		if move.Type != game.TreatDiseaseAction {
			continue
		}
		if treat == nil || here.Cubes[move.Color] > here.Cubes[treat.Color] {
			treat = &moves[i]
		}
	}
	if treat != nil {
		return *treat
	}

	if a.canCure(g, player) && !here.HasResearchStation {
		if move, ok := first(moves, game.BuildResearchStationAction); ok {
			return move
		}
		if step := nextStep(g, player.City, hasStation(g)); step != "" {
			return game.Move{Type: game.DriveAction, City: step}
		}
	}

	// Drive to the most infected neighbor, if any neighbor is infected
	var drive *game.Move
	for i, move := range moves {
		if move.Type != game.DriveAction {
			continue
		}
		if drive == nil || g.Cities[move.City].TotalCubes() > g.Cities[drive.City].TotalCubes() {
			drive = &moves[i]
		}
	}
	if drive != nil && g.Cities[drive.City].TotalCubes() > 0 {
		return *drive
	}

	// Nothing useful nearby: wander without spending cards
	var wander []game.Move
	for _, move := range moves {
		if move.Type == game.DriveAction || move.Type == game.ShuttleFlightAction {
			wander = append(wander, move)
		}
	}
	if len(wander) > 0 {
		return wander[a.rng.Intn(len(wander))]
	}
	if move, ok := first(moves, game.EndActionsAction); ok {
		return move
	}
	return moves[a.rng.Intn(len(moves))]
}

// discard drops a card of the color the player is furthest from curing.
// Cards of cured colors go first.
func (a *heuristicAgent) discard(g *game.Game, moves []game.Move) game.Move {
	best, bestCount := moves[0], game.MaxHandSize+1
	for _, move := range moves {
		color, _ := g.Map.Color(move.City)
		count := g.Players[move.Player].Hand.CountColor(color)
		if g.IsCured(color) {
			count = -1
		}
		if count < bestCount {
			best, bestCount = move, count
		}
	}
	return best
}

func (a *heuristicAgent) canCure(g *game.Game, player *game.Player) bool {
	for _, color := range game.AllColors {
		if !g.IsCured(color) && player.Hand.CountColor(color) >= game.CardsToCure {
			return true
		}
	}
	return false
}

func first(moves []game.Move, actionType game.ActionType) (game.Move, bool) {
	for _, move := range moves {
		if move.Type == actionType {
			return move, true
		}
	}
	return game.Move{}, false
}

func hasStation(g *game.Game) func(string) bool {
	return func(city string) bool {
		return g.Cities[city].HasResearchStation
	}
}

// nextStep returns the neighbor of from on a shortest path to the closest
// city matching target, or "" when none is reachable.
func nextStep(g *game.Game, from string, target func(string) bool) string {
	prev := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		city := queue[0]
		queue = queue[1:]
		if city != from && target(city) {
			for prev[city] != from {
				city = prev[city]
			}
			return city
		}
		for _, neighbor := range g.Map.Neighbors(city) {
			if _, seen := prev[neighbor]; !seen {
				prev[neighbor] = city
				queue = append(queue, neighbor)
			}
		}
	}
	return ""
}
