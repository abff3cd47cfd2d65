package game

import (
	"fmt"
	"strings"
)

// Move is a single command for the driver: a player action, a free move
// such as a discard, or a phase transition. Only the fields the ActionType
// needs are read.
type Move struct {
	Type   ActionType
	City   string   // Drive, flights, Discard, RemoveResearchStation
	Color  Color    // TreatDisease, DiscoverCure
	Player int      // ShareKnowledge partner, Discard owner
	Cards  []string // DiscoverCure
}

func (m Move) String() string {
	switch m.Type {
	case DriveAction, DirectFlightAction, CharterFlightAction, ShuttleFlightAction, RemoveResearchStationAction:
		return fmt.Sprintf("%s(%s)", m.Type, m.City)
	case TreatDiseaseAction:
		return fmt.Sprintf("%s(%s)", m.Type, m.Color)
	case ShareKnowledgeAction:
		return fmt.Sprintf("%s(Player%d)", m.Type, m.Player)
	case DiscardAction:
		return fmt.Sprintf("%s(Player%d, %s)", m.Type, m.Player, m.City)
	case DiscoverCureAction:
		return fmt.Sprintf("%s(%s: %s)", m.Type, m.Color, strings.Join(m.Cards, ","))
	default:
		return m.Type.String()
	}
}

// Play applies one move through the regular turn API. Rule violations are
// returned as errors and leave the game untouched; a move type Play does not
// know panics.
func (g *Game) Play(m Move) error {
	if g.IsOver() {
		return ErrGameOver
	}

	switch m.Type {
	case DriveAction, DirectFlightAction, CharterFlightAction, ShuttleFlightAction,
		BuildResearchStationAction, TreatDiseaseAction, ShareKnowledgeAction,
		DiscoverCureAction, SkipAction, EndActionsAction:
		if g.Turn == nil {
			return invalidState("no action phase in progress")
		}
		return g.playAction(m)

	case DiscardAction:
		player, err := g.player(m.Player)
		if err != nil {
			return err
		}
		return player.Hand.Discard(m.City)

	case RemoveResearchStationAction:
		return g.RemoveResearchStation(m.City)

	case DrawPlayerCardAction, DrawInfectionCardAction, EndInfectionAction:
		if g.InfectionTurn == nil {
			return invalidState("no infection phase in progress")
		}
		switch m.Type {
		case DrawPlayerCardAction:
			return g.InfectionTurn.DrawPlayerCard()
		case DrawInfectionCardAction:
			return g.InfectionTurn.DrawInfectionCard()
		default:
			return g.InfectionTurn.End()
		}

	case NextTurnAction:
		return g.NextTurn()

	default:
		panic(fmt.Sprintf("unknown move type %d", m.Type))
	}
}

func (g *Game) playAction(m Move) error {
	t := g.Turn
	switch m.Type {
	case DriveAction:
		return t.Drive(m.City)
	case DirectFlightAction:
		return t.DirectFlight(m.City)
	case CharterFlightAction:
		return t.CharterFlight(m.City)
	case ShuttleFlightAction:
		return t.ShuttleFlight(m.City)
	case BuildResearchStationAction:
		return t.BuildResearchStation()
	case TreatDiseaseAction:
		return t.TreatDisease(m.Color)
	case ShareKnowledgeAction:
		other, err := g.player(m.Player)
		if err != nil {
			return err
		}
		return t.ShareKnowledge(other)
	case DiscoverCureAction:
		return t.DiscoverCure(m.Color, m.Cards)
	case SkipAction:
		return t.Skip()
	default:
		return t.End()
	}
}

func (g *Game) player(index int) (*Player, error) {
	if index < 0 || index >= len(g.Players) {
		return nil, illegalAction("no player %d", index)
	}
	return g.Players[index], nil
}

// LegalMoves lists every move Play would accept right now. When a hand is over
// the limit only its discards are offered. DiscoverCure is offered once per
// color, with the first CardsToCure matching cards in hand.
func (g *Game) LegalMoves() []Move {
	if g.IsOver() || g.TurnCount == 0 {
		return nil
	}

	if moves := g.discardMoves(); len(moves) > 0 {
		return moves
	}

	switch g.Phase() {
	case ActionPhase:
		if g.Turn.Actions == 0 {
			return []Move{{Type: EndActionsAction}}
		}
		return g.actionMoves()
	case InfectionPhase:
		return g.infectionMoves()
	default:
		return nil
	}
}

func (g *Game) discardMoves() []Move {
	var moves []Move
	for _, player := range g.Players {
		if !player.Hand.OverLimit() {
			continue
		}
		for _, card := range player.Hand.Cards() {
			moves = append(moves, Move{Type: DiscardAction, Player: player.Index, City: card})
		}
	}
	return moves
}

func (g *Game) infectionMoves() []Move {
	t := g.InfectionTurn
	switch {
	case t.Ended:
		return []Move{{Type: NextTurnAction}}
	case t.PlayerCardsDrawn < PlayerCardsPerTurn:
		return []Move{{Type: DrawPlayerCardAction}}
	case t.InfectionCardsDrawn < g.InfectionRate():
		return []Move{{Type: DrawInfectionCardAction}}
	default:
		return []Move{{Type: EndInfectionAction}}
	}
}

func (g *Game) actionMoves() []Move {
	player := g.Turn.Player
	here := g.Cities[player.City]
	hand := player.Hand.Cards()

	moves := []Move{{Type: SkipAction}, {Type: EndActionsAction}}

	for _, neighbor := range g.Map.neighbors(here.Name) {
		moves = append(moves, Move{Type: DriveAction, City: neighbor})
	}

	for _, card := range hand {
		if card != here.Name {
			moves = append(moves, Move{Type: DirectFlightAction, City: card})
		}
	}

	holdsHere := player.Hand.Contains(here.Name)
	if holdsHere {
		for _, name := range g.Map.Names() {
			if name != here.Name {
				moves = append(moves, Move{Type: CharterFlightAction, City: name})
			}
		}
	}

	if here.HasResearchStation {
		for _, name := range g.Map.Names() {
			if name != here.Name && g.Cities[name].HasResearchStation {
				moves = append(moves, Move{Type: ShuttleFlightAction, City: name})
			}
		}
	}

	if holdsHere && !here.HasResearchStation {
		if g.ResearchStations < MaxResearchStations {
			moves = append(moves, Move{Type: BuildResearchStationAction})
		} else {
			for _, name := range g.Map.Names() {
				if g.Cities[name].HasResearchStation {
					moves = append(moves, Move{Type: RemoveResearchStationAction, City: name})
				}
			}
		}
	}

	for _, color := range AllColors {
		if here.Cubes[color] > 0 {
			moves = append(moves, Move{Type: TreatDiseaseAction, Color: color})
		}
	}

	for _, other := range g.Players {
		if other == player || other.City != here.Name {
			continue
		}
		if holdsHere || other.Hand.Contains(here.Name) {
			moves = append(moves, Move{Type: ShareKnowledgeAction, Player: other.Index})
		}
	}

	if here.HasResearchStation {
		for _, color := range AllColors {
			if g.IsCured(color) {
				continue
			}
			var cards []string
			for _, card := range hand {
				if c, _ := g.Map.Color(card); c == color {
					cards = append(cards, card)
				}
			}
			if len(cards) >= CardsToCure {
				moves = append(moves, Move{Type: DiscoverCureAction, Color: color, Cards: cards[:CardsToCure]})
			}
		}
	}

	return moves
}
