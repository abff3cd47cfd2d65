package game

import "fmt"

type Phase int

const (
	SetupPhase Phase = iota
	ActionPhase
	InfectionPhase
	GameOverPhase
)

var phaseNames = map[Phase]string{
	SetupPhase:     "Setup",
	ActionPhase:    "Action",
	InfectionPhase: "Infection",
	GameOverPhase:  "GameOver",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// Phase reports which part of the turn cycle the game is in. Between the end
// of an infection phase and the next NextTurn call it is still InfectionPhase.
func (g *Game) Phase() Phase {
	switch {
	case g.IsOver():
		return GameOverPhase
	case g.InfectionTurn != nil:
		return InfectionPhase
	case g.Turn != nil:
		return ActionPhase
	default:
		return SetupPhase
	}
}

// PlayerTurn manages a single player's action phase. Player actions are
// methods of this type; drawing and infecting are handled by InfectionTurn.
type PlayerTurn struct {
	game    *Game
	Player  *Player
	Actions int // Actions left this turn
	Ended   bool
}

func newPlayerTurn(g *Game, player *Player) *PlayerTurn {
	return &PlayerTurn{
		game:    g,
		Player:  player,
		Actions: ActionsPerTurn,
	}
}

// End declares the end of the action phase and starts the InfectionTurn.
func (t *PlayerTurn) End() error {
	if t.game.IsOver() {
		return ErrGameOver
	}
	if t.Ended {
		return invalidState("action phase already ended, run NextTurn")
	}
	if err := t.game.checkHandLimits(); err != nil {
		return err
	}
	t.Ended = true
	t.game.InfectionTurn = newInfectionTurn(t.game, t.Player)
	return nil
}

// act wraps every action with the shared checks. apply must validate all of
// its preconditions before it mutates anything; the action is only counted
// when apply succeeds.
func (t *PlayerTurn) act(name string, apply func() error) error {
	if t.game.IsOver() {
		return ErrGameOver
	}
	if t.Ended {
		return invalidState("turn has ended, run NextTurn")
	}
	if t.Actions == 0 {
		return invalidState("no more actions, end your turn")
	}
	if err := t.game.checkHandLimits(); err != nil {
		return err
	}

	if err := apply(); err != nil {
		return err
	}

	t.Actions--
	t.game.log.Debug().Stringer("player", t.Player).Str("action", name).Int("left", t.Actions).Msg("action")
	return nil
}

func (t *PlayerTurn) city(name string) (*City, error) {
	city, ok := t.game.Cities[name]
	if !ok {
		return nil, illegalAction("unknown city %s", name)
	}
	return city, nil
}

// Skip spends one action without doing anything.
func (t *PlayerTurn) Skip() error {
	return t.act("skip", func() error { return nil })
}

// Drive moves the player to an adjacent city.
func (t *PlayerTurn) Drive(target string) error {
	return t.act("drive", func() error {
		if !t.game.Map.AreAdjacent(t.Player.City, target) {
			return illegalAction("%s not adjacent to %s", target, t.Player.City)
		}
		t.Player.City = target
		return nil
	})
}

// DirectFlight discards the target city's card to fly there.
func (t *PlayerTurn) DirectFlight(target string) error {
	return t.act("direct_flight", func() error {
		if _, err := t.city(target); err != nil {
			return err
		}
		if !t.Player.Hand.Contains(target) {
			return illegalAction("target city card %s not in %s's hand", target, t.Player)
		}
		if err := t.Player.Hand.Discard(target); err != nil {
			return err
		}
		t.Player.City = target
		return nil
	})
}

// CharterFlight discards the current city's card to fly anywhere.
func (t *PlayerTurn) CharterFlight(target string) error {
	return t.act("charter_flight", func() error {
		current := t.Player.City
		if _, err := t.city(target); err != nil {
			return err
		}
		if !t.Player.Hand.Contains(current) {
			return illegalAction("current city card %s not in %s's hand", current, t.Player)
		}
		if err := t.Player.Hand.Discard(current); err != nil {
			return err
		}
		t.Player.City = target
		return nil
	})
}

// ShuttleFlight moves between two cities that both have research stations.
func (t *PlayerTurn) ShuttleFlight(target string) error {
	return t.act("shuttle_flight", func() error {
		there, err := t.city(target)
		if err != nil {
			return err
		}
		here := t.game.Cities[t.Player.City]
		if !here.HasResearchStation || !there.HasResearchStation {
			return illegalAction("both %s and %s need a research station", here, there)
		}
		t.Player.City = target
		return nil
	})
}

// BuildResearchStation builds a station in the current city. The player must
// hold that city's card; the card stays in hand.
func (t *PlayerTurn) BuildResearchStation() error {
	return t.act("build_research_station", func() error {
		city := t.game.Cities[t.Player.City]
		if city.HasResearchStation {
			return illegalAction("there is already a research station in %s", city)
		}
		if !t.Player.Hand.Contains(city.Name) {
			return illegalAction("current city card %s not in %s's hand", city, t.Player)
		}
		if t.game.ResearchStations >= MaxResearchStations {
			return illegalAction("already %d research stations on board, remove one with RemoveResearchStation", MaxResearchStations)
		}
		city.HasResearchStation = true
		t.game.ResearchStations++
		return nil
	})
}

// TreatDisease removes one cube of color from the current city, or every
// cube of it once the disease is cured.
func (t *PlayerTurn) TreatDisease(color Color) error {
	return t.act("treat_disease", func() error {
		if !color.Valid() {
			return illegalAction("invalid color %v", color)
		}
		city := t.game.Cities[t.Player.City]
		if city.Cubes[color] == 0 {
			return illegalAction("no %s cubes in %s", color, city)
		}
		if t.game.IsCured(color) {
			city.removeCubes(color, city.Cubes[color])
		} else {
			city.removeCubes(color, 1)
		}
		t.game.CheckEradication(color)
		return nil
	})
}

// ShareKnowledge gives the current city's card to, or takes it from, another
// player in the same city. Whoever holds the card gives it.
func (t *PlayerTurn) ShareKnowledge(other *Player) error {
	return t.act("share_knowledge", func() error {
		if other == nil || other == t.Player {
			return illegalAction("must share knowledge with another player")
		}
		if t.Player.City != other.City {
			return illegalAction("%s and %s must be in the same city", t.Player, other)
		}
		card := t.Player.City
		switch {
		case t.Player.Hand.Contains(card):
			transferCard(t.Player, other, card)
		case other.Hand.Contains(card):
			transferCard(other, t.Player, card)
		default:
			return illegalAction("neither %s nor %s has the card for %s", t.Player, other, card)
		}
		return nil
	})
}

// DiscoverCure discards CardsToCure city cards of color at a research station to cure that disease.
func (t *PlayerTurn) DiscoverCure(color Color, cities []string) error {
	return t.act("discover_cure", func() error {
		if err := t.validateCure(color, cities); err != nil {
			return err
		}

		for _, city := range cities {
			if err := t.Player.Hand.Discard(city); err != nil {
				// validateCure checked every card, so this is a bug
				panic(fmt.Sprintf("discover cure: %v", err))
			}
		}

		g := t.game
		g.CuredDiseases = append(g.CuredDiseases, color)
		g.log.Info().Stringer("player", t.Player).Stringer("color", color).Msg("cure discovered")
		g.CheckEradication(color)
		if len(g.CuredDiseases) == NumColors {
			g.win()
		}
		return nil
	})
}

func (t *PlayerTurn) validateCure(color Color, cities []string) error {
	if !color.Valid() {
		return illegalAction("invalid color %v", color)
	}
	if !t.game.Cities[t.Player.City].HasResearchStation {
		return illegalAction("%s needs a research station to discover a cure", t.Player.City)
	}
	if t.game.IsCured(color) {
		return illegalAction("%s is already cured", color)
	}
	if len(cities) != CardsToCure {
		return illegalAction("supplied %d cards, need %d", len(cities), CardsToCure)
	}

	seen := make(map[string]bool, len(cities))
	for _, city := range cities {
		if seen[city] {
			return illegalAction("card %s supplied twice", city)
		}
		seen[city] = true
		if !t.Player.Hand.Contains(city) {
			return illegalAction("chosen card %s must be in %s's hand", city, t.Player)
		}
		if c, _ := t.game.Map.Color(city); c != color {
			return illegalAction("card %s is %s, all cards must be %s", city, c, color)
		}
	}
	return nil
}
