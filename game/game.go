package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

const (
	MinPlayers          = 2
	MaxPlayers          = 4
	MaxEpidemicCards    = 10
	CubesPerColor       = 24
	MaxResearchStations = 6
	ActionsPerTurn      = 4
	PlayerCardsPerTurn  = 2
	CardsToCure         = 5
	// Dealt hand size is StartingHandBase minus the number of players.
	StartingHandBase = 6
)

type Option func(g *Game)

// WithRand sets the random source used for every shuffle.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds a new random source, making Setup and epidemics reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger game events are written to. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

// Game is the root of all match state. It is not safe for concurrent use:
// every call must come from a single driver.
type Game struct {
	ID               uuid.UUID
	Map              *CityGraph // Static board, shared and never modified
	Players          []*Player
	Cities           map[string]*City
	NumEpidemicCards int

	TurnCount     int
	Turn          *PlayerTurn    // Current action phase, nil before setup and after a loss
	InfectionTurn *InfectionTurn // Current infection phase, nil until the action phase ends

	InfectionDeck     *InfectionDeck
	PlayerDeck        *PlayerDeck
	PlayerDiscardPile []PlayerCard

	InfectionTrack     int
	Outbreaks          int
	CubeSupply         [NumColors]int
	CuredDiseases      []Color
	EradicatedDiseases []Color
	ResearchStations   int

	Lost       bool
	LossReason LossReason
	Won        bool

	setupDone     bool
	outbreakChain map[chainLink]struct{}
	rng           *rand.Rand
	log           zerolog.Logger
}

// NewGame builds a game on the given map. No cards are dealt until Setup.
func NewGame(m *CityGraph, numPlayers, numEpidemicCards int, options ...Option) (*Game, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("%w: %d players, need %d to %d", ErrInvalidConfig, numPlayers, MinPlayers, MaxPlayers)
	}
	if numEpidemicCards < 0 || numEpidemicCards > MaxEpidemicCards {
		return nil, fmt.Errorf("%w: %d epidemic cards, need 0 to %d", ErrInvalidConfig, numEpidemicCards, MaxEpidemicCards)
	}
	if m == nil || !m.Has(StartingCity) {
		return nil, fmt.Errorf("%w: map must contain %s", ErrInvalidConfig, StartingCity)
	}

	g := &Game{ // Default values
		ID:                uuid.New(),
		Map:               m,
		Cities:            make(map[string]*City, m.Len()),
		NumEpidemicCards:  numEpidemicCards,
		PlayerDiscardPile: []PlayerCard{},
		InfectionTrack:    1,
		outbreakChain:     make(map[chainLink]struct{}),
		rng:               rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		log:               zerolog.Nop(),
	}
	for _, option := range options {
		option(g)
	}

	for _, color := range AllColors {
		g.CubeSupply[color] = CubesPerColor
	}

	names := m.Names()
	for _, name := range names {
		color, _ := m.Color(name)
		g.Cities[name] = newCity(g, name, color)
	}

	g.Players = make([]*Player, numPlayers)
	for i := range g.Players {
		g.Players[i] = newPlayer(g, i)
	}

	g.InfectionDeck = newInfectionDeck(g, names)
	g.PlayerDeck = newPlayerDeck(names)

	g.Cities[StartingCity].HasResearchStation = true
	g.ResearchStations = 1

	return g, nil
}

// Setup runs the random part of game preparation: dealing hands, shuffling
// in the epidemics, seeding the first infections and starting the first turn.
func (g *Game) Setup() error {
	if g.setupDone {
		return invalidState("game already set up")
	}
	g.setupDone = true

	g.PlayerDeck.shuffle(g.rng)
	cardsPerPlayer := StartingHandBase - len(g.Players)
	for _, player := range g.Players {
		for i := 0; i < cardsPerPlayer; i++ {
			card, ok := g.PlayerDeck.Draw()
			if !ok {
				break
			}
			player.Hand.Add(card.City)
		}
	}

	g.PlayerDeck.insertEpidemics(g.rng, g.NumEpidemicCards)

	g.InfectionDeck.shuffle()
	for _, cubes := range []int{3, 2, 1} {
		for i := 0; i < 3; i++ {
			city := g.InfectionDeck.Draw()
			for j := 0; j < cubes; j++ {
				city.Infect()
			}
		}
	}

	g.log.Debug().
		Stringer("game", g.ID).
		Int("players", len(g.Players)).
		Int("epidemics", g.NumEpidemicCards).
		Msg("game set up")

	return g.NextTurn()
}

// InfectionRate returns how many infection cards are drawn per turn at the current track position.
func (g *Game) InfectionRate() int {
	if g.InfectionTrack < 4 {
		return 2
	}
	if g.InfectionTrack < 6 {
		return 3
	}
	return 4
}

// NextTurn starts the next player's action phase. Both phases of the current turn must have ended.
func (g *Game) NextTurn() error {
	if g.IsOver() {
		return ErrGameOver
	}
	if !g.setupDone {
		return invalidState("game not set up")
	}
	if g.TurnCount > 0 {
		if g.Turn == nil || !g.Turn.Ended {
			return invalidState("must end the action phase before starting the next turn")
		}
		if g.InfectionTurn == nil || !g.InfectionTurn.Ended {
			return invalidState("must end the infection phase before starting the next turn")
		}
	}

	g.TurnCount++
	// Player 0 opens the game.
	player := g.Players[(g.TurnCount-1)%len(g.Players)]
	g.Turn = newPlayerTurn(g, player)
	g.InfectionTurn = nil

	g.log.Debug().Int("turn", g.TurnCount).Stringer("player", player).Msg("ready player")
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil before setup.
func (g *Game) CurrentPlayer() *Player {
	if g.TurnCount == 0 {
		return nil
	}
	return g.Players[(g.TurnCount-1)%len(g.Players)]
}

// Epidemic resolves an epidemic card: increase the infection rate, infect the
// bottom city of the infection deck, then put the shuffled discards back on top.
func (g *Game) Epidemic() {
	// Increase
	g.InfectionTrack++

	// Infect
	city := g.InfectionDeck.DrawBottom()
	g.log.Debug().Str("city", city.Name).Int("track", g.InfectionTrack).Msg("epidemic")
	present := city.Cubes[city.Color]
	infections := MaxCubesPerColor
	if present > 0 {
		infections = MaxCubesPerColor + 1 - present // the last one breaks out
	}
	for i := 0; i < infections; i++ {
		city.Infect()
	}

	// Intensify
	g.InfectionDeck.Intensify()
}

// IsCured reports whether a cure for color has been discovered.
func (g *Game) IsCured(color Color) bool {
	return slices.Contains(g.CuredDiseases, color)
}

// IsEradicated reports whether color has been removed from play for good.
func (g *Game) IsEradicated(color Color) bool {
	return slices.Contains(g.EradicatedDiseases, color)
}

// CheckEradication marks color eradicated once it is cured and no cube of it remains on the board.
func (g *Game) CheckEradication(color Color) bool {
	if !g.IsCured(color) || g.CubeSupply[color] < CubesPerColor {
		return false
	}
	if g.IsEradicated(color) {
		return true
	}
	g.EradicatedDiseases = append(g.EradicatedDiseases, color)
	g.log.Info().Stringer("color", color).Msg("disease eradicated")
	return true
}

// RemoveResearchStation takes a research station off the board. This is not an action.
func (g *Game) RemoveResearchStation(name string) error {
	if g.IsOver() {
		return ErrGameOver
	}
	city, ok := g.Cities[name]
	if !ok {
		return illegalAction("unknown city %s", name)
	}
	if !city.HasResearchStation {
		return invalidState("no research station in %s to remove", name)
	}
	city.HasResearchStation = false
	g.ResearchStations--
	return nil
}

// IsOver reports whether the game has been won or lost.
func (g *Game) IsOver() bool {
	return g.Lost || g.Won
}

// lose ends the game. Only the first reason is kept.
func (g *Game) lose(reason LossReason) {
	if !g.Lost {
		g.LossReason = reason
		g.log.Info().Stringer("game", g.ID).Stringer("reason", reason).Msg("you have lost")
	}
	g.Lost = true
	g.Turn = nil
}

func (g *Game) win() {
	g.Won = true
	g.log.Info().Stringer("game", g.ID).Msg("all diseases cured: you win")
}

// checkHandLimits fails if any player holds more than MaxHandSize cards.
func (g *Game) checkHandLimits() error {
	for _, player := range g.Players {
		if player.Hand.OverLimit() {
			return invalidState("%s must discard to %d cards before continuing", player, MaxHandSize)
		}
	}
	return nil
}

// CubesOnBoard returns how many cubes of color sit on cities.
func (g *Game) CubesOnBoard(color Color) int {
	total := 0
	for _, city := range g.Cities {
		total += city.Cubes[color]
	}
	return total
}
