package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Snapshot returns a deep copy of the game that shares only the static map.
// Playing on the copy never affects g. The copy gets its own time-seeded
// random source unless options override it.
func (g *Game) Snapshot(options ...Option) *Game {
	s := &Game{
		ID:                 g.ID,
		Map:                g.Map,
		Cities:             make(map[string]*City, len(g.Cities)),
		NumEpidemicCards:   g.NumEpidemicCards,
		TurnCount:          g.TurnCount,
		PlayerDiscardPile:  append([]PlayerCard{}, g.PlayerDiscardPile...),
		InfectionTrack:     g.InfectionTrack,
		Outbreaks:          g.Outbreaks,
		CubeSupply:         g.CubeSupply,
		CuredDiseases:      append([]Color(nil), g.CuredDiseases...),
		EradicatedDiseases: append([]Color(nil), g.EradicatedDiseases...),
		ResearchStations:   g.ResearchStations,
		Lost:               g.Lost,
		LossReason:         g.LossReason,
		Won:                g.Won,
		setupDone:          g.setupDone,
		outbreakChain:      make(map[chainLink]struct{}, len(g.outbreakChain)),
		rng:                rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		log:                g.log,
	}
	for _, option := range options {
		option(s)
	}

	for name, city := range g.Cities {
		c := *city
		c.game = s
		s.Cities[name] = &c
	}
	for link := range g.outbreakChain {
		s.outbreakChain[link] = struct{}{}
	}

	s.Players = make([]*Player, len(g.Players))
	for i, player := range g.Players {
		p := newPlayer(s, player.Index)
		p.City = player.City
		p.Hand.cards = player.Hand.Cards()
		s.Players[i] = p
	}

	s.PlayerDeck = &PlayerDeck{Cards: append([]PlayerCard{}, g.PlayerDeck.Cards...)}
	s.InfectionDeck = &InfectionDeck{
		game:     s,
		Deck:     append([]string{}, g.InfectionDeck.Deck...),
		Discards: append([]string{}, g.InfectionDeck.Discards...),
	}

	if g.Turn != nil {
		s.Turn = &PlayerTurn{
			game:    s,
			Player:  s.Players[g.Turn.Player.Index],
			Actions: g.Turn.Actions,
			Ended:   g.Turn.Ended,
		}
	}
	if g.InfectionTurn != nil {
		t := *g.InfectionTurn
		t.game = s
		t.Player = s.Players[g.InfectionTurn.Player.Index]
		s.InfectionTurn = &t
	}

	return s
}
