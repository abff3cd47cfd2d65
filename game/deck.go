package game

import (
	"pandemic/utils"

	"golang.org/x/exp/rand"
)

type CardKind int

const (
	CityCard     CardKind = iota // 0
	EpidemicCard                 // 1
)

// PlayerCard is one entry of the player deck: a city card or an epidemic marker.
type PlayerCard struct {
	Kind CardKind
	City string // empty for epidemics
}

// Epidemic is the marker shuffled into the player deck during setup.
var Epidemic = PlayerCard{Kind: EpidemicCard}

func (c PlayerCard) IsEpidemic() bool {
	return c.Kind == EpidemicCard
}

func (c PlayerCard) String() string {
	if c.IsEpidemic() {
		return "epidemic"
	}
	return c.City
}

// PlayerDeck is the draw pile of player cards. The top of the deck is the end of Cards.
type PlayerDeck struct {
	Cards []PlayerCard
}

func newPlayerDeck(cities []string) *PlayerDeck {
	d := &PlayerDeck{Cards: make([]PlayerCard, 0, len(cities))}
	for _, name := range cities {
		d.Cards = append(d.Cards, PlayerCard{Kind: CityCard, City: name})
	}
	return d
}

func (d *PlayerDeck) Len() int {
	return len(d.Cards)
}

// Draw removes and returns the top card. ok is false when the deck is empty.
func (d *PlayerDeck) Draw() (card PlayerCard, ok bool) {
	if len(d.Cards) == 0 {
		return PlayerCard{}, false
	}
	card = d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card, true
}

// Push puts a card on top of the deck.
func (d *PlayerDeck) Push(card PlayerCard) {
	d.Cards = append(d.Cards, card)
}

// EpidemicCount returns how many epidemic markers are still in the deck.
func (d *PlayerDeck) EpidemicCount() int {
	return utils.Count(d.Cards, Epidemic)
}

func (d *PlayerDeck) shuffle(r *rand.Rand) {
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// insertEpidemics spreads n epidemic markers evenly through the deck.
// Cards are dealt round-robin into n sub-piles, each sub-pile gets one marker
// and is shuffled, then the piles are stacked and the whole deck reversed so
// the first pile assembled is drawn first.
func (d *PlayerDeck) insertEpidemics(r *rand.Rand, n int) {
	d.shuffle(r)
	if n <= 0 {
		return
	}

	subPiles := make([][]PlayerCard, n)
	for i, card := range d.Cards {
		subPiles[i%n] = append(subPiles[i%n], card)
	}

	output := make([]PlayerCard, 0, len(d.Cards)+n)
	for _, pile := range subPiles {
		pile = append(pile, Epidemic)
		r.Shuffle(len(pile), func(i, j int) {
			pile[i], pile[j] = pile[j], pile[i]
		})
		output = append(output, pile...)
	}

	utils.Reverse(output)
	d.Cards = output
}

// InfectionDeck manages the infection draw pile and its discard pile.
// The top of the deck is the end of Deck. Every city is in exactly one of the two piles.
type InfectionDeck struct {
	game *Game

	Deck     []string
	Discards []string
}

func newInfectionDeck(g *Game, cities []string) *InfectionDeck {
	return &InfectionDeck{
		game:     g,
		Deck:     append([]string(nil), cities...),
		Discards: []string{},
	}
}

// Draw takes the top card, discards it and returns its city.
func (d *InfectionDeck) Draw() *City {
	return d.drawAt(-1)
}

// DrawBottom takes the bottom card, as epidemics do, discards it and returns its city.
func (d *InfectionDeck) DrawBottom() *City {
	return d.drawAt(0)
}

// drawAt removes the card at index (negative means the top). Each draw resets
// the outbreak chain, so every revealed city starts a fresh propagation.
func (d *InfectionDeck) drawAt(index int) *City {
	d.game.resetOutbreakChain()

	if len(d.Deck) == 0 {
		// Only reachable on very long games; recycle the discards rather than fail
		d.Intensify()
	}

	if index < 0 || index >= len(d.Deck) {
		index = len(d.Deck) - 1
	}
	name := d.Deck[index]
	d.Deck = append(d.Deck[:index], d.Deck[index+1:]...)
	d.Discards = append(d.Discards, name)
	return d.game.Cities[name]
}

// Intensify shuffles the discard pile and places it on top of the deck.
func (d *InfectionDeck) Intensify() {
	r := d.game.rng
	r.Shuffle(len(d.Discards), func(i, j int) {
		d.Discards[i], d.Discards[j] = d.Discards[j], d.Discards[i]
	})
	d.Deck = append(d.Deck, d.Discards...)
	d.Discards = []string{}
}

func (d *InfectionDeck) shuffle() {
	d.game.rng.Shuffle(len(d.Deck), func(i, j int) {
		d.Deck[i], d.Deck[j] = d.Deck[j], d.Deck[i]
	})
}

// Len returns the number of cards left to draw.
func (d *InfectionDeck) Len() int {
	return len(d.Deck)
}

// Top returns the city that the next Draw will reveal, or "" for an empty deck.
func (d *InfectionDeck) Top() string {
	if len(d.Deck) == 0 {
		return ""
	}
	return d.Deck[len(d.Deck)-1]
}

// Bottom returns the city that the next epidemic will reveal, or "" for an empty deck.
func (d *InfectionDeck) Bottom() string {
	if len(d.Deck) == 0 {
		return ""
	}
	return d.Deck[0]
}
