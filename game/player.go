package game

import (
	"fmt"

	"pandemic/utils"
)

// MaxHandSize is the most cards a player may hold when an action or phase boundary is checked.
const MaxHandSize = 7

// Player represents one of the cooperating players.
type Player struct {
	game *Game

	Index int    // Position in Game.Players
	City  string // Current location
	Hand  *Hand
}

func newPlayer(g *Game, index int) *Player {
	p := &Player{
		game:  g,
		Index: index,
		City:  StartingCity,
	}
	p.Hand = &Hand{player: p}
	return p
}

func (p *Player) String() string {
	return fmt.Sprintf("Player%d", p.Index)
}

// Hand is a player's collection of city cards. It may hold more than
// MaxHandSize cards for a while; the turn checks enforce the limit.
type Hand struct {
	player *Player
	cards  []string
}

// Cards returns a copy of the cards in hand.
func (h *Hand) Cards() []string {
	return append([]string(nil), h.cards...)
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Contains(city string) bool {
	return utils.FindIndex(h.cards, city) >= 0
}

// Add puts cards into the hand without any size check.
func (h *Hand) Add(cities ...string) {
	h.cards = append(h.cards, cities...)
}

// OverLimit reports whether the hand must be reduced before play continues.
func (h *Hand) OverLimit() bool {
	return len(h.cards) > MaxHandSize
}

// CountColor returns how many cards in hand belong to cities of color.
func (h *Hand) CountColor(color Color) int {
	n := 0
	for _, card := range h.cards {
		if c, ok := h.player.game.Map.Color(card); ok && c == color {
			n++
		}
	}
	return n
}

// Discard removes a card from the hand and puts it on the player discard pile.
// It is not an action and can be used at any time to get back under the hand limit.
func (h *Hand) Discard(city string) error {
	if h.player.game.IsOver() {
		return ErrGameOver
	}
	if !h.remove(city) {
		return illegalAction("card %s not in %s's hand", city, h.player)
	}
	g := h.player.game
	g.PlayerDiscardPile = append(g.PlayerDiscardPile, PlayerCard{Kind: CityCard, City: city})
	return nil
}

func (h *Hand) remove(city string) bool {
	var ok bool
	h.cards, ok = utils.Remove(h.cards, city)
	return ok
}

// transferCard moves a card between two hands without touching the discard pile.
func transferCard(giver, recipient *Player, city string) {
	giver.Hand.remove(city)
	recipient.Hand.Add(city)
}
