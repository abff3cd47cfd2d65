package game

// InfectionTurn is the second half of a turn: the player draws two player
// cards, then InfectionRate infection cards are revealed.
type InfectionTurn struct {
	game   *Game
	Player *Player
	Ended  bool

	PlayerCardsDrawn    int
	InfectionCardsDrawn int
}

// newInfectionTurn loses the game straight away when the player deck cannot
// supply both draws.
func newInfectionTurn(g *Game, player *Player) *InfectionTurn {
	if g.PlayerDeck.Len() < PlayerCardsPerTurn {
		g.lose(PlayerDeckExhausted)
	}
	return &InfectionTurn{
		game:   g,
		Player: player,
	}
}

// DrawPlayerCard draws the top player card. City cards go to the hand, which
// may then exceed MaxHandSize until the player discards. Epidemics are
// resolved immediately and put on the discard pile.
func (t *InfectionTurn) DrawPlayerCard() error {
	g := t.game
	if g.IsOver() {
		return ErrGameOver
	}
	if t.Ended {
		return invalidState("infection phase already ended, run NextTurn")
	}
	if t.PlayerCardsDrawn >= PlayerCardsPerTurn {
		return invalidState("already drew %d player cards", PlayerCardsPerTurn)
	}
	if err := g.checkHandLimits(); err != nil {
		return err
	}

	card, ok := g.PlayerDeck.Draw()
	if !ok {
		g.lose(PlayerDeckExhausted)
		return ErrGameOver
	}
	t.PlayerCardsDrawn++

	if card.IsEpidemic() {
		g.Epidemic()
		g.PlayerDiscardPile = append(g.PlayerDiscardPile, card)
		return nil
	}
	t.Player.Hand.Add(card.City)
	return nil
}

// DrawInfectionCard reveals the top infection card and infects that city once.
func (t *InfectionTurn) DrawInfectionCard() error {
	g := t.game
	if g.IsOver() {
		return ErrGameOver
	}
	if t.Ended {
		return invalidState("infection phase already ended, run NextTurn")
	}
	if t.PlayerCardsDrawn != PlayerCardsPerTurn {
		return invalidState("must draw %d player cards before infecting, drew %d", PlayerCardsPerTurn, t.PlayerCardsDrawn)
	}
	if rate := g.InfectionRate(); t.InfectionCardsDrawn >= rate {
		return invalidState("already drew %d infection cards", rate)
	}

	city := g.InfectionDeck.Draw()
	t.InfectionCardsDrawn++
	g.log.Debug().Str("city", city.Name).Msg("infect")
	city.Infect()
	return nil
}

// End closes the infection phase once every required card has been drawn.
func (t *InfectionTurn) End() error {
	g := t.game
	if g.IsOver() {
		return ErrGameOver
	}
	if t.Ended {
		return invalidState("infection phase already ended, run NextTurn")
	}
	if t.PlayerCardsDrawn != PlayerCardsPerTurn {
		return invalidState("must draw %d player cards, drew %d", PlayerCardsPerTurn, t.PlayerCardsDrawn)
	}
	if rate := g.InfectionRate(); t.InfectionCardsDrawn != rate {
		return invalidState("must draw %d infection cards, drew %d", rate, t.InfectionCardsDrawn)
	}
	t.Ended = true
	return nil
}
