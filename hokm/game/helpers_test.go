package game_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/ratel-online/hokm/hokm/card"
	"github.com/ratel-online/hokm/hokm/game"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func suitRun(suit card.Suit, from, to card.Rank) []card.Card {
	cards := make([]card.Card, 0, int(to-from)+1)
	for rank := from; rank <= to; rank++ {
		cards = append(cards, card.New(rank, suit))
	}
	return cards
}

func concat(parts ...[]card.Card) []card.Card {
	var cards []card.Card
	for _, part := range parts {
		cards = append(cards, part...)
	}
	return cards
}

// stackDeck orders a deck so that each seat ends up with hands[seat], in order.
func stackDeck(t *testing.T, hands [game.Seats][]card.Card) *game.Deck {
	t.Helper()
	cards := make([]card.Card, 0, 52)
	for seat := 0; seat < game.Seats; seat++ {
		cards = append(cards, hands[seat][:game.FirstDeal]...)
	}
	for seat := 0; seat < game.Seats; seat++ {
		cards = append(cards, hands[seat][game.FirstDeal:]...)
	}
	deck, err := game.NewDeckOf(cards)
	require.NoError(t, err)
	return deck
}

// sevenSixHands gives team A exactly 7 tricks with hearts as trump when every
// seat plays its first legal card.
func sevenSixHands() [game.Seats][]card.Card {
	return [game.Seats][]card.Card{
		concat(suitRun(card.Hearts, card.Eight, card.Ace), suitRun(card.Clubs, card.Two, card.Seven)),
		concat(suitRun(card.Hearts, card.Two, card.Seven), suitRun(card.Clubs, card.Eight, card.Ace)),
		suitRun(card.Diamonds, card.Two, card.Ace),
		suitRun(card.Spades, card.Two, card.Ace),
	}
}

func playFirstLegal(t *testing.T, g *game.Game) {
	t.Helper()
	for g.Phase() == game.PhasePlaying {
		seat := g.CurrentPlayer()
		moves := g.LegalMoves(seat)
		require.NotEmpty(t, moves)
		require.NoError(t, g.PlayCard(seat, moves[0]))
	}
}

func allHands(g *game.Game) []card.Card {
	var cards []card.Card
	for seat := 0; seat < game.Seats; seat++ {
		cards = append(cards, g.Hand(seat)...)
	}
	return cards
}
