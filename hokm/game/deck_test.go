package game_test

import (
	"testing"

	"github.com/ratel-online/hokm/hokm/card"
	"github.com/ratel-online/hokm/hokm/game"
	"github.com/stretchr/testify/require"
)

func TestOrderedDeck(t *testing.T) {
	cards := game.OrderedDeck()
	require.Len(t, cards, 52)
	require.Equal(t, card.New(card.Two, card.Hearts), cards[0])
	require.Equal(t, card.New(card.Ace, card.Hearts), cards[12])
	require.Equal(t, card.New(card.Two, card.Diamonds), cards[13])
	require.Equal(t, card.New(card.Two, card.Clubs), cards[26])
	require.Equal(t, card.New(card.Ace, card.Spades), cards[51])
}

func TestCreateDeck(t *testing.T) {
	t.Run("holds_every_card_exactly_once", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			require.ElementsMatch(t, game.OrderedDeck(), game.CreateDeck())
		}
	})

	t.Run("shuffles_differ", func(t *testing.T) {
		first := game.CreateDeck()
		differs := false
		for i := 0; i < 5 && !differs; i++ {
			differs = !cardsEqual(first, game.CreateDeck())
		}
		require.True(t, differs)
	})
}

func TestDraw(t *testing.T) {
	t.Run("returns_all_52_cards", func(t *testing.T) {
		deck := game.NewDeck()
		cards := deck.Draw(52)
		require.ElementsMatch(t, game.OrderedDeck(), cards)
		require.True(t, deck.Empty())
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck()
		require.Empty(t, deck.Draw(0))
		require.Equal(t, 52, deck.Size())
	})

	t.Run("stops_at_the_bottom", func(t *testing.T) {
		deck := game.NewDeck()
		deck.Draw(50)
		require.Len(t, deck.Draw(5), 2)
		require.Empty(t, deck.Draw(1))
	})

	t.Run("draws_from_the_top", func(t *testing.T) {
		deck, err := game.NewDeckOf(game.OrderedDeck())
		require.NoError(t, err)
		require.Equal(t, card.New(card.Two, card.Hearts), deck.Draw(1)[0])
		require.Equal(t, suitRun(card.Hearts, card.Three, card.Five), deck.Draw(3))
	})
}

func TestNewDeckOf(t *testing.T) {
	cards := game.OrderedDeck()
	cards[1] = cards[0]
	_, err := game.NewDeckOf(cards)
	require.Equal(t, game.ErrInvalidDeck, err)

	_, err = game.NewDeckOf(game.OrderedDeck()[:51])
	require.Equal(t, game.ErrInvalidDeck, err)
}

func cardsEqual(a, b []card.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
