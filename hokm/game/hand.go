package game

import (
	"github.com/ratel-online/hokm/hokm/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, HandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(c card.Card) bool {
	return card.Contains(h.cards, c)
}

func (h *Hand) HasSuit(suit card.Suit) bool {
	for _, c := range h.cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func (h *Hand) CardsOfSuit(suit card.Suit) []card.Card {
	var cards []card.Card
	for _, c := range h.cards {
		if c.Suit == suit {
			cards = append(cards, c)
		}
	}
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// RemoveCard reports whether the card was held.
func (h *Hand) RemoveCard(c card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand == c {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) Size() int {
	return len(h.cards)
}
