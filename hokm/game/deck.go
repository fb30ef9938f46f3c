package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/hokm/hokm/card"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

type Deck struct {
	cards []card.Card
}

// OrderedDeck returns the 52 cards in generation order: Hearts, Diamonds,
// Clubs, Spades, each from Two to Ace.
func OrderedDeck() []card.Card {
	cards := make([]card.Card, 0, len(card.Suits)*len(card.Ranks))
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.New(rank, suit))
		}
	}
	return cards
}

// CreateDeck returns a freshly shuffled deck.
func CreateDeck() []card.Card {
	cards := OrderedDeck()
	shuffleCards(nil, cards)
	return cards
}

func NewDeck() *Deck {
	return &Deck{cards: CreateDeck()}
}

// NewDeckOf stacks a deck in the given order, for replays and tests.
func NewDeckOf(cards []card.Card) (*Deck, error) {
	if !isFullDeck(cards) {
		return nil, ErrInvalidDeck
	}
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck, nil
}

func newShuffledDeck(rng *rand.Rand) *Deck {
	cards := OrderedDeck()
	shuffleCards(rng, cards)
	return &Deck{cards: cards}
}

func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func isFullDeck(cards []card.Card) bool {
	if len(cards) != len(card.Suits)*len(card.Ranks) {
		return false
	}
	seen := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		if !c.Valid() || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if rng != nil {
		rng.Shuffle(len(cards), swap)
		return
	}
	rand.Shuffle(len(cards), swap)
}
