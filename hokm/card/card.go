package card

import (
	"fmt"
	"sort"
	"strings"
)

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Index places the card in 0..51, suit-major and rank-ascending.
func (c Card) Index() int {
	return int(c.Suit)*len(Ranks) + int(c.Rank-Two)
}

// Code is the short form used on the wire, e.g. "AS" or "10H".
func (c Card) Code() string {
	return c.Rank.Code() + c.Suit.Letter()
}

func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

func (c Card) String() string {
	return c.Suit.Paintf("[%s%s]", c.Rank.Code(), c.Suit.Symbol())
}

// Parse reads a card code: a rank code followed by a suit letter or symbol.
func Parse(code string) (Card, error) {
	code = strings.TrimSpace(code)
	runes := []rune(code)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card '%s'", code)
	}
	suit, err := SuitByName(string(runes[len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card '%s'", code)
	}
	rank, err := RankByName(string(runes[:len(runes)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card '%s'", code)
	}
	return New(rank, suit), nil
}

// Sort orders cards by suit, then by rank.
func Sort(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Index() < cards[j].Index()
	})
}

func Contains(cards []Card, searched Card) bool {
	for _, c := range cards {
		if c == searched {
			return true
		}
	}
	return false
}

func Join(cards []Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
