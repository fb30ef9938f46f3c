package game

import (
	"github.com/ratel-online/hokm/hokm/card"
)

type Play struct {
	Seat int       `json:"seat"`
	Card card.Card `json:"card"`
}

type Trick struct {
	Plays  []Play `json:"plays"`
	Winner int    `json:"winner"`
}

func (t Trick) Leader() int {
	return t.Plays[0].Seat
}

func LeadSuit(plays []Play) (card.Suit, bool) {
	if len(plays) == 0 {
		return 0, false
	}
	return plays[0].Card.Suit, true
}

// TrickWinner returns the seat that takes the trick: the highest trump if any
// trump was played, otherwise the highest card of the lead suit. It returns -1
// for an empty trick.
func TrickWinner(plays []Play, trump card.Suit, hasTrump bool) int {
	lead, ok := LeadSuit(plays)
	if !ok {
		return -1
	}
	best := plays[0]
	for _, play := range plays[1:] {
		if beats(play.Card, best.Card, lead, trump, hasTrump) {
			best = play
		}
	}
	return best.Seat
}

func beats(challenger, best card.Card, lead, trump card.Suit, hasTrump bool) bool {
	if hasTrump {
		if best.Suit == trump {
			return challenger.Suit == trump && challenger.Rank > best.Rank
		}
		if challenger.Suit == trump {
			return true
		}
	}
	return challenger.Suit == lead && challenger.Rank > best.Rank
}
