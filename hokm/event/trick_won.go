package event

import "github.com/ratel-online/hokm/hokm/card"

type TrickWonPayload struct {
	Number int
	Leader int
	Winner int
	// Cards is keyed by seat.
	Cards map[int]card.Card
}

type TrickWonListener interface {
	OnTrickWon(TrickWonPayload)
}

func (b *Bus) EmitTrickWon(payload TrickWonPayload) {
	for _, listener := range b.listeners {
		if l, ok := listener.(TrickWonListener); ok {
			l.OnTrickWon(payload)
		}
	}
}
