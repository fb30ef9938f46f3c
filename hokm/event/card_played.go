package event

import "github.com/ratel-online/hokm/hokm/card"

type CardPlayedPayload struct {
	Seat int
	Card card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

func (b *Bus) EmitCardPlayed(payload CardPlayedPayload) {
	for _, listener := range b.listeners {
		if l, ok := listener.(CardPlayedListener); ok {
			l.OnCardPlayed(payload)
		}
	}
}
