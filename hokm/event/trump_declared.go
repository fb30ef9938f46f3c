package event

import "github.com/ratel-online/hokm/hokm/card"

type TrumpDeclaredPayload struct {
	Hakim int
	Suit  card.Suit
}

type TrumpDeclaredListener interface {
	OnTrumpDeclared(TrumpDeclaredPayload)
}

func (b *Bus) EmitTrumpDeclared(payload TrumpDeclaredPayload) {
	for _, listener := range b.listeners {
		if l, ok := listener.(TrumpDeclaredListener); ok {
			l.OnTrumpDeclared(payload)
		}
	}
}
