package event

type HakimChosenPayload struct {
	Seat int
}

type HakimChosenListener interface {
	OnHakimChosen(HakimChosenPayload)
}

func (b *Bus) EmitHakimChosen(payload HakimChosenPayload) {
	for _, listener := range b.listeners {
		if l, ok := listener.(HakimChosenListener); ok {
			l.OnHakimChosen(payload)
		}
	}
}
