package event

type RoundEndedPayload struct {
	Winner int
	Tricks [2]int
	Scores [2]int
}

type RoundEndedListener interface {
	OnRoundEnded(RoundEndedPayload)
}

func (b *Bus) EmitRoundEnded(payload RoundEndedPayload) {
	for _, listener := range b.listeners {
		if l, ok := listener.(RoundEndedListener); ok {
			l.OnRoundEnded(payload)
		}
	}
}
