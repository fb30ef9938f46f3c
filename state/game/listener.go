package game

import (
	"github.com/ratel-online/hokm/database"
	"github.com/ratel-online/hokm/hokm/event"
	"github.com/ratel-online/hokm/render"
)

// listener relays engine events to everyone at the table. It runs under the
// room lock, inside the engine call that raised the event.
type listener struct {
	table *database.Hokm
}

func (l *listener) broadcast(msg string) {
	database.Broadcast(l.table.Room.ID, msg)
}

func (l *listener) OnHakimChosen(payload event.HakimChosenPayload) {
	l.broadcast(render.HakimChosen(render.Names(l.table), payload))
}

func (l *listener) OnTrumpDeclared(payload event.TrumpDeclaredPayload) {
	l.broadcast(render.TrumpDeclared(render.Names(l.table), payload))
}

func (l *listener) OnCardPlayed(payload event.CardPlayedPayload) {
	l.broadcast(render.CardPlayed(render.Names(l.table), payload))
}

func (l *listener) OnTrickWon(payload event.TrickWonPayload) {
	l.broadcast(render.TrickWon(render.Names(l.table), payload))
}

func (l *listener) OnRoundEnded(payload event.RoundEndedPayload) {
	l.broadcast(render.RoundEnded(payload))
}
