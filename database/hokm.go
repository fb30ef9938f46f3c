package database

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/hokm/consts"
	"github.com/ratel-online/hokm/hokm/game"
)

// Hokm is the running match of a room. Access goes through the room lock.
type Hokm struct {
	Room   *Room              `json:"room"`
	Match  *game.Match        `json:"-"`
	Seats  [game.Seats]int64  `json:"seats"`
	States map[int64]chan int `json:"-"`
	closed bool
}

func NewHokm(room *Room) (*Hokm, error) {
	seats := room.Seats()
	for _, id := range seats {
		if id == 0 {
			return nil, consts.ErrorsGamePlayersInvalid
		}
	}
	states := make(map[int64]chan int, game.Seats)
	for _, id := range seats {
		states[id] = make(chan int, 1)
	}
	return &Hokm{
		Room:   room,
		Match:  game.NewMatch(room.Rules, room.TargetScore),
		Seats:  seats,
		States: states,
	}, nil
}

func (h *Hokm) Player(seat int) *Player {
	if seat < 0 || seat >= game.Seats {
		return nil
	}
	return getPlayer(h.Seats[seat])
}

func (h *Hokm) SeatOf(playerId int64) int {
	for seat, id := range h.Seats {
		if id == playerId {
			return seat
		}
	}
	return -1
}

// Online reports whether the seat has a connected player reading its channel.
func (h *Hokm) Online(seat int) bool {
	player := h.Player(seat)
	return player != nil && player.Online()
}

func (h *Hokm) Closed() bool {
	return h == nil || h.closed
}

// Send hands state to the player on seat. The caller holds the room lock.
func (h *Hokm) Send(seat int, state int) {
	if h.Closed() {
		return
	}
	select {
	case h.States[h.Seats[seat]] <- state:
	default:
		log.Infof("room %d seat %d state channel is full, dropped %d\n", h.Room.ID, seat, state)
	}
}

func (h *Hokm) delete() {
	if h != nil && !h.closed {
		h.closed = true
		for _, state := range h.States {
			close(state)
		}
	}
}
