package database

import (
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/hokm/consts"
	"github.com/ratel-online/hokm/hokm/game"
)

// Room is one Hokm table. The embedded mutex guards the room and its running
// game; seats have their own lock so broadcasts never need the room lock.
type Room struct {
	sync.Mutex

	ID          int64      `json:"id"`
	Type        int        `json:"type"`
	Game        *Hokm      `json:"-"`
	State       int        `json:"state"`
	Creator     int64      `json:"creator"`
	ActiveTime  time.Time  `json:"activeTime"`
	Password    string     `json:"password"`
	EnableChat  bool       `json:"enableChat"`
	TargetScore int        `json:"targetScore"`
	Rules       game.Rules `json:"-"`

	seatsLock sync.RWMutex
	seats     [consts.MaxPlayers]int64
}

func (r *Room) Model() model.Room {
	return model.Room{
		ID:        r.ID,
		Type:      r.Type,
		TypeDesc:  consts.GameTypes[r.Type],
		Players:   r.Players(),
		State:     r.State,
		StateDesc: consts.RoomStates[r.State],
		Creator:   r.Creator,
	}
}

// Seats returns the player id on every seat, 0 for an empty one.
func (r *Room) Seats() [consts.MaxPlayers]int64 {
	r.seatsLock.RLock()
	defer r.seatsLock.RUnlock()
	return r.seats
}

func (r *Room) Players() int {
	count := 0
	for _, id := range r.Seats() {
		if id != 0 {
			count++
		}
	}
	return count
}

// PlayerIds lists the seated players in seat order.
func (r *Room) PlayerIds() []int64 {
	ids := make([]int64, 0, consts.MaxPlayers)
	for _, id := range r.Seats() {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func (r *Room) SeatOf(playerId int64) int {
	for seat, id := range r.Seats() {
		if id == playerId {
			return seat
		}
	}
	return -1
}

func (r *Room) takeSeat(playerId int64) bool {
	r.seatsLock.Lock()
	defer r.seatsLock.Unlock()
	for seat, id := range r.seats {
		if id == 0 {
			r.seats[seat] = playerId
			return true
		}
	}
	return false
}

func (r *Room) freeSeat(playerId int64) bool {
	r.seatsLock.Lock()
	defer r.seatsLock.Unlock()
	for seat, id := range r.seats {
		if id == playerId {
			r.seats[seat] = 0
			return true
		}
	}
	return false
}

func (r *Room) removePlayer(player *Player) bool {
	if player == nil {
		return false
	}
	r.ActiveTime = time.Now()
	ok := r.freeSeat(player.ID)
	if ok {
		player.RoomID = 0
		ids := r.PlayerIds()
		if len(ids) > 0 && r.Creator == player.ID {
			r.Creator = ids[0]
		}
	}
	if r.Players() == 0 {
		deleteRoom(r)
	}
	return ok
}

// cancel drops rooms idle for a day or left without an online player.
func (r *Room) cancel() {
	if r.ActiveTime.Add(24 * time.Hour).Before(time.Now()) {
		log.Infof("room %d is timeout 24 hours, removed.\n", r.ID)
		deleteRoom(r)
		return
	}
	for _, id := range r.PlayerIds() {
		if player := getPlayer(id); player != nil && player.Online() {
			return
		}
	}
	log.Infof("room %d is not living, removed.\n", r.ID)
	deleteRoom(r)
}
