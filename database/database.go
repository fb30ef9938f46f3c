package database

import (
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	stringx "github.com/ratel-online/core/util/strings"
	"github.com/ratel-online/hokm/config"
	"github.com/ratel-online/hokm/consts"
	"github.com/ratel-online/hokm/hokm/game"
)

var roomIds int64 = 0
var players = hashmap.New()
var connPlayers = hashmap.New()
var rooms = hashmap.New()
var settings atomic.Value

func init() {
	settings.Store(config.Default())
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			rooms.Foreach(func(e *hashmap.Entry) {
				room := e.Value().(*Room)
				room.Lock()
				room.cancel()
				room.Unlock()
			})
		}
	})
}

// Init replaces the settings new rooms and timeouts are taken from.
func Init(cfg *config.Config) {
	settings.Store(cfg)
}

func Settings() *config.Config {
	return settings.Load().(*config.Config)
}

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	player := newPlayer(info.ID, stringx.Desensitize(info.Name), conn)
	players.Set(info.ID, player)
	connPlayers.Set(conn.ID(), player)
	return player
}

func CreateRoom(creator int64) *Room {
	cfg := Settings()
	rules, err := cfg.Rules()
	if err != nil {
		log.Error(err)
		rules = game.DefaultRules()
	}
	room := &Room{
		ID:          atomic.AddInt64(&roomIds, 1),
		Type:        consts.GameTypeHokm,
		State:       consts.RoomStateWaiting,
		Creator:     creator,
		ActiveTime:  time.Now(),
		EnableChat:  true,
		TargetScore: cfg.Game.TargetScore,
		Rules:       rules,
	}
	rooms.Set(room.ID, room)
	return room
}

func deleteRoom(room *Room) {
	if room != nil {
		rooms.Del(room.ID)
		room.Game.delete()
	}
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	return getRoom(roomId)
}

func getRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

// JoinRoom seats the player on the first free seat.
func JoinRoom(roomId, playerId int64) error {
	player := getPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := getRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.SeatOf(playerId) >= 0 {
		return nil
	}
	if !room.takeSeat(playerId) {
		return consts.ErrorsRoomPlayersIsFull
	}
	room.ActiveTime = time.Now()
	player.RoomID = roomId
	return nil
}

func LeaveRoom(roomId, playerId int64) bool {
	room := getRoom(roomId)
	if room != nil {
		room.Lock()
		defer room.Unlock()
		return room.removePlayer(getPlayer(playerId))
	}
	return false
}

func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := getRoom(roomId)
	if room == nil {
		return
	}
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, playerId := range room.PlayerIds() {
		if player := getPlayer(playerId); player != nil && player.Online() && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func BroadcastChat(player *Player, msg string, exclude ...int64) error {
	room := getRoom(player.RoomID)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	if !room.EnableChat {
		return consts.ErrorsChatUnopened
	}
	log.Infof("chat msg, player %s say: %s\n", player, strings.TrimSpace(msg))
	Broadcast(player.RoomID, stringx.Desensitize(msg), exclude...)
	return nil
}

// SetRoomProps changes one room setting while the room is waiting.
func SetRoomProps(room *Room, key, value string) error {
	room.Lock()
	defer room.Unlock()
	if room.State != consts.RoomStateWaiting {
		return consts.ErrorsJoinFailForRoomRunning
	}
	switch key {
	case consts.RoomPropsPassword:
		if value == "off" {
			value = ""
		}
		room.Password = value
	case consts.RoomPropsChat:
		switch value {
		case "on":
			room.EnableChat = true
		case "off":
			room.EnableChat = false
		default:
			return consts.ErrorsRoomPropsInvalid
		}
	case consts.RoomPropsTarget:
		target, err := strconv.Atoi(value)
		if err != nil || target <= 0 {
			return consts.ErrorsRoomPropsInvalid
		}
		room.TargetScore = target
	case consts.RoomPropsDeal:
		mode, err := game.ParseDealMode(value)
		if err != nil {
			return consts.ErrorsRoomPropsInvalid
		}
		room.Rules.Deal = mode
	case consts.RoomPropsHakim:
		mode, err := game.ParseHakimMode(value)
		if err != nil {
			return consts.ErrorsRoomPropsInvalid
		}
		room.Rules.Hakim = mode
	default:
		return consts.ErrorsRoomPropsInvalid
	}
	room.ActiveTime = time.Now()
	return nil
}
