package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/hokm/consts"
	"github.com/ratel-online/hokm/database"
	"github.com/ratel-online/hokm/render"
	"github.com/ratel-online/hokm/state/game"
)

type waiting struct{}

func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StateGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		isOwner := room.Creator == player.ID
		database.LeaveRoom(room.ID, player.ID)
		database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Players()))
		if isOwner {
			if newOwner := database.GetPlayer(room.Creator); newOwner != nil && newOwner.ID != player.ID {
				database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
			}
		}
	}
	return consts.StateHome
}

func waitingForStart(player *database.Player, room *database.Room) (bool, error) {
	_ = player.WriteString(render.RoomInfo(room, render.RoomNames(room), player.ID))
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(time.Second)
		if err != nil && err != consts.ErrorsTimeout {
			return false, err
		}
		if room.State == consts.RoomStateRunning {
			return true, nil
		}
		lower := strings.ToLower(signal)
		switch {
		case lower == "":
		case isLs(lower):
			_ = player.WriteString(render.RoomInfo(room, render.RoomNames(room), player.ID))
		case (lower == "start" || lower == "s") && room.Creator == player.ID:
			err = startGame(room)
			if err != nil {
				_ = player.WriteError(err)
				continue
			}
			return true, nil
		case strings.HasPrefix(lower, "set ") && room.Creator == player.ID:
			tags := strings.Fields(signal)
			if len(tags) != 3 {
				_ = player.WriteError(consts.ErrorsRoomPropsInvalid)
				continue
			}
			if err := database.SetRoomProps(room, strings.ToLower(tags[1]), tags[2]); err != nil {
				_ = player.WriteError(err)
				continue
			}
			database.Broadcast(room.ID, fmt.Sprintf("%s set %s to %s\n", player.Name, tags[1], tags[2]))
		default:
			if err := database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal)); err != nil {
				_ = player.WriteError(err)
			}
		}
	}
}

func startGame(room *database.Room) error {
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return nil
	}
	table, err := game.InitHokmGame(room)
	if err != nil {
		return err
	}
	room.Game = table
	room.State = consts.RoomStateRunning
	game.Advance(table)
	return nil
}
