package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/core/model"
	"github.com/ratel-online/hokm/consts"
	"github.com/ratel-online/hokm/database"
	"github.com/ratel-online/hokm/render"
)

type join struct{}

func (s *join) Next(player *database.Player) (consts.StateID, error) {
	rooms := database.GetRooms()
	err := player.WriteString(render.RoomList(rooms))
	if err != nil {
		return 0, player.WriteError(err)
	}
	signal, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	signal = strings.ToLower(signal)
	if isExit(signal) {
		return s.Exit(player), nil
	}
	if isLs(signal) {
		return consts.StateJoin, nil
	}
	if signal == "json" {
		list := make([]model.Room, 0, len(rooms))
		for _, room := range rooms {
			list = append(list, room.Model())
		}
		return consts.StateJoin, player.WriteObject(list)
	}
	roomId, err := strconv.ParseInt(signal, 10, 64)
	if err != nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	room := database.GetRoom(roomId)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	if room.Password != "" {
		err = verifyPassword(player, room.Password)
		if err != nil {
			return 0, player.WriteError(err)
		}
	}
	err = database.JoinRoom(roomId, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	database.Broadcast(roomId, fmt.Sprintf("%s joined room! room current has %d players\n", player.Name, room.Players()))
	return consts.StateWaiting, nil
}

func (*join) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}

func verifyPassword(player *database.Player, pwd string) error {
	err := player.WriteString("Please input room password: \n")
	if err != nil {
		return err
	}
	password, err := player.AskForString()
	if err != nil {
		return err
	}
	if password != pwd {
		return consts.ErrorsRoomPassword
	}
	return nil
}
