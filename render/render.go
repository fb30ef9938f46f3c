package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/ratel-online/hokm/consts"
	"github.com/ratel-online/hokm/database"
	"github.com/ratel-online/hokm/hokm/game"
)

var (
	highlight = color.New(color.FgHiWhite, color.Bold).SprintfFunc()
	notice    = color.New(color.FgHiMagenta).SprintfFunc()
)

func Welcome(player *database.Player) error {
	return player.WriteString(fmt.Sprintf("Hi %s, Welcome to %s online! \n", player.Name, highlight("Hokm")))
}

func HomeOptions(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString("1.Join\n")
	buf.WriteString("2.New\n")
	return player.WriteString(buf.String())
}

func RoomList(rooms []*database.Room) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s%-10s\n", "ID", "Type", "Players", "State"))
	for _, room := range rooms {
		pwdFlag := ""
		if room.Password != "" {
			pwdFlag = "*"
		}
		buf.WriteString(fmt.Sprintf("%-10d%-10s%-10d%-10s\n", room.ID, pwdFlag+consts.GameTypes[room.Type], room.Players(), consts.RoomStates[room.State]))
	}
	return buf.String()
}

// RoomInfo lists the seats of a waiting room and its settings. The password is
// shown to the owner only.
func RoomInfo(room *database.Room, names [game.Seats]string, viewer int64) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d\n", room.ID))
	buf.WriteString(fmt.Sprintf("%-6s%-20s%-10s%-10s\n", "Seat", "Name", "Team", "Title"))
	seats := room.Seats()
	for seat, id := range seats {
		name, title := "-", ""
		if id != 0 {
			name, title = names[seat], "player"
			if id == room.Creator {
				title = "owner"
			}
		}
		buf.WriteString(fmt.Sprintf("%-6d%-20s%-10s%-10s\n", seat, name, game.TeamOf(seat), title))
	}
	buf.WriteString("\nSettings:\n")
	buf.WriteString(fmt.Sprintf("%-5s%-12v%-5s%-5v\n", "ts:", room.TargetScore, "ct:", sprintPropsState(room.EnableChat)))
	buf.WriteString(fmt.Sprintf("%-5s%-12v%-5s%-5v\n", "dm:", dealModeName(room.Rules.Deal), "hm:", hakimModeName(room.Rules.Hakim)))
	pwd := room.Password
	if pwd != "" {
		if room.Creator != viewer {
			pwd = "********"
		}
	} else {
		pwd = "off"
	}
	buf.WriteString(fmt.Sprintf("%-5s%-20v\n", "pwd:", pwd))
	return buf.String()
}

// RoomNames resolves the names of the players seated in room.
func RoomNames(room *database.Room) [game.Seats]string {
	return names(room.Seats())
}

func Error(player *database.Player, err error) error {
	return player.WriteError(err)
}

func names(seats [game.Seats]int64) [game.Seats]string {
	result := [game.Seats]string{}
	for seat, id := range seats {
		if player := database.GetPlayer(id); player != nil {
			result[seat] = player.Name
		} else {
			result[seat] = fmt.Sprintf("seat %d", seat)
		}
	}
	return result
}

func sprintPropsState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func dealModeName(mode game.DealMode) string {
	if mode == game.DealFiveFirst {
		return "five"
	}
	return "all"
}

func hakimModeName(mode game.HakimMode) string {
	if mode == game.HakimByFirstAce {
		return "first-ace"
	}
	return "fixed"
}
