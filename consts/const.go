package consts

import (
	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MaxPlayers = 4

	RoomStateWaiting = 1
	RoomStateRunning = 2

	GameTypeHokm = 1
)

// Room properties, changed by the owner with "set <prop> <value>".
const (
	RoomPropsPassword = "pwd"
	RoomPropsChat     = "ct"
	RoomPropsTarget   = "ts"
	RoomPropsDeal     = "dm"
	RoomPropsHakim    = "hm"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsChatUnopened           = NewErr(1, false, "Chat disabled. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is full. ")
	ErrorsRoomPassword           = NewErr(1, false, "Sorry! Password incorrect! ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")
	ErrorsGamePlayersInvalid     = NewErr(1, false, "Hokm needs exactly 4 players. ")
	ErrorsRoomPropsInvalid       = NewErr(1, false, "Room props invalid. ")

	GameTypes = map[int]string{
		GameTypeHokm: "Hokm",
	}
	RoomStates = map[int]string{
		RoomStateWaiting: "Waiting",
		RoomStateRunning: "Running",
	}
)
