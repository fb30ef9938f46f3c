package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/hokm/consts"
	"github.com/ratel-online/hokm/database"
	"github.com/ratel-online/hokm/state/game"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateGame, &game.Hokm{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

// Run drives one session through the states until the connection is gone.
func Run(player *database.Player) {
	player.SetState(consts.StateWelcome)
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s state machine break up.\n", player)
	}()
	for {
		state := states[player.CurrentState()]
		stateId, err := state.Next(player)
		if err != nil {
			if err == consts.ErrorsChanClosed || !player.Online() {
				state.Exit(player)
				break
			}
			if err1, ok := err.(consts.Error); ok {
				if err1.Exit {
					stateId = state.Exit(player)
				}
			} else {
				log.Error(err)
				state.Exit(player)
				break
			}
		}
		if stateId > 0 {
			player.SetState(stateId)
		}
	}
}

func isExit(signal string) bool {
	return signal == "exit" || signal == "e"
}

func isLs(signal string) bool {
	return signal == "ls" || signal == "v"
}
