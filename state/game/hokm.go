package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/hokm/consts"
	"github.com/ratel-online/hokm/database"
	"github.com/ratel-online/hokm/hokm/card"
	hokmgame "github.com/ratel-online/hokm/hokm/game"
	"github.com/ratel-online/hokm/render"
)

const (
	stateTrump = iota + 1
	statePlay
	stateWaiting
)

type Hokm struct{}

func (g *Hokm) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	room.Lock()
	table := room.Game
	room.Unlock()
	if table == nil {
		return consts.StateWaiting, nil
	}
	seat := table.SeatOf(player.ID)
	_ = player.WriteString(fmt.Sprintf("Game starting! You sit on seat %d, %s.\n%s\n", seat, hokmgame.TeamOf(seat), render.Teams(render.Names(table))))
	for {
		state, ok := <-table.States[player.ID]
		if !ok {
			return 0, consts.ErrorsChanClosed
		}
		switch state {
		case stateTrump:
			if err := handleTrump(room, table, player, seat); err != nil {
				log.Error(err)
				return 0, err
			}
		case statePlay:
			if err := handlePlay(room, table, player, seat); err != nil {
				log.Error(err)
				return 0, err
			}
		case stateWaiting:
			return consts.StateWaiting, nil
		default:
			return 0, consts.ErrorsChanClosed
		}
	}
}

func (*Hokm) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}

func InitHokmGame(room *database.Room) (*database.Hokm, error) {
	table, err := database.NewHokm(room)
	if err != nil {
		return nil, err
	}
	table.Match.Game().AddListener(&listener{table: table})
	if err := table.Match.Start(); err != nil {
		return nil, err
	}
	database.Broadcast(room.ID, render.RoundStarted(table.Match.Round(), render.Names(table), table.Match.Game().Hakim()))
	return table, nil
}

// Advance hands the turn to whoever the match waits for. Seats without an
// online player are played automatically. The caller holds the room lock.
func Advance(table *database.Hokm) {
	match := table.Match
	for !table.Closed() {
		switch match.Phase() {
		case hokmgame.MatchRoundFinished:
			if err := match.NextRound(); err != nil {
				log.Error(err)
				return
			}
			database.Broadcast(table.Room.ID, render.RoundStarted(match.Round(), render.Names(table), match.Game().Hakim()))
			continue
		case hokmgame.MatchFinished:
			finish(table)
			return
		}
		g := match.Game()
		switch g.Phase() {
		case hokmgame.PhaseDeclareTrump:
			seat := g.Hakim()
			if table.Online(seat) {
				table.Send(seat, stateTrump)
				return
			}
			if err := autoTrump(table, seat); err != nil {
				log.Error(err)
				return
			}
		case hokmgame.PhasePlaying:
			seat := g.CurrentPlayer()
			if table.Online(seat) {
				table.Send(seat, statePlay)
				return
			}
			if err := autoPlay(table, seat); err != nil {
				log.Error(err)
				return
			}
		default:
			return
		}
	}
}

func finish(table *database.Hokm) {
	room := table.Room
	if winner, ok := table.Match.Winner(); ok {
		database.Broadcast(room.ID, render.MatchWinner(render.Names(table), winner, table.Match.Game().Scores()))
	}
	room.Game = nil
	room.State = consts.RoomStateWaiting
	for seat := 0; seat < hokmgame.Seats; seat++ {
		table.Send(seat, stateWaiting)
	}
}

func autoTrump(table *database.Hokm, seat int) error {
	suit := preferredSuit(table.Match.Game().Hand(seat))
	database.Broadcast(table.Room.ID, fmt.Sprintf("%s is away, trump chosen automatically\n", render.Seat(render.Names(table), seat)))
	return table.Match.DeclareTrump(seat, suit)
}

func autoPlay(table *database.Hokm, seat int) error {
	moves := table.Match.Game().LegalMoves(seat)
	if len(moves) == 0 {
		return hokmgame.ErrNotYourTurn
	}
	return table.Match.PlayCard(seat, moves[0])
}

// preferredSuit is the suit the hand holds most of, earlier suits first on ties.
func preferredSuit(hand []card.Card) card.Suit {
	counts := map[card.Suit]int{}
	for _, c := range hand {
		counts[c.Suit]++
	}
	best := card.Suits[0]
	for _, suit := range card.Suits {
		if counts[suit] > counts[best] {
			best = suit
		}
	}
	return best
}

func handleTrump(room *database.Room, table *database.Hokm, player *database.Player, seat int) error {
	room.Lock()
	hand := table.Match.Game().Hand(seat)
	room.Unlock()
	database.Broadcast(room.ID, fmt.Sprintf("Waiting for %s to declare trump\n", player.Name), player.ID)
	_ = player.WriteString(render.TrumpPrompt(hand))
	timeout := database.Settings().Timeouts.Trump
	for {
		signal, err := player.AskForString(timeout)
		var suit card.Suit
		if err != nil {
			if err != consts.ErrorsTimeout {
				room.Lock()
				if autoErr := autoTrump(table, seat); autoErr == nil {
					Advance(table)
				}
				room.Unlock()
				return err
			}
			suit = preferredSuit(hand)
		} else {
			var ok bool
			suit, ok = parseTrump(signal)
			if !ok {
				if handleCommand(room, table, player, seat, signal) {
					continue
				}
				_ = player.WriteString("Declare trump with t <suit>, for example: t s\n")
				continue
			}
		}
		retry, err := declareTrump(room, table, seat, suit)
		if err == consts.ErrorsChanClosed {
			return err
		}
		if err != nil {
			_ = player.WriteError(err)
			if retry {
				_ = player.WriteString(render.TrumpPrompt(hand))
				continue
			}
		}
		return nil
	}
}

// declareTrump names trump for seat and moves the table on. On error, retry
// reports whether the table still waits for seat to declare.
func declareTrump(room *database.Room, table *database.Hokm, seat int, suit card.Suit) (retry bool, err error) {
	room.Lock()
	defer room.Unlock()
	if table.Closed() {
		return false, consts.ErrorsChanClosed
	}
	if err := table.Match.DeclareTrump(seat, suit); err != nil {
		g := table.Match.Game()
		waiting := table.Match.Phase() == hokmgame.MatchRoundInProgress &&
			g.Phase() == hokmgame.PhaseDeclareTrump && g.Hakim() == seat
		return waiting, err
	}
	Advance(table)
	return false, nil
}

func handlePlay(room *database.Room, table *database.Hokm, player *database.Player, seat int) error {
	room.Lock()
	g := table.Match.Game()
	state := g.ExtractStateFor(seat)
	moves := g.LegalMoves(seat)
	room.Unlock()
	if len(moves) == 0 {
		return nil
	}
	names := render.Names(table)
	database.Broadcast(room.ID, fmt.Sprintf("It's %s turn! \n", render.Seat(names, seat)), player.ID)
	options, cards := render.CardOptions(moves)
	_ = player.WriteString(fmt.Sprintf("It's your turn, %s! \n%s%s", player.Name, render.TableState(state, names), options))
	timeout := database.Settings().Timeouts.Play
	for {
		signal, err := player.AskForString(timeout)
		var selected card.Card
		if err != nil {
			if err != consts.ErrorsTimeout {
				room.Lock()
				if autoErr := autoPlay(table, seat); autoErr == nil {
					Advance(table)
				}
				room.Unlock()
				return err
			}
			selected = moves[0]
			_ = player.WriteString(fmt.Sprintf("Timeout, auto played %s\n", selected))
		} else if c, ok := cards[strings.ToUpper(signal)]; ok {
			selected = c
		} else if c, err := card.Parse(signal); err == nil && len(signal) > 1 {
			selected = c
		} else {
			if !handleCommand(room, table, player, seat, signal) {
				chat(player, signal)
			}
			continue
		}
		room.Lock()
		if table.Closed() {
			room.Unlock()
			return consts.ErrorsChanClosed
		}
		err = table.Match.PlayCard(seat, selected)
		if err == nil {
			Advance(table)
		}
		room.Unlock()
		if err != nil {
			_ = player.WriteError(err)
			_ = player.WriteString(options)
			continue
		}
		return nil
	}
}

// handleCommand serves the view commands available during a game.
func handleCommand(room *database.Room, table *database.Hokm, player *database.Player, seat int, signal string) bool {
	switch strings.ToLower(signal) {
	case "v", "ls":
		room.Lock()
		state := table.Match.Game().ExtractStateFor(seat)
		room.Unlock()
		_ = player.WriteString(render.TableState(state, render.Names(table)))
		return true
	case "json":
		room.Lock()
		state := table.Match.Game().ExtractStateFor(seat)
		room.Unlock()
		_ = player.WriteObject(state)
		return true
	}
	return false
}

func chat(player *database.Player, signal string) {
	if err := database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal)); err != nil {
		_ = player.WriteError(err)
	}
}

// parseTrump accepts "t <suit>", "trump <suit>" or a bare suit.
func parseTrump(signal string) (card.Suit, bool) {
	fields := strings.Fields(signal)
	switch {
	case len(fields) == 2 && (strings.EqualFold(fields[0], "t") || strings.EqualFold(fields[0], "trump")):
		signal = fields[1]
	case len(fields) != 1:
		return 0, false
	}
	suit, err := card.SuitByName(signal)
	if err != nil {
		return 0, false
	}
	return suit, true
}
