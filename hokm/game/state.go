package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/hokm/hokm/card"
)

type PlayerState struct {
	Seat      int         `json:"seat"`
	Team      Team        `json:"team"`
	Hand      []card.Card `json:"hand,omitempty"`
	HandSize  int         `json:"handSize"`
	WonTricks int         `json:"wonTricks"`
}

// State is a read-only copy of everything a table observer may see.
type State struct {
	Phase         Phase         `json:"phase"`
	Hakim         int           `json:"hakim"`
	Trump         *card.Suit    `json:"trump"`
	CurrentPlayer int           `json:"currentPlayer"`
	Players       []PlayerState `json:"players"`
	CurrentTrick  []Play        `json:"currentTrick"`
	LastTrick     *Trick        `json:"lastTrick,omitempty"`
	TricksPlayed  int           `json:"tricksPlayed"`
	Stock         int           `json:"stock"`
	Scores        [2]int        `json:"scores"`
	// Viewer is the seat whose hand is shown, -1 when none or all are.
	Viewer int `json:"viewer"`
}

// ExtractState returns the full state, every hand included.
func (g *Game) ExtractState() State {
	return g.extractState(-1, true)
}

// ExtractStateFor hides every hand but the viewer's. A viewer that is not a
// seat sees no hand at all.
func (g *Game) ExtractStateFor(viewer int) State {
	if !validSeat(viewer) {
		viewer = -1
	}
	return g.extractState(viewer, false)
}

func (g *Game) extractState(viewer int, full bool) State {
	state := State{
		Phase:         g.phase,
		Hakim:         g.hakim,
		CurrentPlayer: g.turn.Current(),
		Players:       make([]PlayerState, 0, Seats),
		CurrentTrick:  g.CurrentTrick(),
		TricksPlayed:  len(g.tricks),
		Stock:         g.stock.Size(),
		Scores:        g.scores,
		Viewer:        viewer,
	}
	if g.hasTrump {
		trump := g.trump
		state.Trump = &trump
	}
	if len(g.tricks) > 0 {
		last := g.tricks[len(g.tricks)-1]
		state.LastTrick = &last
	}
	for _, player := range g.players {
		playerState := PlayerState{
			Seat:      player.seat,
			Team:      player.Team(),
			HandSize:  player.hand.Size(),
			WonTricks: player.wonTricks,
		}
		if full || viewer == player.seat {
			playerState.Hand = player.Hand()
		}
		state.Players = append(state.Players, playerState)
	}
	return state
}

func (s State) String() string {
	var lines []string
	trump := "none"
	if s.Trump != nil {
		trump = s.Trump.Paint(s.Trump.String())
	}
	lines = append(lines, fmt.Sprintf("Phase: %s, hakim: seat %d, trump: %s", s.Phase, s.Hakim, trump))

	var plays []string
	for _, play := range s.CurrentTrick {
		plays = append(plays, fmt.Sprintf("seat %d %s", play.Seat, play.Card))
	}
	if len(plays) > 0 {
		lines = append(lines, fmt.Sprintf("Current trick: %s", strings.Join(plays, ", ")))
	}

	var statuses []string
	for _, player := range s.Players {
		statuses = append(statuses, fmt.Sprintf("seat %d (%d card(s), %d trick(s))", player.Seat, player.HandSize, player.WonTricks))
	}
	lines = append(lines, fmt.Sprintf("Players: %s", strings.Join(statuses, ", ")))
	lines = append(lines, fmt.Sprintf("Score: %s %d - %d %s", TeamA, s.Scores[TeamA], s.Scores[TeamB], TeamB))

	if s.Viewer >= 0 && s.Viewer < len(s.Players) {
		hand := s.Players[s.Viewer].Hand
		sorted := make([]card.Card, len(hand))
		copy(sorted, hand)
		card.Sort(sorted)
		lines = append(lines, fmt.Sprintf("Your hand: %s", card.Join(sorted)))
	}
	return strings.Join(lines, "\n")
}
