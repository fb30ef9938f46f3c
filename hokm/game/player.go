package game

import (
	"fmt"

	"github.com/ratel-online/hokm/hokm/card"
)

// Team A holds seats 0 and 2, team B seats 1 and 3.
type Team int

const (
	TeamA Team = iota
	TeamB
)

func TeamOf(seat int) Team {
	return Team(seat % 2)
}

func (t Team) Seats() [2]int {
	return [2]int{int(t), int(t) + 2}
}

func (t Team) String() string {
	if t == TeamA {
		return "Team A"
	}
	return "Team B"
}

func (t Team) MarshalText() ([]byte, error) {
	if t == TeamA {
		return []byte("A"), nil
	}
	return []byte("B"), nil
}

type Player struct {
	seat      int
	hand      *Hand
	wonTricks int
}

func newPlayer(seat int) *Player {
	return &Player{
		seat: seat,
		hand: NewHand(),
	}
}

func (p *Player) Seat() int {
	return p.seat
}

func (p *Player) Team() Team {
	return TeamOf(p.seat)
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) WonTricks() int {
	return p.wonTricks
}

func (p *Player) reset() {
	p.hand.Clear()
	p.wonTricks = 0
}

func (p Player) String() string {
	return fmt.Sprintf("seat %d", p.seat)
}
