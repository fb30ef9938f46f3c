package card

import (
	"fmt"
	"strings"
)

// Rank values are only used for comparison, Two lowest and Ace highest.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

var rankCodes = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

func (r Rank) Code() string {
	return rankCodes[r]
}

func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	rank, err := RankByName(string(text))
	if err != nil {
		return err
	}
	*r = rank
	return nil
}

// RankByName accepts the full name or the short code ("A", "10", "T"), case-insensitively.
func RankByName(name string) (Rank, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "T") {
		return Ten, nil
	}
	for _, rank := range Ranks {
		if strings.EqualFold(name, rankNames[rank]) || strings.EqualFold(name, rankCodes[rank]) {
			return rank, nil
		}
	}
	return 0, fmt.Errorf("invalid rank '%s'", name)
}
