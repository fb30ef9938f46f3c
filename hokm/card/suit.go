package card

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists the suits in deck generation order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

type suitStruct struct {
	name          string
	letter        string
	symbol        string
	colorFunction func(string, ...interface{}) string
}

var suits = map[Suit]suitStruct{
	Hearts: {
		name:          "Hearts",
		letter:        "H",
		symbol:        "♥",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Diamonds: {
		name:          "Diamonds",
		letter:        "D",
		symbol:        "♦",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
	Clubs: {
		name:          "Clubs",
		letter:        "C",
		symbol:        "♣",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Spades: {
		name:          "Spades",
		letter:        "S",
		symbol:        "♠",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
}

func (s Suit) Valid() bool {
	_, ok := suits[s]
	return ok
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suits[s].name
}

func (s Suit) Letter() string {
	return suits[s].letter
}

func (s Suit) Symbol() string {
	return suits[s].symbol
}

func (s Suit) Paint(text string) string {
	if !s.Valid() {
		return text
	}
	return suits[s].colorFunction("%s", text)
}

func (s Suit) Paintf(format string, args ...interface{}) string {
	if !s.Valid() {
		return fmt.Sprintf(format, args...)
	}
	return suits[s].colorFunction(format, args...)
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid suit %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	suit, err := SuitByName(string(text))
	if err != nil {
		return err
	}
	*s = suit
	return nil
}

// SuitByName accepts the full name, the letter or the symbol, case-insensitively.
func SuitByName(name string) (Suit, error) {
	name = strings.TrimSpace(name)
	for _, suit := range Suits {
		info := suits[suit]
		if strings.EqualFold(name, info.name) || strings.EqualFold(name, info.letter) || name == info.symbol {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("invalid suit '%s'", name)
}
