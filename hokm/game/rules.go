package game

import (
	"fmt"
	"strings"
)

const (
	Seats       = 4
	HandSize    = 13
	FirstDeal   = 5
	SecondDeal  = HandSize - FirstDeal
	TricksToWin = HandSize/2 + 1

	DefaultTargetScore = 7
)

type DealMode int

const (
	// DealAllUpfront deals all 13 cards before trump is declared.
	DealAllUpfront DealMode = iota
	// DealFiveFirst deals 5 cards, keeps the rest in stock and deals it once trump is named.
	DealFiveFirst
)

type HakimMode int

const (
	// HakimFixed keeps the current hakim seat (seat 0 for a fresh game).
	HakimFixed HakimMode = iota
	// HakimByFirstAce deals single cards until someone receives an ace.
	HakimByFirstAce
)

type Rules struct {
	Deal      DealMode
	Hakim     HakimMode
	Direction Direction
	// Seed for the shuffles, 0 uses the process source.
	Seed int64
}

func DefaultRules() Rules {
	return Rules{
		Deal:      DealAllUpfront,
		Hakim:     HakimFixed,
		Direction: Clockwise,
	}
}

func (r Rules) validate() error {
	if r.Deal != DealAllUpfront && r.Deal != DealFiveFirst {
		return fmt.Errorf("invalid deal mode %d", r.Deal)
	}
	if r.Hakim != HakimFixed && r.Hakim != HakimByFirstAce {
		return fmt.Errorf("invalid hakim mode %d", r.Hakim)
	}
	if r.Direction != Clockwise && r.Direction != CounterClockwise {
		return fmt.Errorf("invalid direction %d", r.Direction)
	}
	return nil
}

var dealModes = map[string]DealMode{
	"all":  DealAllUpfront,
	"five": DealFiveFirst,
}

var hakimModes = map[string]HakimMode{
	"fixed":     HakimFixed,
	"first-ace": HakimByFirstAce,
}

var directions = map[string]Direction{
	"clockwise":         Clockwise,
	"counter-clockwise": CounterClockwise,
}

func ParseDealMode(name string) (DealMode, error) {
	if mode, ok := dealModes[strings.ToLower(name)]; ok {
		return mode, nil
	}
	return 0, fmt.Errorf("invalid deal mode '%s'", name)
}

func ParseHakimMode(name string) (HakimMode, error) {
	if mode, ok := hakimModes[strings.ToLower(name)]; ok {
		return mode, nil
	}
	return 0, fmt.Errorf("invalid hakim mode '%s'", name)
}

func ParseDirection(name string) (Direction, error) {
	if direction, ok := directions[strings.ToLower(name)]; ok {
		return direction, nil
	}
	return 0, fmt.Errorf("invalid direction '%s'", name)
}
