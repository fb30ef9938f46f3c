package game

import (
	"github.com/ratel-online/hokm/hokm/card"
)

type MatchPhase int

const (
	MatchNotStarted MatchPhase = iota
	MatchRoundInProgress
	MatchRoundFinished
	MatchFinished
)

var matchPhaseNames = map[MatchPhase]string{
	MatchNotStarted:      "NotStarted",
	MatchRoundInProgress: "RoundInProgress",
	MatchRoundFinished:   "RoundFinished",
	MatchFinished:        "MatchFinished",
}

func (p MatchPhase) String() string {
	return matchPhaseNames[p]
}

// Match plays rounds on one Game until a team reaches the target score.
// If the hakim's team loses a round the hakim passes to the next seat.
type Match struct {
	game        *Game
	phase       MatchPhase
	targetScore int
	round       int
	winner      Team
}

func NewMatch(rules Rules, targetScore int) *Match {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}
	return &Match{
		game:        New(rules),
		phase:       MatchNotStarted,
		targetScore: targetScore,
	}
}

func (m *Match) Game() *Game {
	return m.game
}

func (m *Match) Phase() MatchPhase {
	return m.phase
}

func (m *Match) Round() int {
	return m.round
}

func (m *Match) TargetScore() int {
	return m.targetScore
}

func (m *Match) Winner() (Team, bool) {
	return m.winner, m.phase == MatchFinished
}

func (m *Match) Start() error {
	if m.phase != MatchNotStarted {
		return ErrInvalidPhase
	}
	if err := m.game.StartGame(); err != nil {
		return err
	}
	m.round = 1
	m.phase = MatchRoundInProgress
	return nil
}

func (m *Match) DeclareTrump(seat int, suit card.Suit) error {
	if err := m.checkInProgress(); err != nil {
		return err
	}
	return m.game.DeclareTrumpAs(seat, suit)
}

func (m *Match) PlayCard(seat int, c card.Card) error {
	if err := m.checkInProgress(); err != nil {
		return err
	}
	if err := m.game.PlayCard(seat, c); err != nil {
		return err
	}
	if m.game.Phase() == PhaseFinished {
		m.finishRound()
	}
	return nil
}

// NextRound rotates the hakim and deals the next round.
func (m *Match) NextRound() error {
	switch m.phase {
	case MatchFinished:
		return ErrMatchFinished
	case MatchRoundFinished:
	default:
		return ErrInvalidPhase
	}
	hakim := m.game.Hakim()
	if winner, _ := m.game.RoundWinner(); winner != TeamOf(hakim) {
		hakim = m.game.NextSeat(hakim)
	}
	if err := m.game.Reset(); err != nil {
		return err
	}
	if err := m.game.SetHakim(hakim); err != nil {
		return err
	}
	if err := m.game.StartGame(); err != nil {
		return err
	}
	m.round++
	m.phase = MatchRoundInProgress
	return nil
}

func (m *Match) finishRound() {
	scores := m.game.Scores()
	for _, team := range []Team{TeamA, TeamB} {
		if scores[team] >= m.targetScore {
			m.winner = team
			m.phase = MatchFinished
			return
		}
	}
	m.phase = MatchRoundFinished
}

func (m *Match) checkInProgress() error {
	switch m.phase {
	case MatchRoundInProgress:
		return nil
	case MatchFinished:
		return ErrMatchFinished
	default:
		return ErrInvalidPhase
	}
}
