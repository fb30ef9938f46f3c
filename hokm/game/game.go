package game

import (
	"math/rand"

	"github.com/ratel-online/hokm/hokm/card"
	"github.com/ratel-online/hokm/hokm/event"
)

type Phase int

const (
	PhaseDetermineHakim Phase = iota
	PhaseDeclareTrump
	PhasePlaying
	PhaseFinished
)

var phaseNames = map[Phase]string{
	PhaseDetermineHakim: "DetermineHakim",
	PhaseDeclareTrump:   "DeclareTrump",
	PhasePlaying:        "Playing",
	PhaseFinished:       "Finished",
}

func (p Phase) String() string {
	return phaseNames[p]
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Game holds one round of Hokm. It is not safe for concurrent use; callers
// serialize access, one lock per game.
type Game struct {
	rules   Rules
	rng     *rand.Rand
	events  *event.Bus
	players [Seats]*Player
	turn    *Cycler
	phase   Phase

	hakim      int
	hakimFixed bool
	trump      card.Suit
	hasTrump   bool

	stock  *Deck
	trick  []Play
	tricks []Trick

	scores      [2]int
	roundWinner Team
	roundOver   bool
}

func New(rules Rules) *Game {
	if err := rules.validate(); err != nil {
		rules = DefaultRules()
	}
	g := &Game{
		rules:  rules,
		events: event.NewBus(),
		turn:   NewCycler(Seats, rules.Direction),
		phase:  PhaseDetermineHakim,
		stock:  &Deck{},
		trick:  make([]Play, 0, Seats),
	}
	if rules.Seed != 0 {
		g.rng = rand.New(rand.NewSource(rules.Seed))
	}
	for seat := range g.players {
		g.players[seat] = newPlayer(seat)
	}
	return g
}

func (g *Game) AddListener(listener interface{}) {
	g.events.AddListener(listener)
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Hakim() int {
	return g.hakim
}

func (g *Game) Trump() (card.Suit, bool) {
	return g.trump, g.hasTrump
}

func (g *Game) CurrentPlayer() int {
	return g.turn.Current()
}

// NextSeat is the seat that plays after seat under the game's direction.
func (g *Game) NextSeat(seat int) int {
	return g.turn.After(seat)
}

func (g *Game) Player(seat int) *Player {
	if !validSeat(seat) {
		return nil
	}
	return g.players[seat]
}

func (g *Game) Hand(seat int) []card.Card {
	if !validSeat(seat) {
		return nil
	}
	return g.players[seat].Hand()
}

func (g *Game) WonTricks(seat int) int {
	if !validSeat(seat) {
		return 0
	}
	return g.players[seat].wonTricks
}

func (g *Game) TeamTricks(team Team) int {
	total := 0
	for _, seat := range team.Seats() {
		total += g.players[seat].wonTricks
	}
	return total
}

func (g *Game) CurrentTrick() []Play {
	plays := make([]Play, len(g.trick))
	copy(plays, g.trick)
	return plays
}

func (g *Game) Tricks() []Trick {
	tricks := make([]Trick, len(g.tricks))
	copy(tricks, g.tricks)
	return tricks
}

func (g *Game) Stock() []card.Card {
	return g.stock.Cards()
}

func (g *Game) Scores() [2]int {
	return g.scores
}

// RoundWinner reports the team that took the last finished round.
func (g *Game) RoundWinner() (Team, bool) {
	return g.roundWinner, g.roundOver
}

// SetHakim fixes the hakim for the coming deal.
func (g *Game) SetHakim(seat int) error {
	if g.phase != PhaseDetermineHakim {
		return ErrInvalidPhase
	}
	if !validSeat(seat) {
		return ErrInvalidSeat
	}
	g.hakim = seat
	g.hakimFixed = true
	g.turn.Set(seat)
	return nil
}

// DetermineHakim deals single cards from a fresh deck, starting at seat 0,
// until one seat receives an ace; that seat becomes hakim. The cards go back
// before the real deal.
func (g *Game) DetermineHakim() (int, error) {
	if g.phase != PhaseDetermineHakim {
		return 0, ErrInvalidPhase
	}
	seat := FirstAceSeat(newShuffledDeck(g.rng).Cards(), g.rules.Direction)
	g.hakim = seat
	g.hakimFixed = true
	g.turn.Set(seat)
	g.events.EmitHakimChosen(event.HakimChosenPayload{Seat: seat})
	return seat, nil
}

func FirstAceSeat(cards []card.Card, direction Direction) int {
	cycler := NewCycler(Seats, direction)
	for _, c := range cards {
		if c.Rank == card.Ace {
			return cycler.Current()
		}
		cycler.Next()
	}
	return 0
}

// StartGame shuffles a new deck and deals it.
func (g *Game) StartGame() error {
	if g.phase != PhaseDetermineHakim {
		return ErrInvalidPhase
	}
	return g.start(newShuffledDeck(g.rng))
}

// StartGameWith deals a stacked deck. The deck must be complete.
func (g *Game) StartGameWith(deck *Deck) error {
	if g.phase != PhaseDetermineHakim {
		return ErrInvalidPhase
	}
	if deck == nil || !isFullDeck(deck.cards) {
		return ErrInvalidDeck
	}
	return g.start(deck)
}

func (g *Game) start(deck *Deck) error {
	if g.rules.Hakim == HakimByFirstAce && !g.hakimFixed {
		if _, err := g.DetermineHakim(); err != nil {
			return err
		}
	}
	for _, player := range g.players {
		player.hand.AddCards(deck.Draw(FirstDeal))
	}
	if g.rules.Deal == DealAllUpfront {
		g.dealStock(deck)
	}
	g.stock = deck
	g.phase = PhaseDeclareTrump
	g.turn.Set(g.hakim)
	return nil
}

func (g *Game) dealStock(deck *Deck) {
	if deck.Size() < Seats*SecondDeal {
		return
	}
	for _, player := range g.players {
		player.hand.AddCards(deck.Draw(SecondDeal))
	}
}

// DeclareTrump names the trump suit and hands the lead to the hakim. Any seat
// may call it; see DeclareTrumpAs for the hakim-only variant.
func (g *Game) DeclareTrump(suit card.Suit) error {
	if g.phase != PhaseDeclareTrump {
		return ErrInvalidPhase
	}
	if !suit.Valid() {
		return ErrInvalidSuit
	}
	g.trump = suit
	g.hasTrump = true
	g.dealStock(g.stock)
	g.phase = PhasePlaying
	g.turn.Set(g.hakim)
	g.events.EmitTrumpDeclared(event.TrumpDeclaredPayload{Hakim: g.hakim, Suit: suit})
	return nil
}

func (g *Game) DeclareTrumpAs(seat int, suit card.Suit) error {
	if g.phase != PhaseDeclareTrump {
		return ErrInvalidPhase
	}
	if !validSeat(seat) {
		return ErrInvalidSeat
	}
	if seat != g.hakim {
		return ErrNotHakim
	}
	return g.DeclareTrump(suit)
}

// PlayCard validates the play fully before touching any state.
func (g *Game) PlayCard(seat int, c card.Card) error {
	if g.phase != PhasePlaying {
		return ErrInvalidPhase
	}
	if seat != g.turn.Current() {
		return ErrNotYourTurn
	}
	player := g.players[seat]
	if !player.hand.Contains(c) {
		return ErrCardNotInHand
	}
	if lead, ok := LeadSuit(g.trick); ok && c.Suit != lead && player.hand.HasSuit(lead) {
		return ErrMustFollowSuit
	}

	player.hand.RemoveCard(c)
	g.trick = append(g.trick, Play{Seat: seat, Card: c})
	g.events.EmitCardPlayed(event.CardPlayedPayload{Seat: seat, Card: c})
	if len(g.trick) == Seats {
		g.resolveTrick()
	} else {
		g.turn.Next()
	}
	return nil
}

// LegalMoves lists what seat may play right now; empty when it is not the
// seat's turn.
func (g *Game) LegalMoves(seat int) []card.Card {
	if g.phase != PhasePlaying || seat != g.turn.Current() {
		return nil
	}
	hand := g.players[seat].hand
	if lead, ok := LeadSuit(g.trick); ok && hand.HasSuit(lead) {
		return hand.CardsOfSuit(lead)
	}
	return hand.Cards()
}

func (g *Game) resolveTrick() {
	winner := TrickWinner(g.trick, g.trump, g.hasTrump)
	g.players[winner].wonTricks++

	trick := Trick{Plays: make([]Play, len(g.trick)), Winner: winner}
	copy(trick.Plays, g.trick)
	g.tricks = append(g.tricks, trick)
	g.trick = g.trick[:0]
	g.turn.Set(winner)

	cards := make(map[int]card.Card, len(trick.Plays))
	for _, play := range trick.Plays {
		cards[play.Seat] = play.Card
	}
	g.events.EmitTrickWon(event.TrickWonPayload{
		Number: len(g.tricks),
		Leader: trick.Leader(),
		Winner: winner,
		Cards:  cards,
	})

	// Hands shrink in lockstep, so seat 0 running out means all did.
	if g.players[0].hand.Empty() {
		g.endRound()
	}
}

func (g *Game) endRound() {
	teamA, teamB := g.TeamTricks(TeamA), g.TeamTricks(TeamB)
	if teamA >= TricksToWin {
		g.roundWinner = TeamA
	} else {
		g.roundWinner = TeamB
	}
	g.scores[g.roundWinner]++
	g.roundOver = true
	g.phase = PhaseFinished
	g.events.EmitRoundEnded(event.RoundEndedPayload{
		Winner: int(g.roundWinner),
		Tricks: [2]int{teamA, teamB},
		Scores: g.scores,
	})
}

// Reset clears a finished round for a new deal. Scores and the hakim seat stay.
func (g *Game) Reset() error {
	if g.phase != PhaseFinished {
		return ErrInvalidPhase
	}
	for _, player := range g.players {
		player.reset()
	}
	g.trump = 0
	g.hasTrump = false
	g.stock = &Deck{}
	g.trick = g.trick[:0]
	g.tricks = nil
	g.roundOver = false
	g.phase = PhaseDetermineHakim
	g.turn.Set(g.hakim)
	return nil
}

func validSeat(seat int) bool {
	return seat >= 0 && seat < Seats
}
