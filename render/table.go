package render

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ratel-online/hokm/database"
	"github.com/ratel-online/hokm/hokm/card"
	"github.com/ratel-online/hokm/hokm/event"
	"github.com/ratel-online/hokm/hokm/game"
)

const initialRune = 'A'

// Names resolves the players seated at a running table.
func Names(table *database.Hokm) [game.Seats]string {
	return names(table.Seats)
}

func Seat(names [game.Seats]string, seat int) string {
	if seat < 0 || seat >= game.Seats {
		return fmt.Sprintf("seat %d", seat)
	}
	return fmt.Sprintf("%s(%d)", names[seat], seat)
}

func Teams(names [game.Seats]string) string {
	parts := make([]string, 0, 2)
	for _, team := range []game.Team{game.TeamA, game.TeamB} {
		seats := team.Seats()
		parts = append(parts, fmt.Sprintf("%s: %s, %s", team, Seat(names, seats[0]), Seat(names, seats[1])))
	}
	return strings.Join(parts, "; ")
}

func TableState(state game.State, names [game.Seats]string) string {
	buf := bytes.Buffer{}
	buf.WriteString(Teams(names) + "\n")
	buf.WriteString(state.String() + "\n")
	if state.LastTrick != nil {
		buf.WriteString(fmt.Sprintf("Last trick won by %s: %s\n", Seat(names, state.LastTrick.Winner), plays(state.LastTrick.Plays, names)))
	}
	return buf.String()
}

// CardOptions labels cards A, B, C... in table order.
func CardOptions(cards []card.Card) (string, map[string]card.Card) {
	sorted := make([]card.Card, len(cards))
	copy(sorted, cards)
	card.Sort(sorted)
	options := make(map[string]card.Card, len(sorted))
	lines := make([]string, 0, len(sorted))
	for i, c := range sorted {
		label := string(rune(initialRune + i))
		options[label] = c
		lines = append(lines, fmt.Sprintf("%s:%s", label, c))
	}
	return "Select a card to play:\n" + strings.Join(lines, " ") + "\n", options
}

func TrumpPrompt(hand []card.Card) string {
	sorted := make([]card.Card, len(hand))
	copy(sorted, hand)
	card.Sort(sorted)
	buf := bytes.Buffer{}
	buf.WriteString(notice("You are the hakim! ") + "\n")
	buf.WriteString(fmt.Sprintf("Your hand: %s\n", card.Join(sorted)))
	suits := make([]string, 0, len(card.Suits))
	for _, suit := range card.Suits {
		suits = append(suits, suit.Paintf("%s:%s", suit.Letter(), suit))
	}
	buf.WriteString(fmt.Sprintf("Declare trump (t <suit>): %s\n", strings.Join(suits, " ")))
	return buf.String()
}

func RoundStarted(round int, names [game.Seats]string, hakim int) string {
	return fmt.Sprintf("Round %d begins, hakim is %s\n", round, Seat(names, hakim))
}

func HakimChosen(names [game.Seats]string, payload event.HakimChosenPayload) string {
	return fmt.Sprintf("%s drew the first ace and becomes hakim!\n", Seat(names, payload.Seat))
}

func TrumpDeclared(names [game.Seats]string, payload event.TrumpDeclaredPayload) string {
	return fmt.Sprintf("%s declared trump: %s\n", Seat(names, payload.Hakim), payload.Suit.Paintf("%s %s", payload.Suit.Symbol(), payload.Suit))
}

func CardPlayed(names [game.Seats]string, payload event.CardPlayedPayload) string {
	return fmt.Sprintf("%s played %s\n", Seat(names, payload.Seat), payload.Card)
}

func TrickWon(names [game.Seats]string, payload event.TrickWonPayload) string {
	seats := make([]int, 0, len(payload.Cards))
	for seat := range payload.Cards {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	cards := make([]string, 0, len(seats))
	for _, seat := range seats {
		cards = append(cards, fmt.Sprintf("%d:%s", seat, payload.Cards[seat]))
	}
	return fmt.Sprintf("Trick %d won by %s (%s)\n", payload.Number, Seat(names, payload.Winner), strings.Join(cards, " "))
}

func RoundEnded(payload event.RoundEndedPayload) string {
	winner := game.Team(payload.Winner)
	return fmt.Sprintf("%s wins the round %d - %d! Score: %s %d - %d %s\n",
		winner, payload.Tricks[winner], payload.Tricks[1-winner],
		game.TeamA, payload.Scores[game.TeamA], payload.Scores[game.TeamB], game.TeamB)
}

func MatchWinner(names [game.Seats]string, team game.Team, scores [2]int) string {
	seats := team.Seats()
	return notice("%s (%s, %s) wins the match %d - %d!", team, Seat(names, seats[0]), Seat(names, seats[1]), scores[team], scores[1-team]) + "\n"
}

func plays(plays []game.Play, names [game.Seats]string) string {
	parts := make([]string, 0, len(plays))
	for _, play := range plays {
		parts = append(parts, fmt.Sprintf("%s %s", Seat(names, play.Seat), play.Card))
	}
	return strings.Join(parts, ", ")
}
