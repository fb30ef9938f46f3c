package game_test

import (
	"testing"

	"github.com/ratel-online/hokm/hokm/card"
	"github.com/ratel-online/hokm/hokm/event"
	"github.com/ratel-online/hokm/hokm/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStackedGame(t *testing.T, hands [game.Seats][]card.Card, trump card.Suit) *game.Game {
	t.Helper()
	g := game.New(game.DefaultRules())
	require.NoError(t, g.StartGameWith(stackDeck(t, hands)))
	require.NoError(t, g.DeclareTrump(trump))
	return g
}

func TestNew(t *testing.T) {
	g := game.New(game.DefaultRules())
	assert.Equal(t, game.PhaseDetermineHakim, g.Phase())
	assert.Equal(t, 0, g.Hakim())
	_, hasTrump := g.Trump()
	assert.False(t, hasTrump)
	for seat := 0; seat < game.Seats; seat++ {
		assert.Empty(t, g.Hand(seat))
	}
	assert.Nil(t, g.Hand(4))
	assert.Nil(t, g.Player(-1))
}

func TestNewFallsBackToDefaultRules(t *testing.T) {
	g := game.New(game.Rules{Deal: 7})
	assert.Equal(t, game.DefaultRules(), g.Rules())
}

func TestStartGame(t *testing.T) {
	t.Run("deals_thirteen_cards_to_every_seat", func(t *testing.T) {
		g := game.New(game.DefaultRules())
		require.NoError(t, g.StartGame())
		assert.Equal(t, game.PhaseDeclareTrump, g.Phase())
		assert.Equal(t, g.Hakim(), g.CurrentPlayer())
		for seat := 0; seat < game.Seats; seat++ {
			assert.Len(t, g.Hand(seat), game.HandSize)
		}
		assert.Empty(t, g.Stock())
		require.ElementsMatch(t, game.OrderedDeck(), allHands(g))
	})

	t.Run("fails_outside_of_determine_hakim", func(t *testing.T) {
		g := game.New(game.DefaultRules())
		require.NoError(t, g.StartGame())
		require.Equal(t, game.ErrInvalidPhase, g.StartGame())
	})

	t.Run("deals_a_stacked_deck_in_order", func(t *testing.T) {
		hands := sevenSixHands()
		g := game.New(game.DefaultRules())
		require.NoError(t, g.StartGameWith(stackDeck(t, hands)))
		for seat := 0; seat < game.Seats; seat++ {
			require.Equal(t, hands[seat], g.Hand(seat))
		}
	})

	t.Run("rejects_an_incomplete_deck", func(t *testing.T) {
		g := game.New(game.DefaultRules())
		require.Equal(t, game.ErrInvalidDeck, g.StartGameWith(nil))
		require.Equal(t, game.PhaseDetermineHakim, g.Phase())
	})
}

func TestDealFiveFirst(t *testing.T) {
	rules := game.DefaultRules()
	rules.Deal = game.DealFiveFirst
	g := game.New(rules)
	require.NoError(t, g.StartGame())

	for seat := 0; seat < game.Seats; seat++ {
		assert.Len(t, g.Hand(seat), game.FirstDeal)
	}
	assert.Len(t, g.Stock(), 32)
	require.ElementsMatch(t, game.OrderedDeck(), append(allHands(g), g.Stock()...))

	require.NoError(t, g.DeclareTrump(card.Clubs))
	for seat := 0; seat < game.Seats; seat++ {
		assert.Len(t, g.Hand(seat), game.HandSize)
	}
	assert.Empty(t, g.Stock())
	require.ElementsMatch(t, game.OrderedDeck(), allHands(g))
}

func TestSeededGamesDealTheSame(t *testing.T) {
	rules := game.DefaultRules()
	rules.Seed = 42
	first, second := game.New(rules), game.New(rules)
	require.NoError(t, first.StartGame())
	require.NoError(t, second.StartGame())
	for seat := 0; seat < game.Seats; seat++ {
		require.Equal(t, first.Hand(seat), second.Hand(seat))
	}
}

func TestSetHakim(t *testing.T) {
	g := game.New(game.DefaultRules())
	require.Equal(t, game.ErrInvalidSeat, g.SetHakim(4))
	require.NoError(t, g.SetHakim(3))
	require.NoError(t, g.StartGame())
	assert.Equal(t, 3, g.Hakim())
	assert.Equal(t, 3, g.CurrentPlayer())
	require.Equal(t, game.ErrInvalidPhase, g.SetHakim(1))
}

func TestFirstAceSeat(t *testing.T) {
	scenarios := []struct {
		description string
		cards       []card.Card
		direction   game.Direction
		seat        int
	}{
		{
			description: "first_card_is_an_ace",
			cards:       []card.Card{card.New(card.Ace, card.Clubs)},
			direction:   game.Clockwise,
			seat:        0,
		},
		{
			description: "third_card_clockwise",
			cards:       []card.Card{card.New(card.Two, card.Hearts), card.New(card.Three, card.Hearts), card.New(card.Ace, card.Spades)},
			direction:   game.Clockwise,
			seat:        2,
		},
		{
			description: "second_card_clockwise",
			cards:       []card.Card{card.New(card.Two, card.Hearts), card.New(card.Ace, card.Spades)},
			direction:   game.Clockwise,
			seat:        1,
		},
		{
			description: "second_card_counter_clockwise",
			cards:       []card.Card{card.New(card.Two, card.Hearts), card.New(card.Ace, card.Spades)},
			direction:   game.CounterClockwise,
			seat:        3,
		},
		{
			description: "wraps_around_the_table",
			cards: []card.Card{
				card.New(card.Two, card.Hearts), card.New(card.Three, card.Hearts),
				card.New(card.Four, card.Hearts), card.New(card.Five, card.Hearts),
				card.New(card.Six, card.Hearts), card.New(card.Ace, card.Diamonds),
			},
			direction: game.Clockwise,
			seat:      1,
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.seat, game.FirstAceSeat(scenario.cards, scenario.direction))
		})
	}
}

func TestHakimByFirstAce(t *testing.T) {
	rules := game.DefaultRules()
	rules.Hakim = game.HakimByFirstAce
	rules.Seed = 7
	g := game.New(rules)
	listener := event.NewDummyListener()
	g.AddListener(listener)

	require.NoError(t, g.StartGame())
	require.NotEmpty(t, listener.ReceivedPayloads())
	chosen, ok := listener.ReceivedPayloads()[0].(event.HakimChosenPayload)
	require.True(t, ok)
	assert.Equal(t, g.Hakim(), chosen.Seat)
	assert.Equal(t, g.Hakim(), g.CurrentPlayer())
}

func TestDeclareTrump(t *testing.T) {
	t.Run("moves_to_playing_with_the_hakim_to_lead", func(t *testing.T) {
		g := game.New(game.DefaultRules())
		require.NoError(t, g.SetHakim(2))
		require.NoError(t, g.StartGame())
		require.NoError(t, g.DeclareTrump(card.Spades))

		trump, ok := g.Trump()
		require.True(t, ok)
		assert.Equal(t, card.Spades, trump)
		assert.Equal(t, game.PhasePlaying, g.Phase())
		assert.Equal(t, 2, g.CurrentPlayer())
	})

	t.Run("second_declaration_is_rejected", func(t *testing.T) {
		g := game.New(game.DefaultRules())
		require.NoError(t, g.StartGame())
		require.NoError(t, g.DeclareTrump(card.Spades))
		require.Equal(t, game.ErrInvalidPhase, g.DeclareTrump(card.Hearts))
		trump, _ := g.Trump()
		assert.Equal(t, card.Spades, trump)
	})

	t.Run("rejected_before_the_deal", func(t *testing.T) {
		g := game.New(game.DefaultRules())
		require.Equal(t, game.ErrInvalidPhase, g.DeclareTrump(card.Spades))
	})

	t.Run("rejects_an_unknown_suit", func(t *testing.T) {
		g := game.New(game.DefaultRules())
		require.NoError(t, g.StartGame())
		require.Equal(t, game.ErrInvalidSuit, g.DeclareTrump(card.Suit(9)))
		assert.Equal(t, game.PhaseDeclareTrump, g.Phase())
	})

	t.Run("only_the_hakim_may_declare_by_seat", func(t *testing.T) {
		g := game.New(game.DefaultRules())
		require.NoError(t, g.StartGame())
		require.Equal(t, game.ErrNotHakim, g.DeclareTrumpAs(1, card.Spades))
		require.Equal(t, game.ErrInvalidSeat, g.DeclareTrumpAs(5, card.Spades))
		require.NoError(t, g.DeclareTrumpAs(0, card.Spades))
	})
}

func TestPlayCard(t *testing.T) {
	t.Run("rejected_before_trump", func(t *testing.T) {
		g := game.New(game.DefaultRules())
		require.NoError(t, g.StartGame())
		require.Equal(t, game.ErrInvalidPhase, g.PlayCard(0, g.Hand(0)[0]))
	})

	t.Run("out_of_turn_leaves_state_unchanged", func(t *testing.T) {
		g := newStackedGame(t, sevenSixHands(), card.Hearts)
		before := g.ExtractState()
		for seat := 1; seat < game.Seats; seat++ {
			require.Equal(t, game.ErrNotYourTurn, g.PlayCard(seat, g.Hand(seat)[0]))
		}
		require.Equal(t, before, g.ExtractState())
	})

	t.Run("card_not_in_hand", func(t *testing.T) {
		g := newStackedGame(t, sevenSixHands(), card.Hearts)
		require.Equal(t, game.ErrCardNotInHand, g.PlayCard(0, card.New(card.Ace, card.Spades)))
		assert.Len(t, g.Hand(0), game.HandSize)
	})

	t.Run("must_follow_suit", func(t *testing.T) {
		g := newStackedGame(t, sevenSixHands(), card.Hearts)
		require.NoError(t, g.PlayCard(0, card.New(card.Eight, card.Hearts)))
		before := g.ExtractState()
		require.Equal(t, game.ErrMustFollowSuit, g.PlayCard(1, card.New(card.Ace, card.Clubs)))
		require.Equal(t, before, g.ExtractState())
		require.NoError(t, g.PlayCard(1, card.New(card.Two, card.Hearts)))
	})

	t.Run("void_seat_may_discard", func(t *testing.T) {
		g := newStackedGame(t, sevenSixHands(), card.Hearts)
		require.NoError(t, g.PlayCard(0, card.New(card.Eight, card.Hearts)))
		require.NoError(t, g.PlayCard(1, card.New(card.Two, card.Hearts)))
		require.NoError(t, g.PlayCard(2, card.New(card.Ace, card.Diamonds)))
		require.NoError(t, g.PlayCard(3, card.New(card.King, card.Spades)))
		assert.Equal(t, 1, g.WonTricks(0))
		assert.Equal(t, 0, g.CurrentPlayer())
		assert.Empty(t, g.CurrentTrick())
		require.Len(t, g.Tricks(), 1)
		assert.Equal(t, 0, g.Tricks()[0].Winner)
		assert.Equal(t, 0, g.Tricks()[0].Leader())
	})

	t.Run("turn_passes_in_order", func(t *testing.T) {
		g := newStackedGame(t, sevenSixHands(), card.Hearts)
		for seat := 0; seat < game.Seats-1; seat++ {
			require.Equal(t, seat, g.CurrentPlayer())
			require.NoError(t, g.PlayCard(seat, g.LegalMoves(seat)[0]))
		}
		require.Equal(t, 3, g.CurrentPlayer())
	})

	t.Run("trump_wins_the_trick", func(t *testing.T) {
		// Seat 3 is void in spades and trumps with its lowest club.
		hands := [game.Seats][]card.Card{
			concat(suitRun(card.Spades, card.Two, card.Eight), suitRun(card.Diamonds, card.Two, card.Seven)),
			suitRun(card.Hearts, card.Two, card.Ace),
			concat(suitRun(card.Diamonds, card.Eight, card.Ace), suitRun(card.Spades, card.Nine, card.Ace)[:6]),
			concat(suitRun(card.Clubs, card.Two, card.Ace)),
		}
		g := game.New(game.DefaultRules())
		require.NoError(t, g.StartGameWith(stackDeck(t, hands)))
		require.NoError(t, g.DeclareTrump(card.Clubs))

		require.NoError(t, g.PlayCard(0, card.New(card.Two, card.Spades)))
		require.NoError(t, g.PlayCard(1, card.New(card.Ace, card.Hearts)))
		require.NoError(t, g.PlayCard(2, card.New(card.Nine, card.Spades)))
		require.NoError(t, g.PlayCard(3, card.New(card.Two, card.Clubs)))
		assert.Equal(t, 1, g.WonTricks(3))
		assert.Equal(t, 3, g.CurrentPlayer())
	})
}

func TestLegalMoves(t *testing.T) {
	g := newStackedGame(t, sevenSixHands(), card.Hearts)
	assert.Equal(t, g.Hand(0), g.LegalMoves(0))
	assert.Empty(t, g.LegalMoves(1))

	require.NoError(t, g.PlayCard(0, card.New(card.Eight, card.Hearts)))
	assert.Equal(t, suitRun(card.Hearts, card.Two, card.Seven), g.LegalMoves(1))

	require.NoError(t, g.PlayCard(1, card.New(card.Two, card.Hearts)))
	assert.Equal(t, g.Hand(2), g.LegalMoves(2))
}

func TestRoundEnd(t *testing.T) {
	g := game.New(game.DefaultRules())
	listener := event.NewDummyListener()
	g.AddListener(listener)
	require.NoError(t, g.StartGameWith(stackDeck(t, sevenSixHands())))
	require.NoError(t, g.DeclareTrump(card.Hearts))

	playFirstLegal(t, g)

	assert.Equal(t, game.PhaseFinished, g.Phase())
	assert.Equal(t, 7, g.TeamTricks(game.TeamA))
	assert.Equal(t, 6, g.TeamTricks(game.TeamB))
	assert.Equal(t, 7, g.WonTricks(0))
	assert.Equal(t, 6, g.WonTricks(1))
	assert.Equal(t, [2]int{1, 0}, g.Scores())
	winner, ok := g.RoundWinner()
	require.True(t, ok)
	assert.Equal(t, game.TeamA, winner)
	require.Len(t, g.Tricks(), game.HandSize)
	for seat := 0; seat < game.Seats; seat++ {
		assert.Empty(t, g.Hand(seat))
	}

	payloads := listener.ReceivedPayloads()
	require.IsType(t, event.TrumpDeclaredPayload{}, payloads[0])
	ended, ok := payloads[len(payloads)-1].(event.RoundEndedPayload)
	require.True(t, ok)
	assert.Equal(t, int(game.TeamA), ended.Winner)
	assert.Equal(t, [2]int{7, 6}, ended.Tricks)

	require.Equal(t, game.ErrInvalidPhase, g.PlayCard(0, card.New(card.Two, card.Clubs)))
}

func TestRoundEndTeamB(t *testing.T) {
	// Seat 3 holds every spade; with spades as trump it takes all thirteen tricks.
	hands := [game.Seats][]card.Card{
		suitRun(card.Hearts, card.Two, card.Ace),
		suitRun(card.Diamonds, card.Two, card.Ace),
		suitRun(card.Clubs, card.Two, card.Ace),
		suitRun(card.Spades, card.Two, card.Ace),
	}
	g := newStackedGame(t, hands, card.Spades)
	playFirstLegal(t, g)

	assert.Equal(t, 0, g.TeamTricks(game.TeamA))
	assert.Equal(t, 13, g.TeamTricks(game.TeamB))
	assert.Equal(t, [2]int{0, 1}, g.Scores())
}

func TestRandomRoundsKeepInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rules := game.DefaultRules()
		rules.Seed = seed
		g := game.New(rules)
		require.NoError(t, g.StartGame())
		require.NoError(t, g.DeclareTrump(card.Suits[seed%4]))

		seen := map[card.Card]bool{}
		for g.Phase() == game.PhasePlaying {
			seat := g.CurrentPlayer()
			c := g.LegalMoves(seat)[0]
			require.False(t, seen[c])
			seen[c] = true
			require.NoError(t, g.PlayCard(seat, c))
			require.Equal(t, 52, len(seen)+len(allHands(g)))
		}
		require.Len(t, seen, 52)
		assert.Equal(t, game.HandSize, g.TeamTricks(game.TeamA)+g.TeamTricks(game.TeamB))
		scores := g.Scores()
		assert.Equal(t, 1, scores[0]+scores[1])
	}
}

func TestReset(t *testing.T) {
	g := newStackedGame(t, sevenSixHands(), card.Hearts)
	require.Equal(t, game.ErrInvalidPhase, g.Reset())
	playFirstLegal(t, g)

	require.NoError(t, g.Reset())
	assert.Equal(t, game.PhaseDetermineHakim, g.Phase())
	assert.Equal(t, [2]int{1, 0}, g.Scores())
	assert.Empty(t, g.Tricks())
	assert.Equal(t, 0, g.WonTricks(0))
	_, hasTrump := g.Trump()
	assert.False(t, hasTrump)
	require.NoError(t, g.StartGame())
}

func TestExtractStateFor(t *testing.T) {
	g := newStackedGame(t, sevenSixHands(), card.Hearts)
	state := g.ExtractStateFor(1)
	require.Len(t, state.Players, game.Seats)
	for _, player := range state.Players {
		assert.Equal(t, game.HandSize, player.HandSize)
		if player.Seat == 1 {
			assert.Len(t, player.Hand, game.HandSize)
		} else {
			assert.Empty(t, player.Hand)
		}
	}
	require.NotNil(t, state.Trump)
	assert.Equal(t, card.Hearts, *state.Trump)
	assert.Contains(t, state.String(), "Your hand: ")

	full := g.ExtractState()
	assert.Equal(t, -1, full.Viewer)
	for _, player := range full.Players {
		assert.Len(t, player.Hand, game.HandSize)
	}

	for _, viewer := range []int{-1, -2, game.Seats, 99} {
		hidden := g.ExtractStateFor(viewer)
		assert.Equal(t, -1, hidden.Viewer, viewer)
		for _, player := range hidden.Players {
			assert.Empty(t, player.Hand, viewer)
			assert.Equal(t, game.HandSize, player.HandSize)
		}
		assert.NotContains(t, hidden.String(), "Your hand: ")
	}
}
