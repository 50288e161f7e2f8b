package engine

import (
	"errors"
	"testing"

	"pokerrun/card"
	"pokerrun/experiments/metrics"
	"pokerrun/game"
	"pokerrun/hands"

	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, config game.Config, seed int64, level int) *Handler {
	t.Helper()
	return NewHandler(config, hands.DefaultConfig(), game.NewRunState(seed), level)
}

// dealt returns a handler whose hand holds exactly the given cards.
func dealt(t *testing.T, config game.Config, hand string) *Handler {
	t.Helper()
	config.HandSize = len(mustCards(t, hand))
	h := newHandler(t, config, 1, 1)
	require.NoError(t, h.Draw(mustCards(t, hand)), "Fixture hand should be drawable")
	return h
}

func mustCards(t *testing.T, s string) []card.Card {
	t.Helper()
	cs, err := card.ParseCards(s)
	require.NoError(t, err)
	return cs
}

func requireUnchanged(t *testing.T, h *Handler, before game.Snapshot) {
	t.Helper()
	require.Equal(t, before, h.Snapshot(), "Failed operations should not mutate the game")
}

func TestDeterminism(t *testing.T) {
	t.Run("same seed and level draw the same cards", func(t *testing.T) {
		a := newHandler(t, game.DefaultConfig(), 11, 3)
		b := newHandler(t, game.DefaultConfig(), 11, 3)

		drawnA, err := a.DrawCards(8)
		require.NoError(t, err)
		drawnB, err := b.DrawCards(8)
		require.NoError(t, err)

		require.Equal(t, drawnA, drawnB, "Handlers with the same seed should draw identically")
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("replaying a game reproduces its history", func(t *testing.T) {
		play := func() *Handler {
			h := newHandler(t, game.DefaultConfig(), 5, 1)
			_, _, err := Run(h, firstCards{})
			require.NoError(t, err)
			return h
		}
		a, b := play(), play()

		require.Equal(t, a.History(), b.History(), "Replays should record the same history")
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("different levels draw differently", func(t *testing.T) {
		a := newHandler(t, game.DefaultConfig(), 11, 1)
		b := newHandler(t, game.DefaultConfig(), 11, 2)

		drawnA, _ := a.DrawCards(8)
		drawnB, _ := b.DrawCards(8)
		require.NotEqual(t, drawnA, drawnB)
	})
}

func TestDraw(t *testing.T) {
	t.Run("drawing up to the hand size", func(t *testing.T) {
		h := newHandler(t, game.DefaultConfig(), 1, 1)

		drawn, err := h.DrawCards(8)
		require.NoError(t, err)
		require.ElementsMatch(t, drawn, h.Hand())
		require.Len(t, h.Available(), 44)
		require.False(t, h.IsDrawPending())

		_, err = h.DrawCards(1)
		require.True(t, errors.Is(err, game.ErrDrawNotPending), "Full hands should not draw")
	})

	t.Run("rejecting bad counts", func(t *testing.T) {
		h := newHandler(t, game.DefaultConfig(), 1, 1)
		before := h.Snapshot()

		_, err := h.DrawCards(0)
		require.True(t, errors.Is(err, game.ErrInvalidCardCount))
		_, err = h.DrawCards(9)
		require.True(t, errors.Is(err, game.ErrDrawExceedsShortfall), "Should not overfill the hand")
		requireUnchanged(t, h, before)
	})

	t.Run("rejecting draws larger than the pool", func(t *testing.T) {
		config := game.DefaultConfig()
		config.Universe = card.Universe{MinRank: card.Queen, MaxRank: card.Ace, Suits: []card.Suit{card.Spades, card.Hearts}}
		h := newHandler(t, config, 1, 1)

		_, err := h.DrawCards(7)
		require.True(t, errors.Is(err, game.ErrDrawExceedsAvailable), "Six cards cannot cover seven draws")
	})

	t.Run("drawing explicit cards", func(t *testing.T) {
		h := newHandler(t, game.DefaultConfig(), 1, 1)
		before := h.Snapshot()

		err := h.Draw(mustCards(t, "AS AS"))
		require.True(t, errors.Is(err, game.ErrInvalidCardCount), "Duplicates should be rejected")

		require.NoError(t, h.Draw(mustCards(t, "AS")))
		err = h.Draw(mustCards(t, "KS AS"))
		require.True(t, errors.Is(err, game.ErrCardNotAvailable))
		require.Len(t, h.Hand(), 1, "Rejected draw should not move KS")
		require.NotEqual(t, before.Hand, h.Hand())
	})
}

func TestPlayHand(t *testing.T) {
	t.Run("scoring the best hand and moving the cards", func(t *testing.T) {
		h := dealt(t, game.DefaultConfig(), "9S 9C 4H 2D KS")

		played, err := h.PlayHand(mustCards(t, "9S 9C KS"))
		require.NoError(t, err)

		require.Equal(t, hands.Pair, played.Type())
		require.Equal(t, int64((10+18)*2), played.Score())
		require.Equal(t, played.Score(), h.Score())
		require.ElementsMatch(t, mustCards(t, "9S 9C KS"), h.Played(), "Every selected card should be played")
		require.ElementsMatch(t, mustCards(t, "4H 2D"), h.Hand())
		require.Len(t, h.History(), 1)
		require.Equal(t, 1, h.Run().HandsPlayed())
		require.Equal(t, 3, h.Run().CardsPlayed())
	})

	t.Run("failing on cards not in hand without changes", func(t *testing.T) {
		h := dealt(t, game.DefaultConfig(), "9S 9C 4H 2D KS")
		before := h.Snapshot()

		_, err := h.PlayHand(mustCards(t, "9S AH"))
		require.True(t, errors.Is(err, game.ErrCardNotInHand), "Should report the missing card")
		require.Contains(t, err.Error(), "AH", "Error should name the offending card")
		requireUnchanged(t, h, before)
		require.Zero(t, h.Run().HandsPlayed())
	})

	t.Run("rejecting bad counts", func(t *testing.T) {
		h := dealt(t, game.DefaultConfig(), "9S 9C 4H 2D KS 3C")
		before := h.Snapshot()

		_, err := h.PlayHand(nil)
		require.True(t, errors.Is(err, game.ErrInvalidCardCount))
		_, err = h.PlayHand(mustCards(t, "9S 9C 4H 2D KS 3C"))
		require.True(t, errors.Is(err, game.ErrInvalidCardCount), "Should not play more than five cards")
		_, err = h.PlayHand(mustCards(t, "9S 9S"))
		require.True(t, errors.Is(err, game.ErrInvalidCardCount))
		requireUnchanged(t, h, before)
	})

	t.Run("requiring a draw first", func(t *testing.T) {
		h := newHandler(t, game.DefaultConfig(), 1, 1)

		_, err := h.PlayHand(mustCards(t, "AS"))
		require.True(t, errors.Is(err, game.ErrDrawPending))
		require.True(t, errors.Is(h.Discard(mustCards(t, "AS")), game.ErrDrawPending))
	})

	t.Run("leveled hand types score more", func(t *testing.T) {
		h := dealt(t, game.DefaultConfig(), "9S 9C")
		h.Run().LevelUp(hands.Pair)

		played, err := h.PlayHand(mustCards(t, "9S 9C"))
		require.NoError(t, err)
		require.Equal(t, int64((10+15+18)*3), played.Score())
	})
}

func TestDiscard(t *testing.T) {
	t.Run("discarding and counting", func(t *testing.T) {
		h := dealt(t, game.DefaultConfig(), "9S 9C 4H 2D KS")

		require.NoError(t, h.Discard(mustCards(t, "4H 2D")))
		require.ElementsMatch(t, mustCards(t, "4H 2D"), h.Discarded())
		require.Equal(t, 2, h.RemainingDiscards())
		require.Equal(t, 2, h.Run().CardsDiscarded())
		require.Equal(t, game.DiscardAction, h.History()[0].Action)
	})

	t.Run("failing with no discards remaining", func(t *testing.T) {
		config := game.DefaultConfig()
		config.MaxDiscards = 0
		h := dealt(t, config, "9S 9C 4H 2D KS")
		before := h.Snapshot()

		err := h.Discard(mustCards(t, "4H"))
		require.True(t, errors.Is(err, game.ErrNoDiscardsRemaining))
		require.Zero(t, h.Snapshot().DiscardsUsed, "Discards used should not change")
		requireUnchanged(t, h, before)
	})

	t.Run("running out of discards", func(t *testing.T) {
		config := game.DefaultConfig()
		config.MaxDiscards = 1
		h := dealt(t, config, "9S 9C 4H 2D KS")

		require.NoError(t, h.Discard(mustCards(t, "4H")))
		_, err := h.DrawCards(1)
		require.NoError(t, err)
		err = h.Discard(mustCards(t, "2D"))
		require.True(t, errors.Is(err, game.ErrNoDiscardsRemaining))
	})

	t.Run("rejecting bad counts and missing cards", func(t *testing.T) {
		h := dealt(t, game.DefaultConfig(), "9S 9C 4H 2D KS 3C")
		before := h.Snapshot()

		require.True(t, errors.Is(h.Discard(nil), game.ErrInvalidCardCount))
		require.True(t, errors.Is(h.Discard(mustCards(t, "9S 9C 4H 2D KS 3C")), game.ErrInvalidCardCount))
		require.True(t, errors.Is(h.Discard(mustCards(t, "9S AD")), game.ErrCardNotInHand))
		requireUnchanged(t, h, before)
	})
}

func TestTerminalStates(t *testing.T) {
	t.Run("rejecting every verb once won", func(t *testing.T) {
		config := game.DefaultConfig()
		config.LevelTargets = []int64{1}
		h := dealt(t, config, "9S 9C 4H")

		_, err := h.PlayHand(mustCards(t, "9S 9C"))
		require.NoError(t, err)
		require.True(t, h.IsWon())

		_, err = h.PlayHand(mustCards(t, "4H"))
		require.True(t, errors.Is(err, game.ErrGameAlreadyWon))
		require.True(t, errors.Is(h.Discard(mustCards(t, "4H")), game.ErrGameAlreadyWon))
		_, err = h.DrawCards(1)
		require.True(t, errors.Is(err, game.ErrGameAlreadyWon))
		require.True(t, errors.Is(h.Recover(mustCards(t, "9S")), game.ErrGameAlreadyWon))
	})

	t.Run("rejecting every verb once over", func(t *testing.T) {
		config := game.DefaultConfig()
		config.MaxHands = 1
		h := dealt(t, config, "2S 3C 4H")

		_, err := h.PlayHand(mustCards(t, "2S"))
		require.NoError(t, err)
		require.True(t, h.IsGameOver())
		require.False(t, h.IsWon())

		_, err = h.PlayHand(mustCards(t, "3C"))
		require.True(t, errors.Is(err, game.ErrGameOver))
		require.True(t, errors.Is(h.Destroy(mustCards(t, "4H")), game.ErrGameOver))
	})
}

func TestRecoverAndDestroy(t *testing.T) {
	t.Run("recovering chosen cards", func(t *testing.T) {
		h := dealt(t, game.DefaultConfig(), "9S 9C 4H 2D KS")
		require.NoError(t, h.Discard(mustCards(t, "4H 2D")))
		before := h.Snapshot()

		err := h.Recover(mustCards(t, "4H KS"))
		require.True(t, errors.Is(err, game.ErrCardNotRecoverable), "Cards in hand are not recoverable")
		requireUnchanged(t, h, before)

		require.NoError(t, h.Recover(mustCards(t, "4H")))
		require.Contains(t, h.Available(), card.MustParse("4H"))
		require.Equal(t, mustCards(t, "2D"), h.Discarded())
	})

	t.Run("recovering random cards", func(t *testing.T) {
		h := dealt(t, game.DefaultConfig(), "9S 9C 4H 2D KS")
		_, err := h.PlayHand(mustCards(t, "9S 9C"))
		require.NoError(t, err)
		_, err = h.DrawCards(2)
		require.NoError(t, err)
		require.NoError(t, h.Discard(mustCards(t, "4H")))

		_, err = h.RecoverRandom(4)
		require.True(t, errors.Is(err, game.ErrInvalidCardCount), "Only three cards are recoverable")

		recovered, err := h.RecoverRandom(3)
		require.NoError(t, err)
		require.ElementsMatch(t, mustCards(t, "9S 9C 4H"), recovered)
		require.Empty(t, h.Played())
		require.Empty(t, h.Discarded())
	})

	t.Run("destroying from any pile", func(t *testing.T) {
		h := dealt(t, game.DefaultConfig(), "9S 9C 4H 2D KS")

		require.NoError(t, h.Destroy(mustCards(t, "9S AH")))
		require.ElementsMatch(t, mustCards(t, "9S AH"), h.Destroyed())
		require.NotContains(t, h.Hand(), card.MustParse("9S"))
		require.NotContains(t, h.Available(), card.MustParse("AH"))

		before := h.Snapshot()
		err := h.Destroy(mustCards(t, "9C 9S"))
		require.True(t, errors.Is(err, game.ErrCardNotFound), "Destroyed cards are out of play")
		requireUnchanged(t, h, before)
	})
}

// firstCards plays the first five cards of the hand every turn.
type firstCards struct{}

func (firstCards) NextAction(h *Handler) (Action, metrics.SearchMetric, error) {
	hand := h.Hand()
	return Action{Play: true, Cards: hand[:min(len(hand), 5)], Reason: "first cards"}, metrics.SearchMetric{}, nil
}

// discardAlways discards a card every turn.
type discardAlways struct{}

func (discardAlways) NextAction(h *Handler) (Action, metrics.SearchMetric, error) {
	return Action{Cards: h.Hand()[:1]}, metrics.SearchMetric{}, nil
}

func TestRun(t *testing.T) {
	t.Run("playing a game to the end", func(t *testing.T) {
		h := newHandler(t, game.DefaultConfig(), 3, 1)

		gameMetric, decisions, err := Run(h, firstCards{})
		require.NoError(t, err)

		require.True(t, h.IsGameOver(), "Run should end the game")
		require.Equal(t, h.Score(), gameMetric.Score)
		require.Equal(t, h.IsWon(), gameMetric.Won)
		require.Len(t, decisions, gameMetric.TotalMoves)
		require.Len(t, h.History(), gameMetric.HandsPlayed)

		snapshot := h.Snapshot()
		var all []card.Card
		for _, pile := range [][]card.Card{snapshot.Available, snapshot.Hand, snapshot.Discarded, snapshot.Played, snapshot.Destroyed} {
			all = append(all, pile...)
		}
		require.Len(t, all, 52, "Every card should still be in one pile")
		require.False(t, card.HasDuplicates(all))
	})

	t.Run("recycling cards when the pool runs dry", func(t *testing.T) {
		config := game.DefaultConfig()
		config.Universe = card.Universe{MinRank: 9, MaxRank: card.Ace, Suits: []card.Suit{card.Spades, card.Hearts}}
		config.HandSize = 5
		config.LevelTargets = []int64{1_000_000}
		h := newHandler(t, config, 3, 1)
		for i := 0; i < 2; i++ {
			require.NoError(t, refill(h))
			_, err := h.PlayHand(h.Hand())
			require.NoError(t, err)
		}
		require.Len(t, h.Available(), 2, "Two cards should be left after two hands of five")

		require.NoError(t, refill(h))

		require.Len(t, h.Hand(), 5, "Recovered cards should fill the hand")
		require.Len(t, h.Played(), 7, "Three played cards should be recycled")
		require.Empty(t, h.Available())
	})

	t.Run("stopping on an illegal action", func(t *testing.T) {
		config := game.DefaultConfig()
		config.MaxDiscards = 1
		h := newHandler(t, config, 3, 1)

		_, _, err := Run(h, discardAlways{})
		require.True(t, errors.Is(err, game.ErrNoDiscardsRemaining), "Second discard should fail the run")
	})
}
