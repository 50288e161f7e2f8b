package engine

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"pokerrun/card"
	"pokerrun/game"
	"pokerrun/hands"
	"pokerrun/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Handler owns one game and the run progression it contributes to. Every verb
// validates all of its preconditions before mutating anything.
type Handler struct {
	state      *game.State
	run        *game.RunState
	identifier *hands.Identifier
	rng        *rand.Rand
}

// NewHandler starts a game at level with the configured deck in the
// available pile. Its random source derives from the run seed and level only.
func NewHandler(config game.Config, handsConfig hands.Config, run *game.RunState, level int) *Handler {
	return &Handler{
		state:      game.NewGame(config, run.Seed(), level),
		run:        run,
		identifier: hands.NewIdentifier(handsConfig, run),
		rng:        rand.New(rand.NewSource(Seed(run.Seed(), level))),
	}
}

// Seed derives the random seed of a game from the run seed and level.
func Seed(seed int64, level int) uint64 {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, seed)
	binary.Write(hasher, binary.LittleEndian, int64(level))
	return hasher.Sum64()
}

// DrawCards moves n randomly chosen cards from available to hand.
func (h *Handler) DrawCards(n int) ([]card.Card, error) {
	if err := h.checkDraw(n); err != nil {
		return nil, err
	}
	available := h.state.Available()
	drawn := make([]card.Card, 0, n)
	for _, i := range utils.SampleIndices(h.rng, len(available), n) {
		drawn = append(drawn, available[i])
	}
	h.mustMove(drawn, h.state.Draw)
	log.Debug().Msgf("level %d drew [%s]", h.state.Level(), card.FormatCards(drawn))
	return drawn, nil
}

// Draw moves the given cards from available to hand.
func (h *Handler) Draw(cards []card.Card) error {
	if err := h.checkDraw(len(cards)); err != nil {
		return err
	}
	if err := checkDistinct(cards); err != nil {
		return err
	}
	if missing := h.missing(cards, game.Available); len(missing) > 0 {
		return fmt.Errorf("%w: [%s]", game.ErrCardNotAvailable, card.FormatCards(missing))
	}
	h.mustMove(cards, h.state.Draw)
	log.Debug().Msgf("level %d drew [%s]", h.state.Level(), card.FormatCards(cards))
	return nil
}

// PlayHand scores the best hand formed by cards, moves them to played and
// records the play.
func (h *Handler) PlayHand(cards []card.Card) (hands.Hand, error) {
	if err := h.checkTurn(); err != nil {
		return hands.Hand{}, err
	}
	if len(cards) == 0 || len(cards) > h.state.Config().MaxPlayCards {
		return hands.Hand{}, fmt.Errorf("%w: cannot play %d cards, must be 1 to %d", game.ErrInvalidCardCount, len(cards), h.state.Config().MaxPlayCards)
	}
	if err := checkDistinct(cards); err != nil {
		return hands.Hand{}, err
	}
	if missing := h.missing(cards, game.InHand); len(missing) > 0 {
		return hands.Hand{}, fmt.Errorf("%w: [%s]", game.ErrCardNotInHand, card.FormatCards(missing))
	}

	best, ok := h.identifier.BestExact(cards)
	if !ok {
		panic("non-empty cards must form a hand")
	}
	h.mustMove(cards, h.state.Play)
	h.state.RecordPlay(best)
	h.run.RecordPlay(len(cards))

	log.Debug().Msgf("level %d played %s, score %d of %d", h.state.Level(), best, h.state.Score(), h.state.Target())
	return best, nil
}

// Discard moves cards from hand to discarded, using one discard.
func (h *Handler) Discard(cards []card.Card) error {
	if err := h.checkTurn(); err != nil {
		return err
	}
	if h.state.RemainingDiscards() == 0 {
		return fmt.Errorf("%w: used %d of %d", game.ErrNoDiscardsRemaining, h.state.DiscardsUsed(), h.state.Config().MaxDiscards)
	}
	if maxCards := h.state.Config().MaxDiscardCards; len(cards) == 0 || len(cards) > maxCards {
		return fmt.Errorf("%w: cannot discard %d cards, must be 1 to %d", game.ErrInvalidCardCount, len(cards), maxCards)
	}
	if err := checkDistinct(cards); err != nil {
		return err
	}
	if missing := h.missing(cards, game.InHand); len(missing) > 0 {
		return fmt.Errorf("%w: [%s]", game.ErrCardNotInHand, card.FormatCards(missing))
	}

	h.mustMove(cards, h.state.Discard)
	h.state.RecordDiscard(cards)
	h.run.RecordDiscard(len(cards))

	log.Debug().Msgf("level %d discarded [%s]", h.state.Level(), card.FormatCards(cards))
	return nil
}

// Recover moves the given cards from played or discarded back to available.
func (h *Handler) Recover(cards []card.Card) error {
	if err := h.checkActive(); err != nil {
		return err
	}
	if len(cards) == 0 {
		return fmt.Errorf("%w: nothing to recover", game.ErrInvalidCardCount)
	}
	if err := checkDistinct(cards); err != nil {
		return err
	}
	if missing := h.missing(cards, game.Played, game.Discarded); len(missing) > 0 {
		return fmt.Errorf("%w: [%s]", game.ErrCardNotRecoverable, card.FormatCards(missing))
	}
	h.mustMove(cards, h.state.Recover)
	log.Debug().Msgf("level %d recovered [%s]", h.state.Level(), card.FormatCards(cards))
	return nil
}

// RecoverRandom moves n cards back to available, chosen uniformly over the
// played pile followed by the discarded pile.
func (h *Handler) RecoverRandom(n int) ([]card.Card, error) {
	if err := h.checkActive(); err != nil {
		return nil, err
	}
	pool := append(h.state.Played(), h.state.Discarded()...)
	if n <= 0 || n > len(pool) {
		return nil, fmt.Errorf("%w: cannot recover %d of %d cards", game.ErrInvalidCardCount, n, len(pool))
	}
	recovered := make([]card.Card, 0, n)
	for _, i := range utils.SampleIndices(h.rng, len(pool), n) {
		recovered = append(recovered, pool[i])
	}
	h.mustMove(recovered, h.state.Recover)
	log.Debug().Msgf("level %d recovered [%s]", h.state.Level(), card.FormatCards(recovered))
	return recovered, nil
}

// Destroy removes cards from play permanently, whichever pile holds them.
func (h *Handler) Destroy(cards []card.Card) error {
	if err := h.checkActive(); err != nil {
		return err
	}
	if len(cards) == 0 {
		return fmt.Errorf("%w: nothing to destroy", game.ErrInvalidCardCount)
	}
	if err := checkDistinct(cards); err != nil {
		return err
	}
	if missing := h.missing(cards, game.Available, game.InHand, game.Discarded, game.Played); len(missing) > 0 {
		return fmt.Errorf("%w: [%s]", game.ErrCardNotFound, card.FormatCards(missing))
	}
	h.mustMove(cards, h.state.Destroy)
	log.Debug().Msgf("level %d destroyed [%s]", h.state.Level(), card.FormatCards(cards))
	return nil
}

func (h *Handler) checkActive() error {
	if h.state.IsWon() {
		return fmt.Errorf("%w: score %d of %d", game.ErrGameAlreadyWon, h.state.Score(), h.state.Target())
	}
	if h.state.IsGameOver() {
		return fmt.Errorf("%w: played %d of %d hands", game.ErrGameOver, h.state.HandsPlayed(), h.state.Config().MaxHands)
	}
	return nil
}

func (h *Handler) checkDraw(n int) error {
	if err := h.checkActive(); err != nil {
		return err
	}
	if !h.state.IsDrawPending() {
		return fmt.Errorf("%w: hand holds %d cards", game.ErrDrawNotPending, len(h.state.Hand()))
	}
	if n <= 0 {
		return fmt.Errorf("%w: cannot draw %d cards", game.ErrInvalidCardCount, n)
	}
	if available := len(h.state.Available()); n > available {
		return fmt.Errorf("%w: cannot draw %d of %d cards", game.ErrDrawExceedsAvailable, n, available)
	}
	if shortfall := h.state.RealCardsToDraw(); n > shortfall {
		return fmt.Errorf("%w: cannot draw %d cards into %d free slots", game.ErrDrawExceedsShortfall, n, shortfall)
	}
	return nil
}

// checkTurn guards plays and discards.
func (h *Handler) checkTurn() error {
	if err := h.checkActive(); err != nil {
		return err
	}
	if h.state.IsDrawPending() {
		return fmt.Errorf("%w: %d cards to draw", game.ErrDrawPending, h.state.CardsToDraw())
	}
	return nil
}

// missing returns the cards held by none of the piles.
func (h *Handler) missing(cards []card.Card, piles ...game.Pile) []card.Card {
	var out []card.Card
	for _, c := range cards {
		found := false
		at := h.state.Locate(c)
		for _, p := range piles {
			if at == p {
				found = true
				break
			}
		}
		if !found {
			out = append(out, c)
		}
	}
	return out
}

// mustMove applies a validated transition to every card.
func (h *Handler) mustMove(cards []card.Card, move func(card.Card) error) {
	for _, c := range cards {
		if err := move(c); err != nil {
			panic(fmt.Sprintf("validated move failed: %v", err))
		}
	}
}

func checkDistinct(cards []card.Card) error {
	if card.HasDuplicates(cards) {
		return fmt.Errorf("%w: duplicate cards in [%s]", game.ErrInvalidCardCount, card.FormatCards(cards))
	}
	return nil
}

func (h *Handler) Hand() []card.Card      { return h.state.Hand() }
func (h *Handler) Available() []card.Card { return h.state.Available() }
func (h *Handler) Discarded() []card.Card { return h.state.Discarded() }
func (h *Handler) Played() []card.Card    { return h.state.Played() }
func (h *Handler) Destroyed() []card.Card { return h.state.Destroyed() }
func (h *Handler) History() []game.Entry  { return h.state.History() }

func (h *Handler) Score() int64            { return h.state.Score() }
func (h *Handler) Target() int64           { return h.state.Target() }
func (h *Handler) RemainingScore() int64   { return h.state.RemainingScore() }
func (h *Handler) RemainingHands() int     { return h.state.RemainingHands() }
func (h *Handler) RemainingDiscards() int  { return h.state.RemainingDiscards() }
func (h *Handler) CardsToDraw() int        { return h.state.CardsToDraw() }
func (h *Handler) RealCardsToDraw() int    { return h.state.RealCardsToDraw() }
func (h *Handler) IsWon() bool             { return h.state.IsWon() }
func (h *Handler) IsGameOver() bool        { return h.state.IsGameOver() }
func (h *Handler) IsDrawPending() bool     { return h.state.IsDrawPending() }
func (h *Handler) Level() int              { return h.state.Level() }
func (h *Handler) Config() game.Config     { return h.state.Config() }
func (h *Handler) Hash() uint64            { return h.state.Hash() }
func (h *Handler) Snapshot() game.Snapshot { return h.state.Snapshot() }

func (h *Handler) ID() uuid.UUID { return h.state.ID() }

// Run returns the run progression the game contributes to.
func (h *Handler) Run() *game.RunState { return h.run }

func (h *Handler) Identifier() *hands.Identifier { return h.identifier }
