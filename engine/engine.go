package engine

import (
	"fmt"
	"time"

	"pokerrun/card"
	"pokerrun/experiments/metrics"
	"pokerrun/meta"

	"github.com/rs/zerolog/log"
)

const MaxMoves = meta.MAX_TURNS

// Action is a play or a discard chosen by a player.
type Action struct {
	Play   bool
	Cards  []card.Card
	Reason string
}

func (a Action) String() string {
	verb := "discard"
	if a.Play {
		verb = "play"
	}
	return fmt.Sprintf("%s [%s]: %s", verb, card.FormatCards(a.Cards), a.Reason)
}

type Player interface {
	// NextAction picks the next play or discard and reports search metrics (if collected)
	NextAction(h *Handler) (Action, metrics.SearchMetric, error)
}

// Run plays the game of h to the end: it recycles and draws cards as needed,
// then asks p for each action. Errors from p or from an illegal action stop
// the game.
func Run(h *Handler, p Player) (metrics.GameMetric, []metrics.DecisionMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:        h.ID().String(),
		Seed:      h.Run().Seed(),
		Level:     h.Level(),
		Target:    h.Target(),
		StartTime: time.Now(),
	}
	var decisions []metrics.DecisionMetric

	log.Info().Msgf("level %d started with target %d", h.Level(), h.Target())

	step := 1
	for !h.IsGameOver() && step <= MaxMoves {
		if err := refill(h); err != nil {
			return gameMetric, decisions, err
		}

		action, searchMetric, err := p.NextAction(h)
		if err != nil {
			return gameMetric, decisions, fmt.Errorf("cannot pick action at step %d: %w", step, err)
		}

		decision := metrics.DecisionMetric{
			Step:         step,
			Play:         action.Play,
			Cards:        card.FormatCards(action.Cards),
			Reason:       action.Reason,
			SearchMetric: searchMetric,
		}
		if action.Play {
			played, err := h.PlayHand(action.Cards)
			if err != nil {
				return gameMetric, decisions, fmt.Errorf("cannot %s: %w", action, err)
			}
			decision.HandType = played.Type().String()
			decision.Score = played.Score()
			gameMetric.WinningHand = played.Type().String()
		} else if err := h.Discard(action.Cards); err != nil {
			return gameMetric, decisions, fmt.Errorf("cannot %s: %w", action, err)
		}
		decisions = append(decisions, decision)

		log.Debug().Msgf("step %d: %s", step, action)
		step++
	}

	gameMetric.Won = h.IsWon()
	if !gameMetric.Won {
		gameMetric.WinningHand = ""
	}
	gameMetric.Score = h.Score()
	gameMetric.HandsPlayed = h.Config().MaxHands - h.RemainingHands()
	gameMetric.DiscardsUsed = h.Config().MaxDiscards - h.RemainingDiscards()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step - 1

	log.Info().Msgf("level %d ended with score %d of %d (won: %t)", h.Level(), h.Score(), h.Target(), gameMetric.Won)
	return gameMetric, decisions, nil
}

// refill recovers played and discarded cards when the pool cannot fill the
// hand, then draws.
func refill(h *Handler) error {
	if h.IsGameOver() {
		return nil
	}
	short := h.RealCardsToDraw() - len(h.Available())
	recoverable := len(h.Played()) + len(h.Discarded())
	if short > 0 && recoverable > 0 {
		if _, err := h.RecoverRandom(min(short, recoverable)); err != nil {
			return fmt.Errorf("cannot recycle cards: %w", err)
		}
	}
	if h.IsDrawPending() {
		if _, err := h.DrawCards(h.CardsToDraw()); err != nil {
			return fmt.Errorf("cannot draw cards: %w", err)
		}
	}
	return nil
}
