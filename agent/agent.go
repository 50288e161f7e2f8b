package agent

import (
	"pokerrun/engine"
	"pokerrun/experiments/metrics"
	"pokerrun/searcher"

	"github.com/rs/zerolog/log"
)

// AutoPlayer plays a game with the heuristic policy, simulating discards
// whenever discards remain.
type AutoPlayer struct {
	options   []searcher.Option
	decisions []Decision
}

// NewAutoPlayer returns a player whose simulator is built with options for
// the identifier of each game it plays.
func NewAutoPlayer(options ...searcher.Option) *AutoPlayer {
	return &AutoPlayer{options: options}
}

func (a *AutoPlayer) NextAction(h *engine.Handler) (engine.Action, metrics.SearchMetric, error) {
	hand := h.Hand()
	possible := h.Identifier().Identify(hand)

	var result searcher.Result
	if h.RemainingDiscards() > 0 && len(possible) > 0 {
		simulator := searcher.NewSimulator(h.Identifier(), a.options...)
		result = simulator.Simulate(searcher.Request{
			Hand:            hand,
			Keep:            possible[0].Cards(),
			Available:       h.Available(),
			MaxDiscardCards: h.Config().MaxDiscardCards,
		})
	}

	decision := Decide(View{
		RemainingScore:    h.RemainingScore(),
		RemainingHands:    h.RemainingHands(),
		RemainingDiscards: h.RemainingDiscards(),
	}, possible, result)
	a.decisions = append(a.decisions, decision)

	log.Debug().Msgf("level %d decided: %s", h.Level(), decision.Reason)

	action := engine.Action{Play: decision.ShouldPlay, Reason: decision.Reason}
	switch {
	case decision.HandToPlay != nil:
		action.Cards = decision.HandToPlay.Cards()
	case decision.DiscardOption != nil:
		action.Cards = decision.DiscardOption.Discarded
	}
	return action, result.Metric, nil
}

// Decisions returns every decision taken so far, oldest first.
func (a *AutoPlayer) Decisions() []Decision {
	return a.decisions
}

