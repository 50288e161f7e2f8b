package agent

import (
	"fmt"
	"math"

	"pokerrun/hands"
	"pokerrun/searcher"
)

const (
	MinRisk = 0.4
	MaxRisk = 0.9

	// A discard must promise this much more than the current hand
	DiscardGain = 1.3
)

// View is the part of a game the policy reads.
type View struct {
	RemainingScore    int64
	RemainingHands    int
	RemainingDiscards int
}

// Decision is the policy output. HandToPlay is set when ShouldPlay, otherwise
// DiscardOption is.
type Decision struct {
	ShouldPlay     bool
	Reason         string
	HandToPlay     *hands.Hand
	DiscardOption  *searcher.DiscardOption
	Risk           float64
	PossibleHands  []hands.Hand
	DiscardOptions []searcher.DiscardOption
}

// CalculateDynamicRisk grows from MinRisk towards MaxRisk as discards become
// scarce relative to the hands left.
func CalculateDynamicRisk(remainingHands, remainingDiscards int) float64 {
	if remainingHands <= 0 || remainingDiscards >= remainingHands {
		return MinRisk
	}
	risk := MinRisk + 0.5*(1-float64(remainingDiscards)/float64(remainingHands))
	return math.Max(MinRisk, math.Min(MaxRisk, risk))
}

// Decide picks between playing the best possible hand and the best discard.
// possibleHands is the ranked hand list of the current hand, best first.
// The first matching rule wins.
func Decide(view View, possibleHands []hands.Hand, result searcher.Result) Decision {
	possible := collapseHighCards(possibleHands)
	risk := CalculateDynamicRisk(view.RemainingHands, view.RemainingDiscards)
	options := result.GetBestDiscards(risk)
	d := Decision{
		Risk:           risk,
		PossibleHands:  possible,
		DiscardOptions: options,
	}

	if len(possible) == 0 {
		d.ShouldPlay = true
		d.Reason = "no playable hand"
		return d
	}
	current := possible[0]
	score := current.Score()

	play := func(reason string, args ...any) Decision {
		d.ShouldPlay = true
		d.HandToPlay = &current
		d.Reason = fmt.Sprintf(reason, args...)
		return d
	}
	discard := func(option *searcher.DiscardOption, reason string, args ...any) Decision {
		d.DiscardOption = option
		d.Reason = fmt.Sprintf(reason, args...)
		return d
	}

	if score >= view.RemainingScore {
		return play("play to win: %s scores %d of %d needed", current.Name(), score, view.RemainingScore)
	}

	if view.RemainingDiscards == 0 {
		if view.RemainingHands <= 1 {
			return play("no discards left, losing: %s scores %d of %d needed", current.Name(), score, view.RemainingScore)
		}
		return play("no discards left: %s scores %d", current.Name(), score)
	}

	var minimumScoreNeeded int64
	if view.RemainingHands > 0 {
		minimumScoreNeeded = ceilDiv(view.RemainingScore, int64(view.RemainingHands))
	}
	bestDiscard := pickDiscard(options, current.Type(), risk)

	if view.RemainingHands == 1 && bestDiscard != nil {
		return discard(bestDiscard, "last hand is short: %s scores %d of %d needed, discard for %s",
			current.Name(), score, view.RemainingScore, bestDiscard.GetBestHand(risk).Hand.Name())
	}

	if float64(score) < float64(minimumScoreNeeded)/2 && bestDiscard != nil {
		return discard(bestDiscard, "score too low: %s scores %d, under half of %d needed per hand, discard regardless of risk",
			current.Name(), score, minimumScoreNeeded)
	}

	if score >= minimumScoreNeeded {
		return play("meets requirement: %s scores %d of %d needed per hand", current.Name(), score, minimumScoreNeeded)
	}

	if bestDiscard == nil {
		return play("no better discard: %s scores %d", current.Name(), score)
	}

	potential := bestDiscard.GetBestHand(risk).Score
	if float64(potential) >= DiscardGain*float64(score) {
		return discard(bestDiscard, "discard at risk %.2f: potential %d beats %s at %d",
			risk, potential, current.Name(), score)
	}
	return play("discard not worth it at risk %.2f: potential %d against %s at %d",
		risk, potential, current.Name(), score)
}

// pickDiscard returns the best ranked option leading to a different hand type
// than the current one.
func pickDiscard(options []searcher.DiscardOption, current hands.Type, risk float64) *searcher.DiscardOption {
	for i := range options {
		outcome := options[i].GetBestHand(risk)
		if outcome.Hand.IsZero() || outcome.Hand.Type() == current {
			continue
		}
		return &options[i]
	}
	return nil
}

// collapseHighCards keeps only the best high card of a ranked hand list.
func collapseHighCards(ranked []hands.Hand) []hands.Hand {
	out := make([]hands.Hand, 0, len(ranked))
	seen := false
	for _, h := range ranked {
		if h.Type() == hands.HighCard {
			if seen {
				continue
			}
			seen = true
		}
		out = append(out, h)
	}
	return out
}

func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
