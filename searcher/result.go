package searcher

import (
	"math"
	"time"

	"pokerrun/card"
	"pokerrun/experiments/metrics"
	"pokerrun/hands"

	"golang.org/x/exp/slices"
)

// Outcome is one simulated replacement draw and the best hand it leads to.
type Outcome struct {
	Drawn []card.Card
	Hand  hands.Hand
	Score int64
}

// DiscardOption is a candidate discard with its simulated outcomes.
type DiscardOption struct {
	Discarded      []card.Card
	Exhaustive     bool    // Every replacement draw was evaluated
	PotentialScore float64 // Mean outcome score
	outcomes       []Outcome
}

// NewDiscardOption builds an option from outcomes given in any order.
func NewDiscardOption(discarded []card.Card, exhaustive bool, outcomes []Outcome) DiscardOption {
	o := DiscardOption{
		Discarded:  slices.Clone(discarded),
		Exhaustive: exhaustive,
		outcomes:   slices.Clone(outcomes),
	}
	o.summarize()
	return o
}

// summarize sorts outcomes by ascending score and computes the mean.
func (o *DiscardOption) summarize() {
	slices.SortStableFunc(o.outcomes, func(a, b Outcome) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		}
		return 0
	})
	if len(o.outcomes) == 0 {
		return
	}
	var sum float64
	for _, outcome := range o.outcomes {
		sum += float64(outcome.Score)
	}
	o.PotentialScore = sum / float64(len(o.outcomes))
}

// GetBestHand returns the outcome at percentile risk of the score
// distribution: 0 is the worst case, 1 the best case.
func (o DiscardOption) GetBestHand(risk float64) Outcome {
	if len(o.outcomes) == 0 {
		return Outcome{}
	}
	risk = math.Max(0, math.Min(1, risk))
	i := int(math.Round(risk * float64(len(o.outcomes)-1)))
	return o.outcomes[i]
}

// Outcomes returns the simulated outcomes, lowest score first.
func (o DiscardOption) Outcomes() []Outcome {
	return slices.Clone(o.outcomes)
}

func (o DiscardOption) Simulations() int {
	return len(o.outcomes)
}

// Result is the outcome of one simulation run.
type Result struct {
	Options          []DiscardOption // In candidate order
	Elapsed          time.Duration
	TotalSimulations int
	TotalCandidates  int
	Metric           metrics.SearchMetric
}

// GetBestDiscards orders options by their score at risk, then by mean score,
// then by fewer discarded cards.
func (r Result) GetBestDiscards(risk float64) []DiscardOption {
	type ranked struct {
		option DiscardOption
		score  int64
	}
	rs := make([]ranked, len(r.Options))
	for i, o := range r.Options {
		rs[i] = ranked{option: o, score: o.GetBestHand(risk).Score}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		switch {
		case a.score != b.score:
			if a.score > b.score {
				return -1
			}
			return 1
		case a.option.PotentialScore != b.option.PotentialScore:
			if a.option.PotentialScore > b.option.PotentialScore {
				return -1
			}
			return 1
		}
		return len(a.option.Discarded) - len(b.option.Discarded)
	})

	out := make([]DiscardOption, len(rs))
	for i, r := range rs {
		out[i] = r.option
	}
	return out
}
