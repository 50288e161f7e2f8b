package searcher

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"pokerrun/card"
	"pokerrun/experiments/metrics"
	"pokerrun/hands"
	"pokerrun/meta"
	"pokerrun/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

type Option func(s *Simulator)

// Simulator estimates, for every way of discarding part of a hand, the
// distribution of best-hand scores after drawing replacements.
type Simulator struct {
	identifier     *hands.Identifier
	goroutines     int
	maxSimulations int
	percentage     float64
	seed           uint64
	metrics        metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(s *Simulator) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithMaxSimulations(simulations int) Option {
	return func(s *Simulator) {
		if simulations > 0 {
			s.maxSimulations = simulations
		}
	}
}

func WithSimulationPercentage(percentage float64) Option {
	return func(s *Simulator) {
		if percentage > 0 && percentage <= 1 {
			s.percentage = percentage
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *Simulator) {
		s.seed = seed
	}
}

func WithMetrics() Option {
	return func(s *Simulator) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSimulator(identifier *hands.Identifier, options ...Option) *Simulator {
	s := &Simulator{ // Default values
		identifier:     identifier,
		goroutines:     meta.GO_ROUTINES,
		maxSimulations: meta.MAX_SIMULATIONS,
		percentage:     meta.SIMULATION_PERCENTAGE,
		metrics:        metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Request is the input of one simulation.
type Request struct {
	Hand            []card.Card
	Keep            []card.Card // Never discarded
	Available       []card.Card // Replacement pool
	MaxDiscardCards int
}

type task struct {
	index     int
	discarded []card.Card
}

// Simulate evaluates every candidate discard of the request. It never fails:
// without legal candidates the result has no options. Results depend only on
// the request and the simulator seed, not on the number of goroutines.
func (s *Simulator) Simulate(req Request) Result {
	start := time.Now()
	s.metrics.Start(s.goroutines)

	candidates := candidateDiscards(req)
	options := make([]DiscardOption, len(candidates))
	if len(candidates) > 0 {
		base := mix(s.seed, requestHash(req))
		hand := card.Canonical(req.Hand)
		pool := card.Canonical(req.Available)

		tasks := make(chan task, len(candidates))
		for i, discarded := range candidates {
			tasks <- task{index: i, discarded: discarded}
		}
		close(tasks)

		var wg sync.WaitGroup
		for i := 0; i < min(s.goroutines, len(candidates)); i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for t := range tasks {
					// Each candidate owns its slot and its random source
					rng := rand.New(rand.NewSource(mix(base, uint64(t.index))))
					options[t.index] = s.evaluate(hand, pool, t.discarded, rng)
				}
			}()
		}
		wg.Wait()
	}

	result := Result{
		Options:          options,
		Elapsed:          time.Since(start),
		TotalCandidates:  len(candidates),
		TotalSimulations: 0,
		Metric:           s.metrics.Complete(),
	}
	for _, o := range options {
		result.TotalSimulations += len(o.outcomes)
	}

	log.Debug().Msgf("simulated %d discard candidates with %d draws in %s", result.TotalCandidates, result.TotalSimulations, result.Elapsed)
	return result
}

// evaluate draws replacements for one candidate discard, exhaustively when
// the budget allows, otherwise by sampling.
func (s *Simulator) evaluate(hand, pool, discarded []card.Card, rng *rand.Rand) DiscardOption {
	kept := card.Without(hand, discarded)
	k := min(len(discarded), len(pool))
	total := utils.Binomial(len(pool), k)

	exhaustive := total <= uint64(s.maxSimulations)
	var outcomes []Outcome
	record := func(drawn []card.Card) {
		result := append(slices.Clone(kept), drawn...)
		outcome := Outcome{Drawn: drawn}
		if best, ok := s.identifier.BestExact(result); ok {
			outcome.Hand = best
			outcome.Score = best.Score()
		}
		outcomes = append(outcomes, outcome)
	}

	if exhaustive {
		utils.Combinations(len(pool), k, func(ix []int) bool {
			record(pick(pool, ix))
			return true
		})
	} else {
		for i := 0; i < sampleSize(total, s.maxSimulations, s.percentage); i++ {
			record(pick(pool, utils.SampleIndices(rng, len(pool), k)))
		}
	}

	s.metrics.AddCandidate(exhaustive)
	s.metrics.AddSimulations(len(outcomes))
	return NewDiscardOption(discarded, exhaustive, outcomes)
}

// sampleSize is min(maxSimulations, max(1, ceil(percentage * total))).
func sampleSize(total uint64, maxSimulations int, percentage float64) int {
	n := math.Ceil(percentage * float64(total))
	if n > float64(maxSimulations) {
		return maxSimulations
	}
	return max(1, int(n))
}

// candidateDiscards lists every subset of the hand of 1 to MaxDiscardCards
// cards that contains no kept card, smaller subsets first.
func candidateDiscards(req Request) [][]card.Card {
	discardable := card.Without(card.Canonical(req.Hand), req.Keep)
	var candidates [][]card.Card
	for k := 1; k <= min(req.MaxDiscardCards, len(discardable)); k++ {
		candidates = append(candidates, utils.Choose(discardable, k)...)
	}
	return candidates
}

func pick(pool []card.Card, ix []int) []card.Card {
	out := make([]card.Card, len(ix))
	for i, j := range ix {
		out[i] = pool[j]
	}
	return out
}

// requestHash fingerprints the card sets of a request independent of order.
func requestHash(req Request) uint64 {
	hasher := fnv.New64a()
	for _, cards := range [][]card.Card{req.Hand, req.Keep, req.Available} {
		cards = card.Canonical(cards)
		binary.Write(hasher, binary.LittleEndian, int64(len(cards)))
		for _, c := range cards {
			binary.Write(hasher, binary.LittleEndian, int64(c.Rank))
			binary.Write(hasher, binary.LittleEndian, int64(c.Suit))
		}
	}
	binary.Write(hasher, binary.LittleEndian, int64(req.MaxDiscardCards))
	return hasher.Sum64()
}

func mix(a, b uint64) uint64 {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, a)
	binary.Write(hasher, binary.LittleEndian, b)
	return hasher.Sum64()
}
