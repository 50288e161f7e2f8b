package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one discard simulation.
type SearchMetric struct {
	Goroutines  int
	Duration    time.Duration
	Candidates  int
	Exhaustive  int // Candidates whose replacements were all enumerated
	Simulations int
}

// DecisionMetric is one autoplay decision of a game.
type DecisionMetric struct {
	Step     int
	Play     bool
	Cards    string
	HandType string
	Score    int64
	Reason   string
	SearchMetric
}

type GameMetric struct {
	ID           string
	Seed         int64
	Level        int
	Won          bool
	Score        int64
	Target       int64
	HandsPlayed  int
	DiscardsUsed int
	WinningHand  string
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type Collector interface {
	Start(goroutines int)
	AddCandidate(exhaustive bool)
	AddSimulations(n int)
	Complete() SearchMetric
}

type collector struct {
	goroutines  int
	startTime   time.Time
	candidates  atomic.Int32
	exhaustive  atomic.Int32
	simulations atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.candidates.Store(0)
	m.exhaustive.Store(0)
	m.simulations.Store(0)
}

func (m *collector) AddCandidate(exhaustive bool) {
	m.candidates.Add(1)
	if exhaustive {
		m.exhaustive.Add(1)
	}
}

func (m *collector) AddSimulations(n int) {
	m.simulations.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Candidates:  int(m.candidates.Load()),
		Exhaustive:  int(m.exhaustive.Load()),
		Simulations: int(m.simulations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)         {}
func (m *dummyCollector) AddCandidate(exhaustive bool) {}
func (m *dummyCollector) AddSimulations(n int)         {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
