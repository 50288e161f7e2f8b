package hands

import (
	"fmt"
	"math"

	"pokerrun/card"
)

// TypeConfig is the score progression of one hand type.
type TypeConfig struct {
	InitialScore       int64 `yaml:"initial_score"`
	ScorePerLevel      int64 `yaml:"score_per_level"`
	InitialMultiplier  int64 `yaml:"initial_multiplier"`
	MultiplierPerLevel int64 `yaml:"multiplier_per_level"`
}

// Config holds the per-type score progression and the ranking weight used to
// order identified hands. Missing entries fall back to DefaultConfig.
type Config struct {
	Types   map[Type]TypeConfig
	Ranking map[Type]int
}

var defaultTypes = map[Type]TypeConfig{
	HighCard:      {InitialScore: 5, ScorePerLevel: 10, InitialMultiplier: 1, MultiplierPerLevel: 1},
	Pair:          {InitialScore: 10, ScorePerLevel: 15, InitialMultiplier: 2, MultiplierPerLevel: 1},
	TwoPair:       {InitialScore: 20, ScorePerLevel: 20, InitialMultiplier: 2, MultiplierPerLevel: 1},
	ThreeOfAKind:  {InitialScore: 30, ScorePerLevel: 20, InitialMultiplier: 3, MultiplierPerLevel: 2},
	Straight:      {InitialScore: 30, ScorePerLevel: 30, InitialMultiplier: 4, MultiplierPerLevel: 3},
	Flush:         {InitialScore: 35, ScorePerLevel: 15, InitialMultiplier: 4, MultiplierPerLevel: 2},
	FullHouse:     {InitialScore: 40, ScorePerLevel: 25, InitialMultiplier: 4, MultiplierPerLevel: 2},
	FourOfAKind:   {InitialScore: 60, ScorePerLevel: 30, InitialMultiplier: 7, MultiplierPerLevel: 3},
	StraightFlush: {InitialScore: 100, ScorePerLevel: 40, InitialMultiplier: 8, MultiplierPerLevel: 4},
	RoyalFlush:    {InitialScore: 150, ScorePerLevel: 50, InitialMultiplier: 10, MultiplierPerLevel: 5},
}

// DefaultConfig returns a fresh copy of the default score tables.
func DefaultConfig() Config {
	cfg := Config{
		Types:   make(map[Type]TypeConfig, len(defaultTypes)),
		Ranking: make(map[Type]int, len(defaultTypes)),
	}
	for t, tc := range defaultTypes {
		cfg.Types[t] = tc
		cfg.Ranking[t] = t.BaseMultiplier()
	}
	return cfg
}

// For returns the progression of t.
func (c Config) For(t Type) TypeConfig {
	if tc, ok := c.Types[t]; ok {
		return tc
	}
	return defaultTypes[t]
}

// Rank returns the ranking weight of t, its base multiplier unless overridden.
func (c Config) Rank(t Type) int {
	if r, ok := c.Ranking[t]; ok {
		return r
	}
	return t.BaseMultiplier()
}

// Validate rejects negative progressions, which would break level
// monotonicity.
func (c Config) Validate() error {
	for t, tc := range c.Types {
		if !t.Valid() {
			return fmt.Errorf("cannot configure unknown hand type %d", int(t))
		}
		if tc.InitialScore < 0 || tc.ScorePerLevel < 0 || tc.InitialMultiplier < 0 || tc.MultiplierPerLevel < 0 {
			return fmt.Errorf("cannot use negative scoring for %s: %+v", t, tc)
		}
	}
	for t := range c.Ranking {
		if !t.Valid() {
			return fmt.Errorf("cannot rank unknown hand type %d", int(t))
		}
	}
	return nil
}

// Levels looks up the current level of a hand type.
type Levels interface {
	Level(t Type) int
}

// NoLevels reports level 0 for every type.
type NoLevels struct{}

func (NoLevels) Level(Type) int { return 0 }

// Score computes (base + level*perLevel + sum of ranks) * (mult + level*multPerLevel).
// Arithmetic saturates at math.MaxInt64 instead of wrapping.
func Score(tc TypeConfig, level int, cards []card.Card) int64 {
	if level < 0 {
		level = 0
	}
	l := int64(level)
	chips := satAdd(satAdd(tc.InitialScore, satMul(l, tc.ScorePerLevel)), card.SumRanks(cards))
	mult := satAdd(tc.InitialMultiplier, satMul(l, tc.MultiplierPerLevel))
	return satMul(chips, mult)
}

// ScoreHand scores h at the level its type has reached.
func (c Config) ScoreHand(h Hand, levels Levels) int64 {
	return Score(c.For(h.typ), levels.Level(h.typ), h.cards)
}

func satAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// satMul expects non-negative operands.
func satMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}
