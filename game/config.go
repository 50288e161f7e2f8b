package game

import (
	"fmt"

	"pokerrun/card"
	"pokerrun/meta"

	"golang.org/x/exp/slices"
)

// Config is the immutable configuration of a poker game.
type Config struct {
	HandSize        int           `yaml:"hand_size"`
	MaxHands        int           `yaml:"max_hands"`
	MaxDiscards     int           `yaml:"max_discards"`
	MaxDiscardCards int           `yaml:"max_discard_cards"`
	MaxPlayCards    int           `yaml:"max_play_cards"`
	Universe        card.Universe `yaml:"universe"`
	LevelTargets    []int64       `yaml:"level_targets"`
}

func DefaultConfig() Config {
	return Config{
		HandSize:        meta.HAND_SIZE,
		MaxHands:        meta.MAX_HANDS,
		MaxDiscards:     meta.MAX_DISCARDS,
		MaxDiscardCards: meta.MAX_DISCARD_CARDS,
		MaxPlayCards:    meta.MAX_PLAY_CARDS,
		Universe:        card.Standard,
		LevelTargets:    slices.Clone(meta.LEVEL_TARGETS),
	}
}

func (c Config) Validate() error {
	if c.HandSize < 1 {
		return fmt.Errorf("%w: hand size %d", ErrInvalidConfig, c.HandSize)
	}
	if c.MaxHands < 1 {
		return fmt.Errorf("%w: max hands %d", ErrInvalidConfig, c.MaxHands)
	}
	if c.MaxDiscards < 0 {
		return fmt.Errorf("%w: max discards %d", ErrInvalidConfig, c.MaxDiscards)
	}
	if c.MaxDiscardCards < 1 || c.MaxDiscardCards > c.HandSize {
		return fmt.Errorf("%w: max discard cards %d with hand size %d", ErrInvalidConfig, c.MaxDiscardCards, c.HandSize)
	}
	if c.MaxPlayCards < 1 || c.MaxPlayCards > c.HandSize {
		return fmt.Errorf("%w: max play cards %d with hand size %d", ErrInvalidConfig, c.MaxPlayCards, c.HandSize)
	}
	if err := c.Universe.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(c.LevelTargets) == 0 {
		return fmt.Errorf("%w: no level targets", ErrInvalidConfig)
	}
	for i, target := range c.LevelTargets {
		if target <= 0 || (i > 0 && target < c.LevelTargets[i-1]) {
			return fmt.Errorf("%w: level targets must be positive and non-decreasing: %v", ErrInvalidConfig, c.LevelTargets)
		}
	}
	return nil
}

// ScoreTarget returns the score needed to win level, counted from 1. Levels
// past the end of the table reuse its last entry.
func (c Config) ScoreTarget(level int) int64 {
	if len(c.LevelTargets) == 0 {
		return 0
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(c.LevelTargets) {
		i = len(c.LevelTargets) - 1
	}
	return c.LevelTargets[i]
}
