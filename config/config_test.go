package config

import (
	"os"
	"path/filepath"
	"testing"

	"pokerrun/card"
	"pokerrun/hands"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate(), "Defaults should be valid")
	require.Equal(t, 8, c.Game.HandSize)
	require.Equal(t, card.Standard, c.Game.Universe)
	require.Len(t, c.Experiment.Seeds, 10)
	require.Equal(t, 8, c.Experiment.Levels)
	require.Len(t, c.Simulator.Options(), 3)
}

func TestLoad(t *testing.T) {
	t.Run("overriding defaults", func(t *testing.T) {
		path := writeConfig(t, `
game:
  hand_size: 7
  suits: SH
  universe:
    min_rank: 10
  level_targets: [100, 200]
hands:
  pair:
    initial_score: 12
  Full House:
    initial_multiplier: 6
ranking:
  flush: 9
simulator:
  goroutines: 2
experiment:
  seeds: [4, 5]
  levels: 2
`)
		c, err := Load(path)
		require.NoError(t, err)

		require.Equal(t, 7, c.Game.HandSize)
		require.Equal(t, 4, c.Game.MaxHands, "Missing fields should keep their defaults")
		require.Equal(t, card.Rank(10), c.Game.Universe.MinRank)
		require.Equal(t, card.Ace, c.Game.Universe.MaxRank)
		require.Equal(t, []card.Suit{card.Spades, card.Hearts}, c.Game.Universe.Suits)
		require.Equal(t, []int64{100, 200}, c.Game.LevelTargets)

		pair := c.Hands.For(hands.Pair)
		require.Equal(t, int64(12), pair.InitialScore)
		require.Equal(t, int64(2), pair.InitialMultiplier, "Partial hand entries should keep the rest")
		require.Equal(t, int64(6), c.Hands.For(hands.FullHouse).InitialMultiplier)
		require.Equal(t, 9, c.Hands.Rank(hands.Flush))
		require.Equal(t, 2, c.Hands.Rank(hands.Pair))

		require.Equal(t, 2, c.Simulator.Goroutines)
		require.Equal(t, 200, c.Simulator.MaxSimulations)
		require.Equal(t, []int64{4, 5}, c.Experiment.Seeds)
		require.Equal(t, 2, c.Experiment.Levels)
	})

	t.Run("loading an empty file", func(t *testing.T) {
		c, err := Load(writeConfig(t, ""))
		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})

	t.Run("rejecting invalid files", func(t *testing.T) {
		cases := map[string]string{
			"unknown hand":       "hands:\n  five_of_a_kind:\n    initial_score: 1\n",
			"negative score":     "hands:\n  pair:\n    initial_score: -1\n",
			"unknown suit":       "game:\n  suits: SX\n",
			"oversized discards": "game:\n  max_discard_cards: 9\n",
			"bad percentage":     "simulator:\n  simulation_percentage: 2\n",
			"no seeds":           "experiment:\n  seeds: []\n",
			"malformed":          "game: [",
		}
		for name, content := range cases {
			_, err := Load(writeConfig(t, content))
			require.ErrorIs(t, err, ErrInvalidConfig, name)
		}
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
