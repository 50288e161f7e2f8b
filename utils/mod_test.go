package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b"}, "b"), "Should find the item")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3), "Should return -1 for a missing item")
}

func TestCombinations(t *testing.T) {
	t.Run("enumerating in lexicographic order", func(t *testing.T) {
		var got [][]int
		Combinations(4, 2, func(ix []int) bool {
			got = append(got, append([]int(nil), ix...))
			return true
		})
		require.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got,
			"Should visit every pair once")
	})

	t.Run("stopping early", func(t *testing.T) {
		count := 0
		Combinations(10, 3, func(ix []int) bool {
			count++
			return count < 5
		})
		require.Equal(t, 5, count, "Should stop when visit returns false")
	})

	t.Run("counting matches binomial", func(t *testing.T) {
		for n := 0; n <= 8; n++ {
			for k := 0; k <= n; k++ {
				count := 0
				Combinations(n, k, func([]int) bool { count++; return true })
				require.Equal(t, Binomial(n, k), uint64(count), "C(%d,%d)", n, k)
			}
		}
	})

	t.Run("choosing items", func(t *testing.T) {
		require.Equal(t, [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}, Choose([]string{"a", "b", "c"}, 2))
		require.Empty(t, Choose([]string{"a"}, 2), "Should not choose more than available")
	})
}

func TestBinomial(t *testing.T) {
	require.Equal(t, uint64(2598960), Binomial(52, 5))
	require.Equal(t, uint64(0), Binomial(3, 4))
	require.Equal(t, uint64(1), Binomial(5, 0))
	require.Equal(t, ^uint64(0), Binomial(200, 100), "Should saturate on overflow")
}

func TestSampleIndices(t *testing.T) {
	t.Run("drawing distinct indices", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		got := SampleIndices(rng, 10, 4)
		require.Len(t, got, 4)
		seen := map[int]bool{}
		for _, i := range got {
			require.False(t, seen[i], "Indices should be distinct")
			require.True(t, i >= 0 && i < 10, "Index should be in range")
			seen[i] = true
		}
	})

	t.Run("reproducing for the same seed", func(t *testing.T) {
		a := SampleIndices(rand.New(rand.NewSource(42)), 30, 5)
		b := SampleIndices(rand.New(rand.NewSource(42)), 30, 5)
		require.Equal(t, a, b, "Same seed should sample the same indices")
	})

	t.Run("capping at n", func(t *testing.T) {
		require.Len(t, SampleIndices(rand.New(rand.NewSource(1)), 3, 5), 3)
		require.Nil(t, SampleIndices(rand.New(rand.NewSource(1)), 3, 0))
	})
}
