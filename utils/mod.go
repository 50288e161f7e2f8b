package utils

import (
	"math"

	"golang.org/x/exp/rand"
)

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Combinations calls visit with every k-sized index combination of 0..n-1 in
// lexicographic order. The slice is reused between calls; visit returns false
// to stop early.
func Combinations(n, k int, visit func(ix []int) bool) {
	if k < 0 || k > n {
		return
	}
	ix := make([]int, k)
	for i := range ix {
		ix[i] = i
	}
	for {
		if !visit(ix) {
			return
		}
		// Advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && ix[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		ix[i]++
		for j := i + 1; j < k; j++ {
			ix[j] = ix[j-1] + 1
		}
	}
}

// Choose returns every k-sized combination of items, preserving item order.
func Choose[T any](items []T, k int) [][]T {
	var out [][]T
	Combinations(len(items), k, func(ix []int) bool {
		combo := make([]T, k)
		for i, j := range ix {
			combo[i] = items[j]
		}
		out = append(out, combo)
		return true
	})
	return out
}

// Binomial returns n choose k, saturating at math.MaxUint64.
func Binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := uint64(1)
	for i := 1; i <= k; i++ {
		// result * (n-k+i) / i stays integral at every step
		num := uint64(n - k + i)
		if result > math.MaxUint64/num {
			return math.MaxUint64
		}
		result = result * num / uint64(i)
	}
	return result
}

// SampleIndices draws k distinct indices from 0..n-1 with a partial
// Fisher-Yates shuffle. The result depends only on the rng state, n and k.
func SampleIndices(rng *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
