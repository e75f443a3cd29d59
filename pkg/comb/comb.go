// Package comb enumerates k-element combinations of index sets.
//
// Combinations are produced in lexicographic order of their index lists, the
// same order as Python's itertools.combinations or a textbook nested loop:
//
//	[0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
//
// [Combinations] is lazy and suits spaces far too large to hold in memory.
package comb

import (
	"iter"
	"math"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Binomial returns C(n, k), the number of k-element subsets of an n-element set.
// It returns 0 when k < 0 or k > n.
//
// Binomial saturates at math.MaxInt instead of overflowing; C(256, 16) and
// similar grid-sized values are far beyond 64 bits.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	result := 1
	for i := 1; i <= k; i++ {
		// result * (n-k+i) / i is exact at every step; check the multiply first.
		f := n - k + i
		if result > math.MaxInt/f {
			return math.MaxInt
		}
		result = result * f / i
	}
	return result
}

// Combinations yields every k-element combination of [0, n) in lexicographic order.
//
// The yielded slice is reused between iterations; clone it to keep it.
// Edge cases:
//   - k = 0: yields one empty combination
//   - k > n or k < 0: yields nothing
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}
		idx := Seq(k)
		for {
			if !yield(idx) {
				return
			}
			// Find the rightmost index that can still advance.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
