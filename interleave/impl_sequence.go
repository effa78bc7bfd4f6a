// SPDX-License-Identifier: MIT

package interleave

import "github.com/katalvlaran/faro/kernel"

// sequenceInShuffle in-shuffles an even-length v with the A025480 swap
// sequence.
//
// Each round swaps the unsolved front slots with mid+A025480(i-base). That
// places the front correctly and leaves the back half in A025480 orbit order;
// the unshuffle pass repairs the first ceil(span/2) slots of it and the rest
// is a smaller interleave solved by the next round.
//
// Complexity: O(n log n) time, O(1) space.
func sequenceInShuffle[T any](v []T) {
	size := len(v)
	mid := size / 2
	for i := 0; i < size-1; {
		if i&1 == 1 {
			i++
		}
		base := i
		for ; i < mid; i++ {
			kernel.Swap(v, i, mid+kernel.A025480(i-base))
		}
		span := i - base
		cnt := biasedMid(span)
		for j := 0; j < cnt-1; j++ {
			if k := unshuffle(j, span); k != j {
				kernel.Swap(v, mid+j, mid+k)
			}
		}
		mid += cnt
	}
}

// sequencePairInShuffle is sequenceInShuffle for a∥b. The cross swaps finish
// a; b is repaired and then finished by a one-view call whose shuffle depends
// on the parity of the view length.
func sequencePairInShuffle[T any](a, b []T) {
	size := len(a)
	for i := 0; i < size; i++ {
		kernel.SwapPair(a, i, b, kernel.A025480(i))
	}
	cnt := biasedMid(size)
	for j := 0; j < cnt-1; j++ {
		if k := unshuffle(j, size); k != j {
			kernel.Swap(b, j, k)
		}
	}
	rest := In
	if size&1 == 1 {
		rest = rest.Opposite().NonFolding()
	}
	Apply(b, rest, sequenceInShuffle[T])
}

// unshuffle follows k <- A025480(size/2 + k) from j to the first k >= j,
// the slot that holds what belongs at j after the swap pass.
func unshuffle(j, size int) int {
	half := size >> 1
	k := j
	for {
		k = kernel.A025480(half + k)
		if k >= j {
			return k
		}
	}
}

// biasedMid is ceil(n/2).
func biasedMid(n int) int { return n - n>>1 }
