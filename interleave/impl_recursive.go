// SPDX-License-Identifier: MIT

package interleave

import "github.com/katalvlaran/faro/kernel"

// recursiveInShuffle in-shuffles an even-length v in power-of-two blocks.
// A block of 2k is solved by a descending fan: swap m slots against the
// A025480 pattern of the next m, fix the small scrambles left behind by
// recursing on 2j-sized windows, halve m, repeat.
//
// Complexity: O(n log n) time, O(log n) stack.
func recursiveInShuffle[T any](v []T) {
	for len(v) > 1 {
		size := len(v)
		if size < 4 {
			kernel.Swap(v, 0, 1)
			return
		}
		mid := size / 2
		k := kernel.HighestOneBit(mid)
		if k != mid {
			kernel.Rotate(v[k:k+mid], k-mid)
		}
		for base, m := 0, k; base < 2*k-1; base, m = base+m, m/2 {
			for i := 0; i < m; i++ {
				kernel.Swap(v, base+i, base+m+kernel.A025480(i))
			}
			recursiveFan(v[base+m:], m)
		}
		v = v[2*k:]
	}
}

// recursiveFan repairs the front of w after a swap pass of width m.
func recursiveFan[T any](w []T, m int) {
	for j := 1; j <= m/4; j <<= 1 {
		if j < 2 {
			kernel.Swap(w, 0, 1)
		} else {
			recursiveInShuffle(w[:2*j])
		}
	}
}

// recursivePairInShuffle solves the largest power-of-two prefix across a and
// b, then moves the leftover of a into b and finishes there.
func recursivePairInShuffle[T any](a, b []T) {
	s := len(a)
	if s == 1 {
		kernel.SwapPair(a, 0, b, 0)
		return
	}
	k := kernel.HighestOneBit(s)
	for i := 0; i < k; i++ {
		kernel.SwapPair(a, i, b, kernel.A025480(i))
	}
	recursiveFan(b, k)
	recursiveInShuffle(b[:k])
	if k != s {
		kernel.RotatePair(a[k:s], b[:k], k-s)
		recursiveInShuffle(b[2*k-s : s])
	}
}
