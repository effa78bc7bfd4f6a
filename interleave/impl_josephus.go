// SPDX-License-Identifier: MIT

package interleave

import "github.com/katalvlaran/faro/kernel"

// josephusInShuffle in-shuffles an even-length v in blocks of 2k where k is
// the largest Josephus-2 prime not above half the view. After the A025480
// swap pass the back half of a block is one single cycle, so a trailer walk
// restores it in k moves.
//
// Complexity: O(n) time, O(1) space.
func josephusInShuffle[T any](v []T) {
	for len(v) > 1 {
		size := len(v)
		if size < 4 {
			kernel.Swap(v, 0, 1)
			return
		}
		mid := size / 2
		k := kernel.FindNextLowestJ2Prime(mid)
		for i := 0; i < k; i++ {
			kernel.Swap(v, i, mid+kernel.A025480(i))
		}
		josephusTrailer(v[mid:], k)
		if k != mid {
			kernel.Rotate(v[k:k+mid], k-mid)
		}
		v = v[2*k:]
	}
}

// josephusTrailer walks the single cycle t <- A025480(k+t) over w[:k],
// shifting every element one step along it.
func josephusTrailer[T any](w []T, k int) {
	t := 0
	first := w[0]
	for step := 1; step < k; step++ {
		next := kernel.A025480(k + t)
		w[t] = w[next]
		t = next
	}
	w[t] = first
}

// josephusPairInShuffle solves a 2k block across a and b, then moves the
// leftover of a into b and finishes there.
func josephusPairInShuffle[T any](a, b []T) {
	s := len(a)
	if s == 1 {
		kernel.SwapPair(a, 0, b, 0)
		return
	}
	k := kernel.FindNextLowestJ2Prime(s)
	for i := 0; i < k; i++ {
		kernel.SwapPair(a, i, b, kernel.A025480(i))
	}
	josephusTrailer(b, k)
	if k != s {
		kernel.RotatePair(a[k:s], b[:k], k-s)
		josephusInShuffle(b[2*k-s : s])
	}
}
