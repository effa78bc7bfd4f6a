// SPDX-License-Identifier: MIT

package interleave

import "github.com/katalvlaran/faro/kernel"

// shufflePrimeInShuffle in-shuffles an even-length v in blocks of P = 2h
// where h is a Josephus-2 prime. P+1 is then a prime with 2 as primitive
// root, so i <- (2i+1) mod (P+1) is one cycle through every slot of the
// block and a single carried value completes it.
//
// Complexity: O(n) time, O(1) space.
func shufflePrimeInShuffle[T any](v []T) {
	for len(v) > 1 {
		size := len(v)
		if size < 4 {
			kernel.Swap(v, 0, 1)
			return
		}
		mid := size / 2
		h := kernel.FindNextLowestJ2Prime(mid)
		k := 2 * h
		if k != size {
			kernel.Rotate(v[h:h+mid], h-mid)
		}
		mod := kernel.NewModulus(k + 1)
		carry, idx := v[0], 0
		for step := 0; step < k; step++ {
			idx = mod.Reduce(2*idx + 1)
			v[idx], carry = carry, v[idx]
		}
		v = v[k:]
	}
}

// shufflePrimePairInShuffle moves the part of a beyond the block into b,
// finishes that tail, then runs the single cycle across a∥b.
func shufflePrimePairInShuffle[T any](a, b []T) {
	s := len(a)
	if s == 1 {
		kernel.SwapPair(a, 0, b, 0)
		return
	}
	h := kernel.FindNextLowestJ2Prime(s)
	k := 2 * h
	if h != s {
		kernel.RotatePair(a[h:s], b[:h], h)
		shufflePrimeInShuffle(b[k-s : s])
	}
	mod := kernel.NewModulus(k + 1)
	carry, idx := a[0], 0
	for step := 0; step < k; step++ {
		idx = mod.Reduce(2*idx + 1)
		p := kernel.PairAt(a, b, idx)
		*p, carry = carry, *p
	}
}
