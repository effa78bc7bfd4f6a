// SPDX-License-Identifier: MIT

package interleave

import "github.com/katalvlaran/faro/kernel"

// permutationBlock describes the largest 3^k-1 block that fits a view of
// the given size: 2m = 3^k - 1 elements are solved per round.
type permutationBlock struct {
	n   int // half of the view
	k   int // number of cycle leaders
	m   int // half of the solved block
	mod kernel.Modulus
}

func newPermutationBlock(size int) permutationBlock {
	k := kernel.Ilog3(size)
	mod := kernel.Pow3(k)
	return permutationBlock{n: size / 2, k: k, m: (mod - 1) / 2, mod: kernel.NewModulus(mod)}
}

// permutationInShuffle in-shuffles an even-length v with the cycle-leader
// algorithm of Jain: on 3^k-1 elements the in-shuffle cycles start at
// 1, 3, 9, ..., 3^(k-1) (1-based), so each cycle is walked once.
//
// Complexity: O(n) time, O(1) space.
func permutationInShuffle[T any](v []T) {
	for len(v) > 1 {
		if len(v) < 4 {
			kernel.Swap(v, 0, 1)
			return
		}
		blk := newPermutationBlock(len(v))
		if blk.m != blk.n {
			kernel.Rotate(v[blk.m:blk.m+blk.n], blk.m)
		}
		for c, start := 0, 1; c < blk.k; c, start = c+1, start*3 {
			carry, idx := v[start-1], start
			for {
				idx = blk.mod.Reduce(2 * idx)
				v[idx-1], carry = carry, v[idx-1]
				if idx == start {
					break
				}
			}
		}
		v = v[2*blk.m:]
	}
}

// permutationPairInShuffle runs the same rounds over a∥b. Each round shortens
// a by 2m; once a is used up the rest of b is a one-view problem.
func permutationPairInShuffle[T any](a, b []T) {
	for {
		na, nb := len(a), len(b)
		if na == 0 {
			permutationInShuffle(b)
			return
		}
		if na+nb == 2 {
			kernel.SwapPair(a, 0, b, 0)
			return
		}
		blk := newPermutationBlock(na + nb)
		if blk.m >= na {
			kernel.Rotate(b[blk.m-na:blk.m+blk.n-na], blk.m)
		} else {
			kernel.RotatePair(a[blk.m:], b[:blk.m+blk.n-na], blk.m)
		}
		for c, start := 0, 1; c < blk.k; c, start = c+1, start*3 {
			carry, idx := *kernel.PairAt(a, b, start-1), start
			for {
				idx = blk.mod.Reduce(2 * idx)
				p := kernel.PairAt(a, b, idx-1)
				*p, carry = carry, *p
				if idx == start {
					break
				}
			}
		}
		if na <= 2*blk.m {
			permutationInShuffle(b[2*blk.m-na:])
			return
		}
		a = a[2*blk.m:]
	}
}
