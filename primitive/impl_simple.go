// SPDX-License-Identifier: MIT

package primitive

import (
	"slices"

	"github.com/katalvlaran/faro/kernel"
)

// halfScratchInShuffle in-shuffles an even-length v keeping only the front
// half aside. Going up from k = 0, the writes to v[2k] and v[2k+1] stay
// below v[h+k], the next back-half element still to be read.
func halfScratchInShuffle[E Scalar](v []E) {
	h := len(v) / 2
	front := slices.Clone(v[:h])
	for k := 0; k < h; k++ {
		v[2*k] = v[h+k]
		v[2*k+1] = front[k]
	}
}

// halfScratchPairInShuffle in-shuffles a∥b keeping only b aside. Going down
// from k = s-1, a[k] is read before the writes at 2k and 2k+1, and every
// later write lands above the a elements still to be read.
func halfScratchPairInShuffle[E Scalar](a, b []E) {
	back := slices.Clone(b)
	for k := len(a) - 1; k >= 0; k-- {
		front := a[k]
		*kernel.PairAt(a, b, 2*k) = back[k]
		*kernel.PairAt(a, b, 2*k+1) = front
	}
}
