// SPDX-License-Identifier: MIT

package interleave

// simpleInShuffle is the reference in-shuffle: copy, then write
// v[2k] = back[k], v[2k+1] = front[k].
//
// Complexity: O(n) time, O(n) space.
func simpleInShuffle[T any](v []T) {
	h := len(v) / 2
	buf := make([]T, 2*h)
	copy(buf, v)
	for k := 0; k < h; k++ {
		v[2*k] = buf[h+k]
		v[2*k+1] = buf[k]
	}
}

// simplePairInShuffle writes b0 a0 b1 a1 ... across a∥b.
func simplePairInShuffle[T any](a, b []T) {
	s := len(a)
	buf := make([]T, 2*s)
	for k := 0; k < s; k++ {
		buf[2*k] = b[k]
		buf[2*k+1] = a[k]
	}
	copy(a, buf[:s])
	copy(b, buf[s:])
}
