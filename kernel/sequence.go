// SPDX-License-Identifier: MIT

package kernel

import "math/bits"

// A025480 returns the n-th term of OEIS A025480 (0,0,1,0,2,1,3,0,4,2,…).
//
// The value is n shifted right just past its lowest clear bit. Swapping
// position i with mid+A025480(i) for i = 0,1,2,… places the front half of an
// in-shuffle correctly and leaves the back half in a predictable scramble
// that the interleavers undo afterwards.
//
// n must be non-negative.
//
// Complexity: O(1).
func A025480(n int) int {
	return n >> (bits.TrailingZeros(^uint(n)) + 1)
}

// HighestOneBit returns the largest power of two ≤ i, or 0 when i ≤ 0.
func HighestOneBit(i int) int {
	if i <= 0 {
		return 0
	}
	return 1 << (bits.Len(uint(i)) - 1)
}
