// SPDX-License-Identifier: MIT

package kernel

import "math/bits"

// MaxPow3Exp32 is the largest k for which 3^k fits in a signed 32-bit integer
// (3¹⁹ = 1 162 261 467).
const MaxPow3Exp32 = 19

// MaxPow3Exp is the largest k accepted by Pow3 (3³⁹ fits in an int64).
const MaxPow3Exp = 39

// pow3 holds 3⁰…3³⁹. Entries 0..MaxPow3Exp32 form the classic 32-bit table
// that Ilog3 checks its estimate against.
var pow3 = [MaxPow3Exp + 1]int64{
	1, 3, 9, 27, 81, 243, 729, 2187, 6561, 19683,
	59049, 177147, 531441, 1594323, 4782969, 14348907, 43046721, 129140163, 387420489, 1162261467,
	3486784401, 10460353203, 31381059609, 94143178827, 282429536481,
	847288609443, 2541865828329, 7625597484987, 22876792454961, 68630377364883,
	205891132094649, 617673396283947, 1853020188851841, 5559060566555523, 16677181699666569,
	50031545098999707, 150094635296999121, 450283905890997363, 1350851717672992089, 4052555153018976267,
}

// Pow3 returns 3^k for 0 ≤ k ≤ MaxPow3Exp. It panics on any other k,
// which is a programmer error.
func Pow3(k int) int {
	return int(pow3[k])
}

// Ilog2 returns ⌊log₂ i⌋ for i > 0 and 0 for i ≤ 0.
//
// Complexity: O(1).
func Ilog2(i int) int {
	if i <= 0 {
		return 0
	}
	return bits.Len(uint(i)) - 1
}

// Ilog3 returns ⌊log₃ i⌋ for i > 0 and 0 for i ≤ 0.
//
// The estimate t = ((Ilog2(i)+1)·323) >> 9 uses 323/512 ≈ log₃2 and is never
// more than one too large, so a single comparison against 3^t finishes the
// job. The bound holds for every non-negative int, not only for 32-bit input.
//
// Complexity: O(1).
func Ilog3(i int) int {
	if i <= 0 {
		return 0
	}
	t := ((Ilog2(i) + 1) * 323) >> 9
	if int64(i) < pow3[t] {
		t--
	}
	return t
}
