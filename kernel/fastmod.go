// SPDX-License-Identifier: MIT

package kernel

import (
	"math"
	"math/bits"
)

// Exact domain of FastMod (Lemire, Kaser & Kurz, "Faster Remainder by Direct
// Computation", 2019): 32-bit numerators against a 64-bit constant.
const (
	fastModMinN = math.MinInt32
	fastModMaxN = math.MaxUint32
	fastModMaxD = math.MaxInt32
)

// FastModConstant returns c = ⌊2⁶⁴/d⌋ + 1 (mod 2⁶⁴) for d > 0, the constant
// FastMod multiplies by. The extra increment for powers of two keeps the
// signed path exact.
//
// Complexity: O(1).
func FastModConstant(d int) uint64 {
	c := math.MaxUint64/uint64(d) + 1
	if d&(d-1) == 0 {
		c++
	}
	return c
}

// FastMod returns n mod d in [0, d) given c = FastModConstant(d).
//
// Contract:
//   - 0 < d ≤ math.MaxInt32;
//   - math.MinInt32 ≤ n ≤ math.MaxUint32.
//
// Negative n yield the floored (non-negative) residue, matching
// ((n % d) + d) % d.
//
// Complexity: O(1): two 64-bit multiplies and no division.
func FastMod(n int, c uint64, d int) int {
	lowbits := c * uint64(n)
	hi, _ := bits.Mul64(lowbits, uint64(d))
	r := int(hi)
	if n < 0 {
		// hi is one short of the floored residue here, except at multiples of d.
		r -= d - 1
		if r < 0 {
			r += d
		}
	}
	return r
}

// Modulus is a divisor bundled with its FastMod constant.
//
// Divisors beyond the exact FastMod domain fall back to the hardware
// remainder, so callers can use Reduce unconditionally. The zero value is not
// usable; build one with NewModulus.
type Modulus struct {
	d    int
	c    uint64
	fast bool
}

// NewModulus prepares d > 0 for repeated reductions.
func NewModulus(d int) Modulus {
	m := Modulus{d: d, fast: d <= fastModMaxD}
	if m.fast {
		m.c = FastModConstant(d)
	}
	return m
}

// Divisor returns d.
func (m Modulus) Divisor() int { return m.d }

// Reduce returns n mod d in [0, d).
func (m Modulus) Reduce(n int) int {
	if m.fast && int64(n) >= fastModMinN && int64(n) <= fastModMaxN {
		return FastMod(n, m.c, m.d)
	}
	r := n % m.d
	if r < 0 {
		r += m.d
	}
	return r
}
