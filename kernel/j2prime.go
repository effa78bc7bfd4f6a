// SPDX-License-Identifier: MIT

package kernel

import (
	"math/bits"
	"sort"
)

// j2Primes caches the first 128 Josephus-2 primes (OEIS A163782).
// The predicate IsJ2Prime remains the definition; the table only saves work.
var j2Primes = [...]int{
	2, 5, 6, 9, 14, 18, 26, 29, 30, 33, 41, 50, 53, 65, 69, 74,
	81, 86, 89, 90, 98, 105, 113, 134, 146, 158, 173, 174, 186, 189, 194, 209,
	210, 221, 230, 233, 245, 254, 261, 270, 273, 278, 281, 293, 306, 309, 326, 329,
	330, 338, 350, 354, 378, 386, 393, 398, 410, 413, 414, 426, 429, 438, 441, 453,
	470, 473, 509, 530, 545, 554, 558, 561, 585, 593, 606, 614, 618, 629, 638, 641,
	645, 650, 653, 686, 690, 713, 725, 726, 741, 746, 749, 761, 765, 774, 785, 809,
	810, 818, 833, 834, 846, 866, 870, 873, 893, 930, 933, 938, 950, 953, 965, 974,
	986, 989, 993, 998, 1013, 1014, 1026, 1034, 1041, 1049, 1065, 1070, 1106, 1110, 1118, 1121,
}

// J2PrimeTable returns a copy of the cached Josephus-2 prime prefix.
func J2PrimeTable() []int {
	out := make([]int, len(j2Primes))
	copy(out, j2Primes[:])
	return out
}

// IsJ2Prime reports whether n is a Josephus-2 prime: n mod 4 ∈ {1, 2} and the
// orbit x ← A025480(x+n), started at 0, returns to 0 after exactly n steps.
//
// Equivalently 2n+1 is prime and 2 is a primitive root modulo 2n+1, which is
// what makes a single cycle-leader walk cover a whole block of 2n elements.
// The sequence starts at 2; n < 2 is never a J2 prime.
//
// Complexity: O(n) in the worst case (one full orbit).
func IsJ2Prime(n int) bool {
	if n < 2 {
		return false
	}
	if r := n & 3; r != 1 && r != 2 {
		return false
	}
	x, steps := 0, 0
	for {
		x = A025480(x + n)
		steps++
		if x == 0 {
			return steps == n
		}
		if steps >= n {
			return false
		}
	}
}

// FindNextLowestJ2Prime returns the largest Josephus-2 prime ≤ n, or 0 when
// there is none (n < 2).
//
// Values inside the cached prefix are answered by binary search. Above it the
// scan walks down from n and tests each candidate with the number-theoretic
// form of the predicate (trial-division primality of 2n+1 and the primitive
// root test for 2), which agrees with IsJ2Prime but costs O(√n) instead of
// O(n) per candidate.
func FindNextLowestJ2Prime(n int) int {
	if n < 2 {
		return 0
	}
	if last := j2Primes[len(j2Primes)-1]; n <= last {
		i := sort.SearchInts(j2Primes[:], n+1)
		return j2Primes[i-1]
	}
	for ; n > j2Primes[len(j2Primes)-1]; n-- {
		if isJ2PrimeArith(n) {
			return n
		}
	}
	return j2Primes[len(j2Primes)-1]
}

// isJ2PrimeArith is the arithmetic form of IsJ2Prime.
func isJ2PrimeArith(n int) bool {
	if n < 2 {
		return false
	}
	if r := n & 3; r != 1 && r != 2 {
		return false
	}
	p := uint64(2*n + 1)
	if !isPrime(p) {
		return false
	}
	// 2 is a primitive root mod p iff 2^((p-1)/q) ≠ 1 for every prime q | p-1.
	m := p - 1
	for q := uint64(2); q*q <= m; q++ {
		if m%q != 0 {
			continue
		}
		if powMod(2, (p-1)/q, p) == 1 {
			return false
		}
		for m%q == 0 {
			m /= q
		}
	}
	if m > 1 && powMod(2, (p-1)/m, p) == 1 {
		return false
	}
	return true
}

// isPrime is a trial-division primality test.
func isPrime(p uint64) bool {
	if p < 2 {
		return false
	}
	if p%2 == 0 {
		return p == 2
	}
	if p%3 == 0 {
		return p == 3
	}
	for d := uint64(5); d*d <= p; d += 6 {
		if p%d == 0 || p%(d+2) == 0 {
			return false
		}
	}
	return true
}

// powMod returns b^e mod m without overflowing 64 bits.
func powMod(b, e, m uint64) uint64 {
	r := uint64(1) % m
	b %= m
	for e > 0 {
		if e&1 == 1 {
			r = mulMod(r, b, m)
		}
		b = mulMod(b, b, m)
		e >>= 1
	}
	return r
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
