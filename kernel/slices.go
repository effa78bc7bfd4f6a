// SPDX-License-Identifier: MIT

package kernel

import "slices"

// Swap exchanges v[i] and v[j].
func Swap[T any](v []T, i, j int) {
	v[i], v[j] = v[j], v[i]
}

// SwapPair exchanges a[i] and b[j].
func SwapPair[T any](a []T, i int, b []T, j int) {
	a[i], b[j] = b[j], a[i]
}

// Reverse reverses v in place.
func Reverse[T any](v []T) {
	slices.Reverse(v)
}

// GCD returns the greatest common divisor of two non-negative integers.
func GCD(a, b int) int {
	for b > 0 {
		a, b = b, a%b
	}
	return a
}

// Rotate cyclically shifts v by d positions: positive d rotates right,
// negative d rotates left. |d| may exceed len(v).
//
// Implementation: cycle leader. The gcd(n, d) cycles of the rotation
// permutation are walked once each, carrying one element, so every element is
// written exactly once.
//
// Complexity: O(n) time, O(1) space.
func Rotate[T any](v []T, d int) {
	n := len(v)
	if d = normDistance(d, n); d == 0 {
		return
	}
	sets := GCD(n, d)
	for i := 0; i < sets; i++ {
		carry := v[i]
		j := i
		for {
			j += d
			if j >= n {
				j -= n
			}
			v[j], carry = carry, v[j]
			if j == i {
				break
			}
		}
	}
}

// RotatePair rotates the virtual sequence a∥b by d positions (positive d
// rotates right). Elements leaving the end of a enter the front of b and
// elements leaving the end of b enter the front of a.
//
// Complexity: O(len(a)+len(b)) time, O(1) space.
func RotatePair[T any](a, b []T, d int) {
	na := len(a)
	n := na + len(b)
	if d = normDistance(d, n); d == 0 {
		return
	}
	sets := GCD(n, d)
	for i := 0; i < sets; i++ {
		carry := *PairAt(a, b, i)
		j := i
		for {
			j += d
			if j >= n {
				j -= n
			}
			p := PairAt(a, b, j)
			*p, carry = carry, *p
			if j == i {
				break
			}
		}
	}
}

// normDistance folds d into [0, n); it returns 0 when nothing moves.
func normDistance(d, n int) int {
	if n < 2 {
		return 0
	}
	d %= n
	if d < 0 {
		d += n
	}
	return d
}

// PairAt addresses position i of the virtual sequence a∥b; it is how the
// two-view algorithms route an index to one slice or the other.
func PairAt[T any](a, b []T, i int) *T {
	if i < len(a) {
		return &a[i]
	}
	return &b[i-len(a)]
}
