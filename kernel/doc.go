// Package kernel holds the numeric and in-place slice kernels shared by every
// interleaving algorithm in github.com/katalvlaran/faro/interleave.
//
// Numeric kernels:
//
//   - A025480: the OEIS A025480 swap-target sequence, n >> (ctz(^n)+1).
//   - Ilog2/Ilog3: integer floor logarithms; Ilog3 is exact for every int.
//   - Pow3: powers of three, 3⁰…3³⁹ (the first 20 fit in an int32).
//   - FastMod: Lemire's constant-time modular reduction.
//   - IsJ2Prime: the Josephus-2 prime orbit predicate (OEIS A163782).
//   - FindNextLowestJ2Prime: largest J2 prime ≤ n (table + fallback scan).
//
// Slice kernels (generic over the element type, allocation free):
//
//   - Swap / SwapPair: exchange two elements (one or two slices).
//   - Reverse: reverse a slice in place.
//   - Rotate / RotatePair: cycle-leader rotation; RotatePair treats a∥b
//     as one virtual sequence.
//
// All functions are pure or mutate only the slices handed to them; nothing
// here keeps state between calls, so the package is safe for concurrent use
// on non-overlapping slices.
package kernel
