// Package faro shuffles slices in place the way a card dealer riffles a
// deck: the two halves are merged by alternating elements, with no auxiliary
// buffer.
//
// 🚀 What is faro?
//
//	A small, generic library of perfect-shuffle algorithms:
//		• In and out shuffles, plus folding variants that read the back half in reverse
//		• One view (a slice or window) or two views treated as one sequence
//		• Five allocation-free algorithms and a buffered reference
//		• Facade for untyped scalar buffers
//
// ✨ Why choose faro?
//
//   - O(1) extra space – Permutation, Josephus and ShufflePrime also run in O(n)
//   - Generic – any element type, values are only swapped and moved
//   - Checked – bounds, overlap and enum errors before anything is touched
//   - Pure Go – no cgo, no hidden state
//
// Under the hood, everything is organized under three subpackages:
//
//	interleave/ – Shuffle, Kind, the algorithms and their entry points
//	kernel/     – A025480, integer logs, fast modulo, J2 primes, rotations
//	primitive/  – untyped buffers of machine scalars with an element tag
//
// Quick example:
//
//	A B C │ X Y Z   --out-->  A X B Y C Z
//	A B C │ X Y Z   --in--->  X A Y B Z C
//
//	go get github.com/katalvlaran/faro
package faro
