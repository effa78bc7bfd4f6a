// Package interleave performs in-place Faro (riffle) shuffles of Go slices.
//
// 🚀 What is an interleave?
//
//	Split a sequence in two halves a0..a(h-1) and b0..b(h-1) and merge them
//	by alternating elements:
//	  • in-shuffle  (In):  b0 a0 b1 a1 ... b(h-1) a(h-1)
//	  • out-shuffle (Out): a0 b0 a1 b1 ... a(h-1) b(h-1)
//	Folding variants (InFolding, OutFolding) read the second half from the
//	back, pairing the front of the deck with its end.
//
// ✨ Key features:
//   - five allocation-free algorithms with different cost profiles
//   - one view (a slice or a window of it) or two views treated as a∥b
//   - unequal pair lengths: min(len(a), len(b)) pairs, the surplus stays put
//   - Simple, a buffered reference that every other kind must agree with
//   - generic over any element type
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/faro/interleave"
//
//	deck := []string{"A", "B", "C", "X", "Y", "Z"}
//	_ = interleave.Interleave(interleave.Josephus, deck, interleave.Out)
//	// deck == [A X B Y C Z]
//
//	it := interleave.New[int](interleave.WithKind(interleave.Permutation))
//	it.Interleave(values)
//
// Algorithms:
//
//	Sequence      O(n log n)  O(1)      A025480 swaps plus an unshuffle repair
//	Permutation   O(n)        O(1)      cycle leaders on 3^k-1 blocks
//	Recursive     O(n log n)  O(log n)  power-of-two blocks, recursive fan
//	Josephus      O(n)        O(1)      J2-prime blocks, single trailer cycle
//	ShufflePrime  O(n)        O(1)      J2-prime blocks, single (2i+1) cycle
//	Simple        O(n)        O(n)      copy and write back
//
// Odd lengths:
//
//	An odd trailing element never moves. [1 2 3 4 a b c] In gives
//	[4 1 a 2 b 3 c]; [1 2 3 a b c d] Out gives [1 b 2 c 3 d a].
//
// Errors:
//
//	Every entry point validates first and mutates only on success.
//	  – ErrUnknownKind / ErrUnknownShuffle for values outside the enums.
//	  – *BoundsError (errors.Is ErrOutOfRange) for a bad window.
//	  – ErrOverlap when the two windows of a pair share elements.
//
// Concurrency:
//
//	No package state. Calls on disjoint slices may run in parallel.
//
// See example_test.go for runnable examples.
package interleave
