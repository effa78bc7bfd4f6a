// SPDX-License-Identifier: MIT

package interleave

import "github.com/katalvlaran/faro/kernel"

// InShuffler performs a plain in-shuffle of v. Apply only ever hands it a
// view of even length >= 2.
type InShuffler[T any] func(v []T)

// PairInShuffler performs a plain in-shuffle of the virtual sequence a∥b.
// ApplyPair only ever hands it views of equal, non-zero length.
type PairInShuffler[T any] func(a, b []T)

// Apply reduces any Shuffle on a single view to a plain in-shuffle and runs
// core on the reduced view.
//
// Steps:
//  1. Out drops the first element, which therefore stays put.
//  2. Folding reverses the back half of what is left.
//  3. An odd trailing element is cut off and stays put.
//
// The shuffle is not validated here; callers go through the package entry
// points or check it themselves.
func Apply[T any](v []T, s Shuffle, core InShuffler[T]) {
	if len(v) <= 1 {
		return
	}
	if !s.Leading() {
		v = v[1:]
	}
	if s.Folding() {
		kernel.Reverse(v[len(v)/2:])
	}
	if v = v[:len(v)&^1]; len(v) > 1 {
		core(v)
	}
}

// ApplyPair is Apply for two views. Only the first m = min(len(a), len(b))
// elements of each take part; the surplus of the longer view keeps its place.
//
// Folding reverses the m front elements of b after rotating the surplus of b
// (if any) out of the way, so b is read from its last element inwards. Out
// pins a[0] and b[m-1] and shuffles the m-1 pairs between them.
func ApplyPair[T any](a, b []T, s Shuffle, core PairInShuffler[T]) {
	m := min(len(a), len(b))
	if m == 0 {
		return
	}
	if s.Folding() {
		kernel.Rotate(b, m-len(b))
		kernel.Reverse(b[:m])
	}
	if s.Leading() {
		core(a[:m], b[:m])
		return
	}
	if m > 1 {
		core(a[1:m], b[:m-1])
	}
}
