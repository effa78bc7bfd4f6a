// Package interleave_test holds helpers shared across the *_test.go files:
// the expected-result builders every algorithm is checked against and the
// size knobs that testing.Short trims.
package interleave_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/faro/interleave"
)

const (
	// denseLimit is the largest view length checked exhaustively.
	denseLimit = 2_000
	// denseLimitShort replaces denseLimit under -short.
	denseLimitShort = 300
	// sparseLimit bounds the strided sweep that follows the dense one.
	sparseLimit = 10_000
	// pairLimit bounds both lengths in the exhaustive pair sweep.
	pairLimit = 40
	// seedDet seeds every randomized payload.
	seedDet = int64(20240917)
)

// allShuffles lists the four shuffles in declaration order.
var allShuffles = []interleave.Shuffle{
	interleave.In, interleave.Out, interleave.InFolding, interleave.OutFolding,
}

// iota0 returns [0, 1, ..., n-1].
func iota0(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

// iotaFrom returns [base, base+1, ..., base+n-1].
func iotaFrom(base, n int) []int {
	v := iota0(n)
	for i := range v {
		v[i] += base
	}
	return v
}

// viewSizes returns the one-view lengths swept by the equivalence tests:
// every length up to the dense limit, then a stride up to sparseLimit.
func viewSizes(t *testing.T) []int {
	t.Helper()
	dense, stride := denseLimit, 97
	if testing.Short() {
		dense, stride = denseLimitShort, 997
	}
	sizes := iota0(dense + 1)
	for n := dense + 1; n <= sparseLimit; n += stride {
		sizes = append(sizes, n)
	}
	return append(sizes, sparseLimit-1, sparseLimit)
}

// riffle writes b0 a0 b1 a1 ... into a fresh slice.
func riffle[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	for k := range a {
		out = append(out, b[k], a[k])
	}
	return out
}

// expectOne builds the result of shuffling v with s straight from the
// definition: Out pins the first element, folding reverses the back half,
// an odd tail stays put, and the rest is b0 a0 b1 a1 ...
func expectOne[T any](v []T, s interleave.Shuffle) []T {
	out := slices.Clone(v)
	if len(out) <= 1 {
		return out
	}
	w := out
	if s == interleave.Out || s == interleave.OutFolding {
		w = w[1:]
	}
	if s == interleave.InFolding || s == interleave.OutFolding {
		slices.Reverse(w[len(w)/2:])
	}
	w = w[:len(w)/2*2]
	h := len(w) / 2
	copy(w, riffle(slices.Clone(w[:h]), slices.Clone(w[h:])))
	return out
}

// expectPair is expectOne for two views. Folding reads b from its last
// element; its surplus moves behind the m folded elements.
func expectPair[T any](a, b []T, s interleave.Shuffle) ([]T, []T) {
	ea, eb := slices.Clone(a), slices.Clone(b)
	m := min(len(a), len(b))
	if m == 0 {
		return ea, eb
	}
	if s == interleave.InFolding || s == interleave.OutFolding {
		surplus := len(eb) - m
		eb = append(slices.Clone(eb[surplus:]), eb[:surplus]...)
		slices.Reverse(eb[:m])
	}
	xa, xb := ea[:m], eb[:m]
	if s == interleave.Out || s == interleave.OutFolding {
		xa, xb = ea[1:m], eb[:m-1]
	}
	joined := riffle(slices.Clone(xa), slices.Clone(xb))
	copy(xa, joined[:len(xa)])
	copy(xb, joined[len(xa):])
	return ea, eb
}

// outOrder counts Out shuffles of an n-element deck until it is back in
// order, giving up after limit rounds.
func outOrder(t *testing.T, k interleave.Kind, n, limit int) int {
	t.Helper()
	deck := iota0(n)
	for round := 1; round <= limit; round++ {
		if err := interleave.Interleave(k, deck, interleave.Out); err != nil {
			t.Fatalf("Interleave(%v, n=%d): %v", k, n, err)
		}
		if slices.Equal(deck, iota0(n)) {
			return round
		}
	}
	return -1
}
