// Package interleave_test: benchmarks for every algorithm kind.
// Scope:
//   - One view of a power of two, a 3^k-1 block and an awkward length.
//   - Two equal views.
//
// Policy:
//   - Inputs are built outside the timer; each iteration shuffles the same
//     buffer again, which is as good an input as a fresh one.
package interleave_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/faro/interleave"
)

var benchSizes = []int{1 << 10, 6_560, 1 << 16, 1_000_003}

func BenchmarkInterleave(b *testing.B) {
	for _, k := range interleave.Kinds() {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%v/n=%d", k, n), func(b *testing.B) {
				v := iota0(n)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_ = interleave.Interleave(k, v, interleave.In)
				}
			})
		}
	}
}

func BenchmarkInterleavePair(b *testing.B) {
	const half = 1 << 15
	for _, k := range interleave.Kinds() {
		b.Run(k.String(), func(b *testing.B) {
			x, y := iota0(half), iotaFrom(half, half)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = interleave.InterleavePair(k, x, y, interleave.Out)
			}
		})
	}
}
