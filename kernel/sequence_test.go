package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/faro/kernel"
)

// oeisA025480 evaluates A025480 from its recurrence a(2n)=n, a(2n+1)=a(n).
func oeisA025480(n int) int {
	for n&1 == 1 {
		n >>= 1
	}
	return n >> 1
}

func TestA025480_Prefix(t *testing.T) {
	want := []int{0, 0, 1, 0, 2, 1, 3, 0, 4, 2, 5, 1, 6, 3, 7, 0, 8, 4, 9, 2}
	for i, w := range want {
		assert.Equal(t, w, kernel.A025480(i), "a(%d)", i)
	}
}

func TestA025480_MatchesRecurrence(t *testing.T) {
	for i := 0; i <= 1_000_000; i++ {
		if got, want := kernel.A025480(i), oeisA025480(i); got != want {
			require.Failf(t, "A025480 mismatch", "a(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestHighestOneBit(t *testing.T) {
	cases := map[int]int{-3: 0, 0: 0, 1: 1, 2: 2, 3: 2, 5: 4, 8: 8, 1023: 512, 1024: 1024}
	for in, want := range cases {
		assert.Equal(t, want, kernel.HighestOneBit(in), "HighestOneBit(%d)", in)
	}
}
