// SPDX-License-Identifier: MIT

package interleave

import (
	"fmt"
	"strings"
)

// Shuffle selects which half leads the interleaving and whether the second
// half is read back to front.
//
// The encoding is two independent bits. Bit 0 marks an out-shuffle, where the
// first half leads. Bit 1 marks folding. The zero value is In.
type Shuffle uint8

const (
	// In leads with the second half: a0..a(h-1) b0..b(h-1) becomes b0 a0 b1 a1 ...
	In Shuffle = iota
	// Out leads with the first half: the first element (and, for even
	// lengths, the last) stays fixed.
	Out
	// InFolding is In applied after reversing the second half.
	InFolding
	// OutFolding is Out applied after reversing the second half.
	OutFolding
)

const (
	outBit     Shuffle = 1 << 0
	foldingBit Shuffle = 1 << 1
)

// Leading reports whether the second half supplies the first output element.
func (s Shuffle) Leading() bool { return s&outBit == 0 }

// Folding reports whether the second half is consumed in reverse.
func (s Shuffle) Folding() bool { return s&foldingBit != 0 }

// Opposite flips In and Out, keeping the folding bit.
func (s Shuffle) Opposite() Shuffle { return s ^ outBit }

// NonFolding clears the folding bit.
func (s Shuffle) NonFolding() Shuffle { return s &^ foldingBit }

// Valid reports whether s is one of the four declared shuffles.
func (s Shuffle) Valid() bool { return s <= OutFolding }

// String implements fmt.Stringer.
func (s Shuffle) String() string {
	switch s {
	case In:
		return "in"
	case Out:
		return "out"
	case InFolding:
		return "in-folding"
	case OutFolding:
		return "out-folding"
	default:
		return fmt.Sprintf("Shuffle(%d)", uint8(s))
	}
}

// Kind names an interleaving algorithm. Every kind produces the same
// permutation; they differ in cost.
//
//   - Sequence:     O(n log n) time, O(1) space, A025480 swap-and-fix.
//   - Permutation:  O(n) time, O(1) space, cycle leaders at powers of three.
//   - Recursive:    O(n log n) time, O(log n) stack, power-of-two blocks.
//   - Josephus:     O(n) time, O(1) space, J2-prime blocks and A025480 swaps.
//   - ShufflePrime: O(n) time, O(1) space, single cycle over a J2-prime block.
//   - Simple:       O(n) time, O(n) space, buffer copy; the reference result.
type Kind uint8

const (
	// Sequence is the default kind.
	Sequence Kind = iota
	Permutation
	Recursive
	Josephus
	ShufflePrime
	Simple

	kindCount = iota
)

var kindNames = [kindCount]string{
	Sequence:     "sequence",
	Permutation:  "permutation",
	Recursive:    "recursive",
	Josephus:     "josephus",
	ShufflePrime: "shuffle-prime",
	Simple:       "simple",
}

// Valid reports whether k names a known algorithm.
func (k Kind) Valid() bool { return k < kindCount }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// InPlace reports whether the kind runs without an auxiliary buffer.
func (k Kind) InPlace() bool { return k.Valid() && k != Simple }

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind maps a case-insensitive name (as printed by Kind.String) back to
// its Kind. Underscores are accepted in place of hyphens.
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for k, n := range kindNames {
		if n == norm {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
