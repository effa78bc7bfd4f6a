// SPDX-License-Identifier: MIT

package primitive

import (
	"fmt"

	"github.com/katalvlaran/faro/interleave"
)

// Interleave shuffles all of buf in place. elem must describe buf.
func Interleave(k interleave.Kind, buf any, elem Elem, s interleave.Shuffle) error {
	n, err := lenOf("Interleave", buf, elem)
	if err != nil {
		return err
	}
	return table[elem].one(k, buf, 0, n, s)
}

// InterleaveRange shuffles buf[from:to] in place.
func InterleaveRange(k interleave.Kind, buf any, elem Elem, from, to int, s interleave.Shuffle) error {
	if _, err := lenOf("InterleaveRange", buf, elem); err != nil {
		return err
	}
	return table[elem].one(k, buf, from, to, s)
}

// InterleavePair shuffles a∥b in place. Both buffers must hold elem.
func InterleavePair(k interleave.Kind, a, b any, elem Elem, s interleave.Shuffle) error {
	na, err := lenOf("InterleavePair", a, elem)
	if err != nil {
		return err
	}
	nb, err := lenOf("InterleavePair", b, elem)
	if err != nil {
		return err
	}
	return table[elem].pair(k, a, 0, na, b, 0, nb, s)
}

// InterleavePairRange shuffles a[fromA:toA]∥b[fromB:toB] in place.
func InterleavePairRange(k interleave.Kind, a any, fromA, toA int, b any, fromB, toB int, elem Elem, s interleave.Shuffle) error {
	if _, err := lenOf("InterleavePairRange", a, elem); err != nil {
		return err
	}
	if _, err := lenOf("InterleavePairRange", b, elem); err != nil {
		return err
	}
	return table[elem].pair(k, a, fromA, toA, b, fromB, toB, s)
}

// lenOf checks that buf is a supported slice described by elem and returns
// its length.
func lenOf(tag string, buf any, elem Elem) (int, error) {
	got, err := ElemOf(buf)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", tag, err)
	}
	if got != elem {
		return 0, fmt.Errorf("%s: %w: buffer holds %v, tag says %v", tag, ErrElemMismatch, got, elem)
	}
	return table[elem].length(buf), nil
}

// ops binds the untyped entry points to one element type.
type ops struct {
	length func(buf any) int
	one    func(k interleave.Kind, buf any, from, to int, s interleave.Shuffle) error
	pair   func(k interleave.Kind, a any, fromA, toA int, b any, fromB, toB int, s interleave.Shuffle) error
}

func opsFor[E Scalar]() ops {
	return ops{
		length: func(buf any) int { return len(buf.([]E)) },
		one: func(k interleave.Kind, buf any, from, to int, s interleave.Shuffle) error {
			return interleaveRange(k, buf.([]E), from, to, s)
		},
		pair: func(k interleave.Kind, a any, fromA, toA int, b any, fromB, toB int, s interleave.Shuffle) error {
			return interleavePairRange(k, a.([]E), fromA, toA, b.([]E), fromB, toB, s)
		},
	}
}

var table = [elemEnd]ops{
	Bool:       opsFor[bool](),
	Int:        opsFor[int](),
	Int8:       opsFor[int8](),
	Int16:      opsFor[int16](),
	Int32:      opsFor[int32](),
	Int64:      opsFor[int64](),
	Uint:       opsFor[uint](),
	Uint8:      opsFor[uint8](),
	Uint16:     opsFor[uint16](),
	Uint32:     opsFor[uint32](),
	Uint64:     opsFor[uint64](),
	Uintptr:    opsFor[uintptr](),
	Float32:    opsFor[float32](),
	Float64:    opsFor[float64](),
	Complex64:  opsFor[complex64](),
	Complex128: opsFor[complex128](),
}

// interleaveRange sends every kind but Simple to the generic layer; Simple
// runs on a half-size scratch buffer.
func interleaveRange[E Scalar](k interleave.Kind, v []E, from, to int, s interleave.Shuffle) error {
	if k != interleave.Simple {
		return interleave.InterleaveRange(k, v, from, to, s)
	}
	if err := interleave.ValidateShuffle(s); err != nil {
		return fmt.Errorf("InterleaveRange: %w", err)
	}
	if err := interleave.ValidateRange("v", len(v), from, to); err != nil {
		return fmt.Errorf("InterleaveRange: %w", err)
	}
	interleave.Apply(v[from:to], s, halfScratchInShuffle[E])
	return nil
}

func interleavePairRange[E Scalar](k interleave.Kind, a []E, fromA, toA int, b []E, fromB, toB int, s interleave.Shuffle) error {
	if k != interleave.Simple {
		return interleave.InterleavePairRange(k, a, fromA, toA, b, fromB, toB, s)
	}
	if err := interleave.ValidateShuffle(s); err != nil {
		return fmt.Errorf("InterleavePairRange: %w", err)
	}
	if err := interleave.ValidateRange("a", len(a), fromA, toA); err != nil {
		return fmt.Errorf("InterleavePairRange: %w", err)
	}
	if err := interleave.ValidateRange("b", len(b), fromB, toB); err != nil {
		return fmt.Errorf("InterleavePairRange: %w", err)
	}
	va, vb := a[fromA:toA], b[fromB:toB]
	if err := interleave.ValidateDisjoint(va, vb); err != nil {
		return fmt.Errorf("InterleavePairRange: %w", err)
	}
	interleave.ApplyPair(va, vb, s, halfScratchPairInShuffle[E])
	return nil
}
