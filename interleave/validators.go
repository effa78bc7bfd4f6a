// SPDX-License-Identifier: MIT
// Package: interleave
//
// Purpose:
//  - One place for the argument checks shared by the package functions,
//    the Interleaver methods and the primitive facade.
//  - Checks are pure and allocate only on failure.

package interleave

import "fmt"

// validatorErrorf tags err with the name of the entry point that rejected it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRange reports a *BoundsError unless 0 <= from <= to <= length.
// arg names the view in the error message.
func ValidateRange(arg string, length, from, to int) error {
	if from < 0 || from > to || to > length {
		return &BoundsError{Arg: arg, From: from, To: to, Len: length}
	}
	return nil
}

// ValidateKind returns ErrUnknownKind for kinds outside the declared set.
func ValidateKind(k Kind) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return nil
}

// ValidateShuffle returns ErrUnknownShuffle for shuffles outside the declared set.
func ValidateShuffle(s Shuffle) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownShuffle, uint8(s))
	}
	return nil
}

// ValidateDisjoint returns ErrOverlap when a and b are windows of the same
// backing array and share at least one element. Two windows are recognised
// as siblings when their capacity runs to the same final element, which holds
// for any views cut with two-index slicing from one slice.
func ValidateDisjoint[T any](a, b []T) error {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	ea, eb := a[:cap(a)], b[:cap(b)]
	if &ea[len(ea)-1] != &eb[len(eb)-1] || zeroSized(ea) || zeroSized(eb) {
		return nil
	}
	// Offsets counted back from the shared final element.
	sa, sb := -cap(a), -cap(b)
	if sa < sb+len(b) && sb < sa+len(a) {
		return ErrOverlap
	}
	return nil
}

// zeroSized reports whether consecutive elements of v share an address.
func zeroSized[T any](v []T) bool {
	return len(v) > 1 && &v[0] == &v[1]
}

// validateCall runs the checks common to every entry point.
func validateCall(tag string, k Kind, s Shuffle) error {
	if err := ValidateKind(k); err != nil {
		return validatorErrorf(tag, err)
	}
	if err := ValidateShuffle(s); err != nil {
		return validatorErrorf(tag, err)
	}
	return nil
}
