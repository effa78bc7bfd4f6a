// SPDX-License-Identifier: MIT
// Package interleave: sentinel error set.
// Every public entry point validates all of its arguments before touching the
// slices, so an error return always means nothing was mutated. Callers match
// with errors.Is; bounds failures additionally carry a *BoundsError.

package interleave

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a view with from < 0, from > to or to > len.
	ErrOutOfRange = errors.New("interleave: view out of range")

	// ErrUnknownKind indicates a Kind outside the declared set.
	ErrUnknownKind = errors.New("interleave: unknown algorithm kind")

	// ErrUnknownShuffle indicates a Shuffle outside the declared set.
	ErrUnknownShuffle = errors.New("interleave: unknown shuffle")

	// ErrOverlap indicates two views of one backing array that share elements.
	ErrOverlap = errors.New("interleave: views overlap")
)

// BoundsError describes the offending view of a range call.
type BoundsError struct {
	Arg      string // "v", "a" or "b"
	From, To int
	Len      int
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("interleave: view %s[%d:%d] out of range for length %d", e.Arg, e.From, e.To, e.Len)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *BoundsError) Unwrap() error { return ErrOutOfRange }
