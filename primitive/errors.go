// SPDX-License-Identifier: MIT
// Package primitive: sentinel error set.
// Buffer and tag checks run before any element is touched. Errors from the
// generic layer (kind, shuffle, bounds, overlap) pass through unchanged, so
// callers match them with the interleave sentinels.

package primitive

import "errors"

var (
	// ErrNilBuffer indicates a nil buffer argument.
	ErrNilBuffer = errors.New("primitive: buffer is nil")

	// ErrUnsupportedBuffer indicates a buffer that is not a slice of a
	// predeclared scalar type.
	ErrUnsupportedBuffer = errors.New("primitive: unsupported buffer type")

	// ErrElemMismatch indicates a tag that does not describe the buffer, or
	// two pair buffers of different element types.
	ErrElemMismatch = errors.New("primitive: element tag does not match buffer")
)
