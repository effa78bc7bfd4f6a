// Package primitive retargets the interleave algorithms to untyped buffers of
// machine scalars, identified by an element tag.
//
// A buffer is any slice of a predeclared numeric or bool type passed as
// `any`; the Elem tag must name its element type (ElemOf derives it). The
// shuffles, kinds, bounds and error contract are those of package
// interleave. Only storage differs: the Simple kind keeps half the view aside
// instead of a full copy.
//
// Usage:
//
//	samples := []float32{1, 2, 3, 10, 20, 30}
//	err := primitive.Interleave(interleave.Permutation, samples, primitive.Float32, interleave.In)
//	// samples == [10 1 20 2 30 3]
//
// Errors:
//   - ErrNilBuffer, ErrUnsupportedBuffer, ErrElemMismatch for the buffer checks.
//   - interleave.ErrUnknownKind, ErrUnknownShuffle, ErrOutOfRange, ErrOverlap
//     from the generic layer.
package primitive
