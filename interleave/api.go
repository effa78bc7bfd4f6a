// SPDX-License-Identifier: MIT

package interleave

// Interleave shuffles all of v in place with algorithm k.
//
// Errors: ErrUnknownKind, ErrUnknownShuffle. v is untouched on error.
func Interleave[T any](k Kind, v []T, s Shuffle) error {
	if err := validateCall("Interleave", k, s); err != nil {
		return err
	}
	Apply(v, s, inShufflerOf[T](k))
	return nil
}

// InterleaveRange shuffles v[from:to] in place; elements outside the window
// are never read or written.
//
// Errors: ErrUnknownKind, ErrUnknownShuffle, *BoundsError (matches
// ErrOutOfRange). v is untouched on error.
func InterleaveRange[T any](k Kind, v []T, from, to int, s Shuffle) error {
	if err := validateCall("InterleaveRange", k, s); err != nil {
		return err
	}
	if err := ValidateRange("v", len(v), from, to); err != nil {
		return validatorErrorf("InterleaveRange", err)
	}
	Apply(v[from:to], s, inShufflerOf[T](k))
	return nil
}

// InterleavePair shuffles the virtual sequence a∥b in place as if it were
// one view split between a and b. Only min(len(a), len(b)) elements of each
// take part.
//
// Errors: ErrUnknownKind, ErrUnknownShuffle, ErrOverlap. Nothing is mutated
// on error.
func InterleavePair[T any](k Kind, a, b []T, s Shuffle) error {
	if err := validateCall("InterleavePair", k, s); err != nil {
		return err
	}
	if err := ValidateDisjoint(a, b); err != nil {
		return validatorErrorf("InterleavePair", err)
	}
	ApplyPair(a, b, s, pairInShufflerOf[T](k))
	return nil
}

// InterleavePairRange is InterleavePair on a[fromA:toA] and b[fromB:toB].
// a and b may be the same slice as long as the two windows are disjoint.
//
// Errors: ErrUnknownKind, ErrUnknownShuffle, *BoundsError, ErrOverlap.
// Nothing is mutated on error.
func InterleavePairRange[T any](k Kind, a []T, fromA, toA int, b []T, fromB, toB int, s Shuffle) error {
	if err := validateCall("InterleavePairRange", k, s); err != nil {
		return err
	}
	if err := ValidateRange("a", len(a), fromA, toA); err != nil {
		return validatorErrorf("InterleavePairRange", err)
	}
	if err := ValidateRange("b", len(b), fromB, toB); err != nil {
		return validatorErrorf("InterleavePairRange", err)
	}
	va, vb := a[fromA:toA], b[fromB:toB]
	if err := ValidateDisjoint(va, vb); err != nil {
		return validatorErrorf("InterleavePairRange", err)
	}
	ApplyPair(va, vb, s, pairInShufflerOf[T](k))
	return nil
}

// inShufflerOf returns the one-view core of a valid kind.
func inShufflerOf[T any](k Kind) InShuffler[T] {
	switch k {
	case Permutation:
		return permutationInShuffle[T]
	case Recursive:
		return recursiveInShuffle[T]
	case Josephus:
		return josephusInShuffle[T]
	case ShufflePrime:
		return shufflePrimeInShuffle[T]
	case Simple:
		return simpleInShuffle[T]
	default:
		return sequenceInShuffle[T]
	}
}

// pairInShufflerOf returns the two-view core of a valid kind.
func pairInShufflerOf[T any](k Kind) PairInShuffler[T] {
	switch k {
	case Permutation:
		return permutationPairInShuffle[T]
	case Recursive:
		return recursivePairInShuffle[T]
	case Josephus:
		return josephusPairInShuffle[T]
	case ShufflePrime:
		return shufflePrimePairInShuffle[T]
	case Simple:
		return simplePairInShuffle[T]
	default:
		return sequencePairInShuffle[T]
	}
}
