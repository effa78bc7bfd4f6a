// SPDX-License-Identifier: MIT

package interleave

import "fmt"

const (
	// DefaultKind is the algorithm used when no WithKind option is given.
	DefaultKind = Sequence
	// DefaultShuffle is the shuffle used when no WithShuffle option is given.
	DefaultShuffle = In
)

// Options configures an Interleaver.
//
// Kind    – algorithm to run. Default: DefaultKind.
// Shuffle – shuffle applied by every call. Default: DefaultShuffle.
type Options struct {
	Kind    Kind
	Shuffle Shuffle
}

// Option represents a functional option for configuring an Interleaver.
type Option func(*Options)

// DefaultOptions returns the configuration New starts from.
func DefaultOptions() Options {
	return Options{Kind: DefaultKind, Shuffle: DefaultShuffle}
}

// WithKind selects the algorithm. An unknown kind panics: it is a
// programming error, not an input error.
func WithKind(k Kind) Option {
	if !k.Valid() {
		panic(fmt.Sprintf("interleave: WithKind(%d): %v", uint8(k), ErrUnknownKind))
	}
	return func(o *Options) {
		o.Kind = k
	}
}

// WithShuffle selects the shuffle. An unknown shuffle panics.
func WithShuffle(s Shuffle) Option {
	if !s.Valid() {
		panic(fmt.Sprintf("interleave: WithShuffle(%d): %v", uint8(s), ErrUnknownShuffle))
	}
	return func(o *Options) {
		o.Shuffle = s
	}
}

// Interleaver binds an algorithm and a shuffle to an element type. It holds
// no mutable state and is safe for concurrent use on disjoint slices.
type Interleaver[T any] struct {
	opts Options
	one  InShuffler[T]
	pair PairInShuffler[T]
}

// New builds an Interleaver from DefaultOptions and opts, applied in order.
func New[T any](opts ...Option) *Interleaver[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Interleaver[T]{
		opts: o,
		one:  inShufflerOf[T](o.Kind),
		pair: pairInShufflerOf[T](o.Kind),
	}
}

// Kind returns the configured algorithm.
func (it *Interleaver[T]) Kind() Kind { return it.opts.Kind }

// Shuffle returns the configured shuffle.
func (it *Interleaver[T]) Shuffle() Shuffle { return it.opts.Shuffle }

// Interleave shuffles all of v in place.
func (it *Interleaver[T]) Interleave(v []T) {
	Apply(v, it.opts.Shuffle, it.one)
}

// InterleaveRange shuffles v[from:to] in place. See the package function of
// the same name for the error contract.
func (it *Interleaver[T]) InterleaveRange(v []T, from, to int) error {
	if err := ValidateRange("v", len(v), from, to); err != nil {
		return validatorErrorf("InterleaveRange", err)
	}
	Apply(v[from:to], it.opts.Shuffle, it.one)
	return nil
}

// InterleavePair shuffles a∥b in place.
func (it *Interleaver[T]) InterleavePair(a, b []T) error {
	if err := ValidateDisjoint(a, b); err != nil {
		return validatorErrorf("InterleavePair", err)
	}
	ApplyPair(a, b, it.opts.Shuffle, it.pair)
	return nil
}

// InterleavePairRange shuffles a[fromA:toA]∥b[fromB:toB] in place.
func (it *Interleaver[T]) InterleavePairRange(a []T, fromA, toA int, b []T, fromB, toB int) error {
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
	ApplyPair(va, vb, it.opts.Shuffle, it.pair)
	return nil
}
