// Package irt, for iterator tools, provides a collection of stateless
// iterator handling functions used by slist and its tests.
package irt

import (
	"iter"
	"slices"
)

// Collect gathers the sequence into a slice. The optional arguments
// are the initial length and capacity of the slice, as with make.
func Collect[T any](seq iter.Seq[T], args ...int) []T {
	return slices.AppendSeq(make([]T, idxorz(0, args), idxorz(1, args)), seq)
}

func Slice[T any](sl []T) iter.Seq[T]    { return slices.Values(sl) }
func Args[T any](items ...T) iter.Seq[T] { return Slice(items) }

// Convert lazily maps a sequence of A into a sequence of B.
func Convert[A, B any](seq iter.Seq[A], op func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for value := range seq {
			if !yield(op(value)) {
				return
			}
		}
	}
}

// Apply calls op on every value in the sequence and returns the
// number of values seen.
func Apply[T any](seq iter.Seq[T], op func(T)) (count int) {
	for value := range seq {
		op(value)
		count++
	}
	return count
}

// Count returns the number of values in the sequence.
func Count[T any](seq iter.Seq[T]) int { return Apply(seq, func(T) {}) }

// Equal reports whether both sequences produce the same values in the
// same order.
func Equal[T comparable](rhs iter.Seq[T], lhs iter.Seq[T]) bool {
	rhNext, rhStop := iter.Pull(rhs)
	defer rhStop()
	lhNext, lhStop := iter.Pull(lhs)
	defer lhStop()
	for {
		rhv, okr := rhNext()
		lhv, okl := lhNext()
		if okr != okl {
			return false
		}
		if !okr && !okl {
			return true
		}
		if rhv != lhv {
			return false
		}
	}
}

func idxorz(idx int, args []int) int {
	if idx < len(args) {
		return args[idx]
	}
	return 0
}
