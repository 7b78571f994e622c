// Package cmp provides three-way comparators for sorting and
// searching singly linked lists.
//
// A Compare function returns a negative number when a sorts before b,
// zero when they are equivalent, and a positive number when a sorts
// after b. List operations that take a comparator treat a nil
// Compare as "no comparator" and do nothing.
package cmp

import "time"

// Orderable describes all native types which support the < operator.
// To order custom types, use the Comparable interface or By.
type Orderable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr | ~float32 | ~float64 | ~string
}

// Comparable allows users to define a method on their types which
// provides a three-way comparison.
type Comparable[T any] interface{ Compare(T) int }

// Compare describes a three-way comparison, typically provided by one
// of the following operations.
type Compare[T any] func(a, b T) int

// Native provides a three-way comparison for types that support the
// < operator. NaN values sort before all other floats and are equal
// to each other.
func Native[T Orderable](a, b T) int {
	an, bn := isNaN(a), isNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// x != x only holds for NaN.
func isNaN[T Orderable](x T) bool { return x != x }

// Custom converts types that implement the Comparable interface.
func Custom[T Comparable[T]](a, b T) int { return a.Compare(b) }

// By compares values by a key extracted from each value. Only the key
// participates in the comparison, so values with equal keys compare
// as equal (and keep their relative order in a stable sort).
func By[T any, K Orderable](key func(T) K) Compare[T] {
	return func(a, b T) int { return Native(key(a), key(b)) }
}

// FromLessThan adapts a less-than predicate into a three-way
// comparison.
func FromLessThan[T any](lt func(a, b T) bool) Compare[T] {
	return func(a, b T) int {
		switch {
		case lt(a, b):
			return -1
		case lt(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Time compares time values using time.Time.Compare.
func Time(a, b time.Time) int { return a.Compare(b) }

// Reverse wraps an existing comparison and reverses its direction.
// Equal values remain equal.
func Reverse[T any](fn Compare[T]) Compare[T] { return func(a, b T) int { return fn(b, a) } }

// Then returns a comparison that uses fn and breaks ties with next.
func (fn Compare[T]) Then(next Compare[T]) Compare[T] {
	return func(a, b T) int {
		if c := fn(a, b); c != 0 {
			return c
		}
		return next(a, b)
	}
}
