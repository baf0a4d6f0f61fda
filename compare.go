package vector

import (
	"cmp"
	"slices"
)

// Compare compares a and b lexicographically. Elements are compared in
// order until one differs; otherwise the shorter vector is less.
// The result is -1, 0 or +1. A nil vector compares as empty.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Data(), b.Data())
}

// CompareFunc is like Compare using cmpFn to compare elements.
func CompareFunc[T any](a, b *Vector[T], cmpFn func(T, T) int) int {
	return slices.CompareFunc(a.Data(), b.Data(), cmpFn)
}

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal using eq to compare elements.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessOrEqual reports whether a orders before or equal to b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports whether a orders after or equal to b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }
