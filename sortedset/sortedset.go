// Package sortedset implements set algebra over slices kept in ascending order without duplicates. Functions that
// grow a set return the updated slice; the input slice may be reused.
package sortedset

import (
	"cmp"
	"slices"
)

// InsertUnique adds value to the set unless it is already present. Values greater than the current maximum are
// appended without searching.
func InsertUnique[T cmp.Ordered](set []T, value T) ([]T, bool) {
	if len(set) == 0 || set[len(set)-1] < value {
		return append(set, value), true
	}

	return InsertUniqueNoBack(set, value)
}

// InsertUniqueNoBack adds value to the set unless it is already present, always searching for its position.
func InsertUniqueNoBack[T cmp.Ordered](set []T, value T) ([]T, bool) {
	if idx, found := slices.BinarySearch(set, value); found {
		return set, false
	} else {
		return slices.Insert(set, idx, value), true
	}
}

func Contains[T cmp.Ordered](set []T, value T) bool {
	_, found := slices.BinarySearch(set, value)
	return found
}

// From sorts and deduplicates values in place and returns the resulting set.
func From[T cmp.Ordered](values []T) []T {
	slices.Sort(values)
	return slices.Compact(values)
}

func Union[T cmp.Ordered](xs, ys []T) []T {
	var (
		union  = make([]T, 0, max(len(xs), len(ys)))
		xi, yi = 0, 0
	)

	for xi < len(xs) && yi < len(ys) {
		switch {
		case xs[xi] < ys[yi]:
			union = append(union, xs[xi])
			xi++

		case ys[yi] < xs[xi]:
			union = append(union, ys[yi])
			yi++

		default:
			union = append(union, xs[xi])
			xi++
			yi++
		}
	}

	union = append(union, xs[xi:]...)
	return append(union, ys[yi:]...)
}

func Intersection[T cmp.Ordered](xs, ys []T) []T {
	var (
		intersection []T
		xi, yi       = 0, 0
	)

	for xi < len(xs) && yi < len(ys) {
		switch {
		case xs[xi] < ys[yi]:
			xi++

		case ys[yi] < xs[xi]:
			yi++

		default:
			intersection = append(intersection, xs[xi])
			xi++
			yi++
		}
	}

	return intersection
}

// IsSet reports whether values is strictly ascending.
func IsSet[T cmp.Ordered](values []T) bool {
	for idx := 1; idx < len(values); idx++ {
		if !(values[idx-1] < values[idx]) {
			return false
		}
	}

	return true
}
