package container

import (
	"iter"
	"slices"

	"multiorder/seqs"
)

// Permutation returns the visiting order of data for the given traversal order.
// The result holds len(data) distinct indices in [0, len(data)).
// An unknown order falls back to insertion order.
func Permutation[T any](order Order, data []T, compare func(a, b T) int) []int {
	switch order {
	case Ascending:
		return AscendingOrder(data, compare)
	case Descending:
		return DescendingOrder(data, compare)
	case Reverse:
		return ReverseOrder(len(data))
	case SideCross:
		return SideCrossOrder(data, compare)
	case MiddleOut:
		return MiddleOutOrder(len(data))
	default:
		return InsertionOrder(len(data))
	}
}

// InsertionOrder returns the identity permutation [0, n).
func InsertionOrder(n int) []int {
	return collect(seqs.Range(0, n, 1), n)
}

// ReverseOrder returns [n-1, n-2, ..., 0].
func ReverseOrder(n int) []int {
	return collect(seqs.Range(n-1, -1, -1), n)
}

// AscendingOrder sorts indices by element value, smallest first.
// The sort is stable: equal elements keep their insertion order.
func AscendingOrder[T any](data []T, compare func(a, b T) int) []int {
	perm := InsertionOrder(len(data))
	slices.SortStableFunc(perm, func(i, j int) int {
		return compare(data[i], data[j])
	})
	return perm
}

// DescendingOrder sorts indices by element value, largest first.
// Equal elements keep their insertion order, so this is not simply AscendingOrder reversed.
func DescendingOrder[T any](data []T, compare func(a, b T) int) []int {
	perm := InsertionOrder(len(data))
	slices.SortStableFunc(perm, func(i, j int) int {
		return compare(data[j], data[i])
	})
	return perm
}

// SideCrossOrder walks the ascending order from both ends toward the middle:
// smallest, largest, second smallest, second largest, ...
func SideCrossOrder[T any](data []T, compare func(a, b T) int) []int {
	sorted := AscendingOrder(data, compare)
	perm := make([]int, 0, len(sorted))
	for lo, hi := 0, len(sorted)-1; lo <= hi; lo, hi = lo+1, hi-1 {
		perm = append(perm, sorted[lo])
		if lo < hi {
			perm = append(perm, sorted[hi])
		}
	}
	return perm
}

// MiddleOutOrder starts at n/2 and alternates outward, left before right:
// mid, mid-1, mid+1, mid-2, mid+2, ... Positions outside [0, n) are skipped.
func MiddleOutOrder(n int) []int {
	perm := make([]int, 0, n)
	if n == 0 {
		return perm
	}
	mid := n / 2
	perm = append(perm, mid)
	for step := 1; len(perm) < n; step++ {
		if left := mid - step; left >= 0 {
			perm = append(perm, left)
		}
		if right := mid + step; right < n {
			perm = append(perm, right)
		}
	}
	return perm
}

func collect(seq iter.Seq[int], n int) []int {
	perm := make([]int, 0, n)
	for i := range seq {
		perm = append(perm, i)
	}
	return perm
}
