package sliceutil

// ContainsFunc checks if any element satisfies the predicate.
// Useful for non-comparable types or custom matching logic.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	return FindIndex(collection, predicate) >= 0
}

// FindIndex searches for the index of the first element that satisfies the predicate.
// Returns the index if found, otherwise returns -1.
func FindIndex[T any](collection []T, predicate func(T) bool) int {
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1] // BCE hint

	for i, item := range collection {
		if predicate(item) {
			return i
		}
	}
	return -1
}
