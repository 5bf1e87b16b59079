package container

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"multiorder/sliceutil"
)

// Container is an insertion-ordered collection exposing six traversal orders.
// Index i always refers to the i-th element added and not yet removed.
// A Container is not safe for concurrent use.
type Container[T any] struct {
	data    []T
	compare func(a, b T) int
}

// New returns an empty container ordered by the natural order of T.
func New[T cmp.Ordered]() *Container[T] {
	return &Container[T]{compare: cmp.Compare[T]}
}

// NewFunc returns an empty container for element types without a built-in order.
// compare must be a total order over T: negative for a < b, zero for a == b, positive otherwise.
// Equality in Remove is compare(a, b) == 0.
func NewFunc[T any](compare func(a, b T) int) *Container[T] {
	if compare == nil {
		panic("container: nil compare func")
	}
	return &Container[T]{compare: compare}
}

// Add appends values to the end of the container.
func (c *Container[T]) Add(values ...T) {
	c.data = append(c.data, values...)
}

// Remove removes every element equal to value.
// If nothing matches, it returns an error wrapping ErrNotFound and the container is unchanged.
func (c *Container[T]) Remove(value T) error {
	equal := func(v T) bool { return c.compare(v, value) == 0 }
	if !sliceutil.ContainsFunc(c.data, equal) {
		return errors.Wrapf(ErrNotFound, "remove %v", value)
	}
	// DeleteFunc zeroes the vacated tail, so removed values can be GCed
	c.data = slices.DeleteFunc(c.data, equal)
	return nil
}

// Size returns the number of stored elements.
func (c *Container[T]) Size() int {
	return len(c.data)
}

// IsEmpty reports whether the container holds no elements.
func (c *Container[T]) IsEmpty() bool {
	return len(c.data) == 0
}

// Clear removes all elements and releases them to the GC.
func (c *Container[T]) Clear() {
	clear(c.data)
	c.data = c.data[:0]
}

// Clone returns a container with its own copy of the storage.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (c *Container[T]) Clone() *Container[T] {
	return &Container[T]{
		data:    slices.Clone(c.data),
		compare: c.compare,
	}
}

// String renders the elements in insertion order, e.g. "[ a bb ]". An empty container is "[ ]".
func (c *Container[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, v := range c.data {
		fmt.Fprintf(&sb, "%v ", v)
	}
	sb.WriteString("]")
	return sb.String()
}

// Values iterates the elements in insertion order.
func (c *Container[T]) Values() iter.Seq[T] {
	return slices.Values(c.data)
}

// All iterates (index, element) pairs in insertion order.
func (c *Container[T]) All() iter.Seq2[int, T] {
	return slices.All(c.data)
}

// Permutation computes the visiting order of the current contents as storage indices.
func (c *Container[T]) Permutation(order Order) []int {
	return Permutation(order, c.data, c.compare)
}

// Seq iterates the elements in the given order.
// The order is computed once, when iteration starts.
func (c *Container[T]) Seq(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, idx := range c.Permutation(order) {
			if !yield(c.data[idx]) {
				return
			}
		}
	}
}
