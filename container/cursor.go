package container

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"
)

/*
Cursor walks a Container through a permutation computed when the cursor was created.

The permutation is a snapshot: adding to or removing from the container afterwards does not
change it. The container must outlive the cursor, and cursors must not be kept across
mutation of their container; dereferencing such a cursor reads whatever the storage holds
at that index now, or panics if the index no longer exists.
*/
type Cursor[T any] struct {
	src   *Container[T]
	order Order
	perm  []int
	pos   int
}

func (c *Container[T]) newCursor(order Order, pos int) *Cursor[T] {
	return &Cursor[T]{src: c, order: order, perm: c.Permutation(order), pos: pos}
}

// Begin returns a cursor at the first element of the given order.
func (c *Container[T]) Begin(order Order) *Cursor[T] {
	return c.newCursor(order, 0)
}

// End returns the past-the-end cursor of the given order.
func (c *Container[T]) End(order Order) *Cursor[T] {
	return c.newCursor(order, len(c.data))
}

func (c *Container[T]) BeginInsertion() *Cursor[T] { return c.Begin(Insertion) }
func (c *Container[T]) EndInsertion() *Cursor[T]   { return c.End(Insertion) }

func (c *Container[T]) BeginAscending() *Cursor[T] { return c.Begin(Ascending) }
func (c *Container[T]) EndAscending() *Cursor[T]   { return c.End(Ascending) }

func (c *Container[T]) BeginDescending() *Cursor[T] { return c.Begin(Descending) }
func (c *Container[T]) EndDescending() *Cursor[T]   { return c.End(Descending) }

func (c *Container[T]) BeginReverse() *Cursor[T] { return c.Begin(Reverse) }
func (c *Container[T]) EndReverse() *Cursor[T]   { return c.End(Reverse) }

func (c *Container[T]) BeginSideCross() *Cursor[T] { return c.Begin(SideCross) }
func (c *Container[T]) EndSideCross() *Cursor[T]   { return c.End(SideCross) }

func (c *Container[T]) BeginMiddleOut() *Cursor[T] { return c.Begin(MiddleOut) }
func (c *Container[T]) EndMiddleOut() *Cursor[T]   { return c.End(MiddleOut) }

// Next advances the cursor by one position.
// Advancing past the end is allowed; the cursor then stays invalid.
func (cur *Cursor[T]) Next() {
	cur.pos++
}

// Equal reports whether both cursors belong to the same container and sit at the same position.
// Two containers with equal contents still produce unequal cursors.
func (cur *Cursor[T]) Equal(other *Cursor[T]) bool {
	if cur == nil || other == nil {
		return cur == other
	}
	return cur.src == other.src && cur.pos == other.pos
}

// IsValid reports whether the cursor points at an element of its snapshot.
func (cur *Cursor[T]) IsValid() bool {
	return cur != nil && cur.pos >= 0 && cur.pos < len(cur.perm)
}

// Value returns the element at the current position.
// It panics with an error wrapping ErrOutOfRange at or past the end.
func (cur *Cursor[T]) Value() T {
	v, err := cur.TryValue()
	if err != nil {
		panic(err)
	}
	return v
}

// TryValue is Value without the panic.
func (cur *Cursor[T]) TryValue() (val T, err error) {
	if cur == nil {
		return val, errors.Wrap(ErrOutOfRange, "nil cursor")
	}
	if !cur.IsValid() {
		return val, errors.Wrapf(ErrOutOfRange, "%s cursor at %d of %d", cur.order, cur.pos, len(cur.perm))
	}
	return cur.src.data[cur.perm[cur.pos]], nil
}

func (cur *Cursor[T]) Position() int {
	return cur.pos
}

// Len returns the size of the container when the cursor was created.
func (cur *Cursor[T]) Len() int {
	return len(cur.perm)
}

func (cur *Cursor[T]) Order() Order {
	return cur.order
}

// Clone returns an independent cursor at the same position with its own copy of the permutation.
func (cur *Cursor[T]) Clone() *Cursor[T] {
	return &Cursor[T]{
		src:   cur.src,
		order: cur.order,
		perm:  slices.Clone(cur.perm),
		pos:   cur.pos,
	}
}

// String returns a string representation of the cursor
func (cur *Cursor[T]) String() string {
	if cur == nil {
		return "Cursor[nil]"
	}
	if cur.IsValid() {
		return fmt.Sprintf("Cursor[%s %d/%d: %v]", cur.order, cur.pos, len(cur.perm), cur.src.data[cur.perm[cur.pos]])
	}
	return fmt.Sprintf("Cursor[%s %d/%d: end]", cur.order, cur.pos, len(cur.perm))
}

// Seq returns a sequence from the current position to the end; the cursor is not modified.
func (cur *Cursor[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := cur.pos; pos >= 0 && pos < len(cur.perm); pos++ {
			if !yield(cur.src.data[cur.perm[pos]]) {
				return
			}
		}
	}
}
