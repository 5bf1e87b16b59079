package container

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned by Remove when no stored element equals the target.
	ErrNotFound = errors.New("element not found")

	// ErrOutOfRange is the panic value (wrapped) of dereferencing an end or over-advanced cursor.
	ErrOutOfRange = errors.New("cursor out of range")

	// ErrUnknownOrder is returned by ParseOrder for names that match no Order.
	ErrUnknownOrder = errors.New("unknown traversal order")
)

// Order names one of the six traversal orders a Container exposes.
type Order int

const (
	// Insertion visits elements in the order they were added.
	Insertion Order = iota
	// Ascending visits elements from smallest to largest, equal elements in insertion order.
	Ascending
	// Descending visits elements from largest to smallest, equal elements in insertion order.
	Descending
	// Reverse visits elements in reverse insertion order.
	Reverse
	// SideCross alternates smallest, largest, second smallest, second largest, ...
	SideCross
	// MiddleOut starts at the middle position, then alternates left and right.
	MiddleOut
)

var orderNames = [...]string{
	Insertion:  "insertion",
	Ascending:  "ascending",
	Descending: "descending",
	Reverse:    "reverse",
	SideCross:  "side-cross",
	MiddleOut:  "middle-out",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
	return orderNames[o]
}

// Orders returns all traversal orders in declaration order.
func Orders() []Order {
	return []Order{Insertion, Ascending, Descending, Reverse, SideCross, MiddleOut}
}

// ParseOrder maps a name such as "side-cross" or "MIDDLE_OUT" to its Order.
func ParseOrder(name string) (Order, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range orderNames {
		if n == normalized {
			return Order(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOrder, "parse %q", name)
}

// Iterator is the forward-only contract shared by every traversal order.
// Usage:
//
//	for it, end := c.BeginAscending(), c.EndAscending(); !it.Equal(end); it.Next() {
//		use(it.Value())
//	}
type Iterator[T any] interface {
	// Next advances one position. It performs no bounds check.
	Next()

	// Value returns the element at the current position.
	// It panics with an error wrapping ErrOutOfRange at or past the end.
	Value() T

	// IsValid reports whether Value can be called.
	IsValid() bool

	// Position returns the number of Next calls since the begin position.
	Position() int
}

var _ Iterator[int] = (*Cursor[int])(nil)
