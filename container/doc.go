// Package container provides Container, an insertion-ordered collection that can be walked in
// six orders: insertion, ascending, descending, reverse, side-cross and middle-out.
//
// Each order is a permutation of storage indices computed when a cursor is created, so a
// cursor keeps its order even if the container changes afterwards. Cursors must not be used
// across such changes.
package container
