// Package ring provides a non-negative integer stored as a circular doubly
// linked list of base B digits.
//
// The most significant digit sits at index 0 (the head). Following the next
// link from the head visits every digit once, in order, and returns to the
// head. Following the previous link from the head reaches the tail (the
// least significant digit).
//
// Store
//
// Cells live in a slice and link to each other by slice index (a handle)
// rather than by pointer. Removed cells go on a free list and their slots
// are reused by later insertions. The head is a handle too, so rotating the
// ring (ShiftLeft, ShiftRight) only reassigns the head:
//
//  digits    1 2 3        ShiftLeft        2 3 1
//  handles   0 1 2    -------------->      1 2 0
//  head      0                             1
//
// Indexing
//
// Positional lookups walk the links from the head, taking whichever
// direction is shorter. Get, Set, Insert and Remove are therefore O(index)
// rather than O(1). Use an Iterator or a Cursor to visit every digit.
//
// Iterators and cursors capture the ring's structural modification count
// when created. Any insertion, removal or rotation made through the ring
// (or another cursor) invalidates them, after which they fail with a
// StateError. Changing a digit value in place (Set, Swap, sorting) is not
// structural and does not invalidate them.
//
// A Ring is not safe for concurrent use. Callers sharing a ring between
// goroutines must hold an exclusive lock around every call, including
// reads.
package ring
