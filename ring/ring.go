package ring

import (
	"strconv"
	"strings"
)

// Base limits. Digits are stored as bytes so the largest base is 256.
const (
	MinBase     = 2
	MaxBase     = 256
	DefaultBase = 8
)

// handle is the index of a cell in the store. A handle does not own the cell
// it refers to, so next/prev links may form a cycle.
type handle int32

// none is the undefined handle.
const none handle = -1

type cell struct {
	digit byte
	next  handle
	prev  handle
}

// Ring is a non-negative integer stored as base B digits, most significant
// first, in a circular doubly linked list.
type Ring struct {
	base int

	cells []cell
	free  []handle

	head  handle
	count int

	// mods counts structural changes. Iterators and cursors compare it
	// against the value they captured.
	mods uint64
}

// New returns an empty ring for the given base.
func New(base int) (*Ring, error) {
	if base < MinBase || base > MaxBase {
		return nil, ValidationError.New("base %d outside [%d, %d]", base, MinBase, MaxBase)
	}

	return &Ring{
		base: base,
		head: none,
	}, nil
}

// FromDigits returns a ring holding digits in order.
func FromDigits(base int, digits ...byte) (*Ring, error) {
	r, err := New(base)
	if err != nil {
		return nil, err
	}

	err = r.AppendAll(digits...)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Base returns the radix of the ring.
func (r *Ring) Base() int { return r.base }

// Len returns the number of digits.
func (r *Ring) Len() int { return r.count }

// Empty reports whether the ring has no digits.
func (r *Ring) Empty() bool { return r.count == 0 }

func (r *Ring) validate(d byte) error {
	if int(d) >= r.base {
		return ValidationError.New("digit %d outside [0, %d)", d, r.base)
	}

	return nil
}

func (r *Ring) checkIndex(index, limit int) error {
	if index < 0 || index >= limit {
		return IndexError.New("index %d outside [0, %d)", index, limit)
	}

	return nil
}

// alloc returns a detached cell holding d, reusing a free slot if possible.
func (r *Ring) alloc(d byte) handle {
	if n := len(r.free); n > 0 {
		h := r.free[n-1]
		r.free = r.free[:n-1]
		r.cells[h] = cell{digit: d, next: h, prev: h}

		return h
	}

	h := handle(len(r.cells))
	r.cells = append(r.cells, cell{digit: d, next: h, prev: h})

	return h
}

// splice links the detached cell h immediately before at.
func (r *Ring) splice(h, at handle) {
	prev := r.cells[at].prev

	r.cells[h].next = at
	r.cells[h].prev = prev
	r.cells[prev].next = h
	r.cells[at].prev = h
}

// link adds d immediately before at. When at is none the new cell becomes
// the tail. When at is the head the new cell becomes the head.
func (r *Ring) link(at handle, d byte) handle {
	h := r.alloc(d)

	switch {
	case r.count == 0:
		r.head = h
	case at == none:
		r.splice(h, r.head)
	default:
		r.splice(h, at)
		if at == r.head {
			r.head = h
		}
	}

	r.count++
	r.mods++

	return h
}

// unlink removes h from the ring and returns its digit.
func (r *Ring) unlink(h handle) byte {
	c := r.cells[h]

	if r.count == 1 {
		r.head = none
	} else {
		r.cells[c.prev].next = c.next
		r.cells[c.next].prev = c.prev

		if h == r.head {
			r.head = c.next
		}
	}

	r.count--
	r.mods++

	if r.count == 0 {
		r.cells = r.cells[:0]
		r.free = r.free[:0]
	} else {
		r.free = append(r.free, h)
	}

	return c.digit
}

// at returns the handle of the cell at index, which must be in [0, count).
func (r *Ring) at(index int) handle {
	h := r.head

	if index <= r.count/2 {
		for i := 0; i < index; i++ {
			h = r.cells[h].next
		}

		return h
	}

	for i := r.count; i > index; i-- {
		h = r.cells[h].prev
	}

	return h
}

// Append adds d as the least significant digit.
func (r *Ring) Append(d byte) error {
	err := r.validate(d)
	if err != nil {
		return err
	}

	r.link(none, d)

	return nil
}

// AppendAll adds digits in order. Nothing is added unless every digit is
// valid.
func (r *Ring) AppendAll(digits ...byte) error {
	for _, d := range digits {
		err := r.validate(d)
		if err != nil {
			return err
		}
	}

	for _, d := range digits {
		r.link(none, d)
	}

	return nil
}

// Insert adds d so that it ends up at index. Index may be Len, which
// appends. Inserting at 0 makes the new digit the head.
func (r *Ring) Insert(index int, d byte) error {
	err := r.checkIndex(index, r.count+1)
	if err != nil {
		return err
	}

	err = r.validate(d)
	if err != nil {
		return err
	}

	at := none
	if index < r.count {
		at = r.at(index)
	}

	r.link(at, d)

	return nil
}

// InsertAll adds digits in order starting at index. Nothing is added unless
// every digit is valid.
func (r *Ring) InsertAll(index int, digits ...byte) error {
	err := r.checkIndex(index, r.count+1)
	if err != nil {
		return err
	}

	for _, d := range digits {
		err = r.validate(d)
		if err != nil {
			return err
		}
	}

	at := none
	if index < r.count {
		at = r.at(index)
	}

	for _, d := range digits {
		r.link(at, d)
	}

	return nil
}

// Remove deletes the digit at index and returns it.
func (r *Ring) Remove(index int) (d byte, err error) {
	err = r.checkIndex(index, r.count)
	if err != nil {
		return 0, err
	}

	return r.unlink(r.at(index)), nil
}

// RemoveDigit deletes the first occurrence of d. It reports whether a digit
// was found.
func (r *Ring) RemoveDigit(d byte) bool {
	i := r.IndexOf(d)
	if i < 0 {
		return false
	}

	r.unlink(r.at(i))

	return true
}

// RemoveAll deletes every occurrence of the given digits. It reports whether
// anything was removed.
func (r *Ring) RemoveAll(digits ...byte) bool {
	var set [MaxBase]bool
	for _, d := range digits {
		set[d] = true
	}

	return r.filter(func(d byte) bool { return !set[d] })
}

// RetainAll deletes every digit not among the given digits. It reports
// whether anything was removed.
func (r *Ring) RetainAll(digits ...byte) bool {
	var set [MaxBase]bool
	for _, d := range digits {
		set[d] = true
	}

	return r.filter(func(d byte) bool { return set[d] })
}

func (r *Ring) filter(keep func(d byte) bool) (modified bool) {
	h := r.head

	for n := r.count; n > 0; n-- {
		next := r.cells[h].next

		if !keep(r.cells[h].digit) {
			r.unlink(h)
			modified = true
		}

		h = next
	}

	return modified
}

// Get returns the digit at index.
func (r *Ring) Get(index int) (d byte, err error) {
	err = r.checkIndex(index, r.count)
	if err != nil {
		return 0, err
	}

	return r.cells[r.at(index)].digit, nil
}

// Set replaces the digit at index and returns the previous one.
func (r *Ring) Set(index int, d byte) (old byte, err error) {
	err = r.checkIndex(index, r.count)
	if err != nil {
		return 0, err
	}

	err = r.validate(d)
	if err != nil {
		return 0, err
	}

	h := r.at(index)
	old = r.cells[h].digit
	r.cells[h].digit = d

	return old, nil
}

// Clear removes every digit.
func (r *Ring) Clear() {
	r.cells = r.cells[:0]
	r.free = r.free[:0]
	r.head = none
	r.count = 0
	r.mods++
}

// IndexOf returns the index of the first occurrence of d or -1.
func (r *Ring) IndexOf(d byte) int {
	h := r.head
	for i := 0; i < r.count; i++ {
		if r.cells[h].digit == d {
			return i
		}

		h = r.cells[h].next
	}

	return -1
}

// LastIndexOf returns the index of the last occurrence of d or -1.
func (r *Ring) LastIndexOf(d byte) int {
	if r.count == 0 {
		return -1
	}

	h := r.cells[r.head].prev
	for i := r.count - 1; i >= 0; i-- {
		if r.cells[h].digit == d {
			return i
		}

		h = r.cells[h].prev
	}

	return -1
}

// Contains reports whether d occurs in the ring.
func (r *Ring) Contains(d byte) bool {
	return r.IndexOf(d) >= 0
}

// Digits returns a copy of the digits in order.
func (r *Ring) Digits() []byte {
	digits := make([]byte, 0, r.count)

	h := r.head
	for i := 0; i < r.count; i++ {
		digits = append(digits, r.cells[h].digit)
		h = r.cells[h].next
	}

	return digits
}

// Clone returns an independent copy of the ring.
func (r *Ring) Clone() *Ring {
	c := &Ring{
		base:  r.base,
		head:  none,
		cells: make([]cell, 0, r.count),
	}

	h := r.head
	for i := 0; i < r.count; i++ {
		c.link(none, r.cells[h].digit)
		h = r.cells[h].next
	}

	return c
}

// Slice returns an independent ring holding the digits in [from, to).
func (r *Ring) Slice(from, to int) (*Ring, error) {
	if from < 0 || to > r.count || from > to {
		return nil, IndexError.New("range [%d, %d) outside [0, %d)", from, to, r.count)
	}

	s := &Ring{
		base:  r.base,
		head:  none,
		cells: make([]cell, 0, to-from),
	}

	if from == to {
		return s, nil
	}

	h := r.at(from)
	for i := from; i < to; i++ {
		s.link(none, r.cells[h].digit)
		h = r.cells[h].next
	}

	return s, nil
}

// String returns the digits as a base B numeral. Bases above 36 have no
// single character digits, so their digits are written in decimal and
// separated by colons. An empty ring is written as zero.
func (r *Ring) String() string {
	if r.count == 0 {
		return "0"
	}

	var sb strings.Builder

	h := r.head
	for i := 0; i < r.count; i++ {
		d := int64(r.cells[h].digit)

		if r.base <= 36 {
			sb.WriteString(strconv.FormatInt(d, r.base))
		} else {
			if i > 0 {
				sb.WriteByte(':')
			}
			sb.WriteString(strconv.FormatInt(d, 10))
		}

		h = r.cells[h].next
	}

	return sb.String()
}
