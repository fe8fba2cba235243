package ring

import "github.com/calebcase/oops"

// Iterator is a read only traversal of a ring.
//
//	it := r.Iterator()
//	for it.Next() {
//		fmt.Println(it.Index(), it.Digit())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator struct {
	r       *Ring
	h       handle
	n       int
	mods    uint64
	reverse bool

	index int
	digit byte
	err   error
}

// Iterator returns an iterator from the most significant digit to the least.
func (r *Ring) Iterator() *Iterator {
	return &Iterator{
		r:    r,
		h:    r.head,
		mods: r.mods,
	}
}

// ReverseIterator returns an iterator from the least significant digit to
// the most.
func (r *Ring) ReverseIterator() *Iterator {
	it := &Iterator{
		r:       r,
		h:       none,
		mods:    r.mods,
		reverse: true,
	}

	if r.count > 0 {
		it.h = r.cells[r.head].prev
	}

	return it
}

// Next advances to the next digit. It returns false when the traversal is
// complete or the ring was structurally modified (see Err).
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}

	if it.mods != it.r.mods {
		it.err = oops.Trace(ErrStale)

		return false
	}

	if it.n >= it.r.count {
		return false
	}

	c := it.r.cells[it.h]
	it.digit = c.digit

	if it.reverse {
		it.index = it.r.count - 1 - it.n
		it.h = c.prev
	} else {
		it.index = it.n
		it.h = c.next
	}

	it.n++

	return true
}

// Digit returns the current digit.
func (it *Iterator) Digit() byte { return it.digit }

// Index returns the index of the current digit.
func (it *Iterator) Index() int { return it.index }

// Err returns the error that stopped the traversal, if any.
func (it *Iterator) Err() error { return it.err }

// Cursor is a read/write position between two digits of a ring.
//
// A cursor at index i sits between digit i-1 and digit i. Next yields digit
// i and moves forward, Previous yields digit i-1 and moves back. Remove and
// Set act on the digit most recently yielded and are only valid right after
// Next or Previous. Insert adds a digit at the cursor position and moves the
// cursor past it, so repeated calls insert in order.
type Cursor struct {
	r *Ring

	// next is the cell at index, or none when index == count.
	next  handle
	last  handle
	index int
	mods  uint64
}

// Cursor returns a cursor positioned before the digit at index. Index may be
// Len, positioning the cursor after the last digit.
func (r *Ring) Cursor(index int) (*Cursor, error) {
	err := r.checkIndex(index, r.count+1)
	if err != nil {
		return nil, err
	}

	c := &Cursor{
		r:     r,
		next:  none,
		last:  none,
		index: index,
		mods:  r.mods,
	}

	if index < r.count {
		c.next = r.at(index)
	}

	return c, nil
}

func (c *Cursor) check() error {
	if c.mods != c.r.mods {
		return oops.Trace(ErrStale)
	}

	return nil
}

// HasNext reports whether Next would yield a digit.
func (c *Cursor) HasNext() bool { return c.index < c.r.count }

// HasPrevious reports whether Previous would yield a digit.
func (c *Cursor) HasPrevious() bool { return c.index > 0 }

// NextIndex returns the index of the digit Next would yield.
func (c *Cursor) NextIndex() int { return c.index }

// PreviousIndex returns the index of the digit Previous would yield.
func (c *Cursor) PreviousIndex() int { return c.index - 1 }

// Next yields the digit after the cursor and moves forward.
func (c *Cursor) Next() (d byte, err error) {
	err = c.check()
	if err != nil {
		return 0, err
	}

	if !c.HasNext() {
		return 0, IndexError.New("no digit at index %d", c.index)
	}

	c.last = c.next
	c.index++

	if c.index == c.r.count {
		c.next = none
	} else {
		c.next = c.r.cells[c.last].next
	}

	return c.r.cells[c.last].digit, nil
}

// Previous yields the digit before the cursor and moves back.
func (c *Cursor) Previous() (d byte, err error) {
	err = c.check()
	if err != nil {
		return 0, err
	}

	if !c.HasPrevious() {
		return 0, IndexError.New("no digit at index %d", c.index-1)
	}

	if c.next == none {
		c.next = c.r.cells[c.r.head].prev
	} else {
		c.next = c.r.cells[c.next].prev
	}

	c.last = c.next
	c.index--

	return c.r.cells[c.last].digit, nil
}

// Remove deletes the digit most recently yielded.
func (c *Cursor) Remove() (err error) {
	err = c.check()
	if err != nil {
		return err
	}

	if c.last == none {
		return StateError.New("remove without a preceding next or previous")
	}

	if c.last == c.next {
		// Yielded by Previous: the following digit slides into index.
		if c.index == c.r.count-1 {
			c.next = none
		} else {
			c.next = c.r.cells[c.last].next
		}
	} else {
		c.index--
	}

	c.r.unlink(c.last)

	c.last = none
	c.mods = c.r.mods

	return nil
}

// Set replaces the digit most recently yielded.
func (c *Cursor) Set(d byte) (err error) {
	err = c.check()
	if err != nil {
		return err
	}

	if c.last == none {
		return StateError.New("set without a preceding next or previous")
	}

	err = c.r.validate(d)
	if err != nil {
		return err
	}

	c.r.cells[c.last].digit = d

	return nil
}

// Insert adds d at the cursor position. The cursor moves past the new digit.
func (c *Cursor) Insert(d byte) (err error) {
	err = c.check()
	if err != nil {
		return err
	}

	err = c.r.validate(d)
	if err != nil {
		return err
	}

	c.r.link(c.next, d)

	c.index++
	c.last = none
	c.mods = c.r.mods

	return nil
}
