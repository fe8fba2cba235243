package ring

// Swap exchanges the digits at i and j. It returns false, changing nothing,
// if either index is out of range.
func (r *Ring) Swap(i, j int) bool {
	if i < 0 || i >= r.count || j < 0 || j >= r.count {
		return false
	}

	if i == j {
		return true
	}

	a, b := r.at(i), r.at(j)
	r.cells[a].digit, r.cells[b].digit = r.cells[b].digit, r.cells[a].digit

	return true
}

// SortAscending orders the digits from smallest to largest. Only digit values
// move; cells keep their links.
func (r *Ring) SortAscending() {
	r.sort(func(a, b byte) bool { return a > b })
}

// SortDescending orders the digits from largest to smallest. Only digit
// values move; cells keep their links.
func (r *Ring) SortDescending() {
	r.sort(func(a, b byte) bool { return a < b })
}

// sort is a bubble sort exchanging adjacent digits when out(a, b) is true.
func (r *Ring) sort(out func(a, b byte) bool) {
	for pass := 0; pass < r.count-1; pass++ {
		swapped := false

		h := r.head
		for i := 0; i < r.count-pass-1; i++ {
			next := r.cells[h].next

			if out(r.cells[h].digit, r.cells[next].digit) {
				r.cells[h].digit, r.cells[next].digit = r.cells[next].digit, r.cells[h].digit
				swapped = true
			}

			h = next
		}

		if !swapped {
			return
		}
	}
}

// ShiftLeft rotates the ring so the digit at index 1 becomes index 0 and the
// old head becomes the tail.
func (r *Ring) ShiftLeft() {
	if r.count <= 1 {
		return
	}

	r.head = r.cells[r.head].next
	r.mods++
}

// ShiftRight rotates the ring so the tail becomes index 0.
func (r *Ring) ShiftRight() {
	if r.count <= 1 {
		return
	}

	r.head = r.cells[r.head].prev
	r.mods++
}
