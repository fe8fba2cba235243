package ring

import "github.com/zeebo/errs"

// Error classes.
var (
	// ValidationError is returned when a digit is outside [0, base) or a
	// base is outside [MinBase, MaxBase].
	ValidationError = errs.Class("validation")

	// IndexError is returned when an index is outside the range an
	// operation accepts.
	IndexError = errs.Class("index")

	// StateError is returned by cursors used out of order or after the
	// ring changed underneath them.
	StateError = errs.Class("illegal cursor state")
)

// ErrStale is returned by iterators and cursors after a structural change
// made outside of them.
var ErrStale = StateError.New("ring modified outside of cursor")
