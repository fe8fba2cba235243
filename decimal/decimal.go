package decimal

import (
	"math/big"

	"github.com/calebcase/numring/integer"
	"github.com/calebcase/numring/ring"
	"github.com/zeebo/errs"
)

// Error classes.
var (
	Error = errs.Class("decimal")

	// DomainError is returned when a result is not a non-negative integer
	// or an operation is undefined for its operands.
	DomainError = errs.Class("domain")
)

// Decimaler is a non-negative integer able to write itself as a base 10
// numeral.
type Decimaler interface {
	Decimal() string
}

// Number adapts a ring to Decimaler.
type Number struct {
	*ring.Ring
}

// Decimal implements Decimaler.
func (n Number) Decimal() string {
	return ToDecimal(n.Ring)
}

// FromDecimal returns a ring in the given base holding the value of the
// base 10 numeral s. If s is empty or malformed the ring holds zero and
// defaulted is true. An error is only returned for an invalid base.
func FromDecimal(s string, base int) (r *ring.Ring, defaulted bool, err error) {
	defer Error.WrapP(&err)

	v, perr := integer.Parse(s)
	if perr != nil {
		v = new(big.Int)
		defaulted = true
	}

	r, err = FromInt(v, base)
	if err != nil {
		return nil, false, err
	}

	return r, defaulted, nil
}

// FromInt returns a ring in the given base holding v.
func FromInt(v *big.Int, base int) (r *ring.Ring, err error) {
	if v.Sign() < 0 {
		return nil, DomainError.New("negative value: %s", v)
	}

	r, err = ring.New(base)
	if err != nil {
		return nil, err
	}

	digits, err := integer.Digits(v, base)
	if err != nil {
		return nil, err
	}

	err = r.AppendAll(digits...)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Int returns the value of r. An empty ring is zero.
func Int(r *ring.Ring) *big.Int {
	v, err := integer.Value(r.Digits(), r.Base())
	if err != nil {
		// Rings only hold digits valid for their base.
		panic(err)
	}

	return v
}

// ToDecimal returns the value of r as a base 10 numeral without leading
// zeros. An empty ring is "0".
func ToDecimal(r *ring.Ring) string {
	if r.Empty() {
		return "0"
	}

	return Int(r).String()
}

// ChangeBase returns a new ring holding the value of r in another base.
func ChangeBase(r *ring.Ring, base int) (_ *ring.Ring, err error) {
	defer Error.WrapP(&err)

	v, err := integer.Parse(ToDecimal(r))
	if err != nil {
		return nil, err
	}

	return FromInt(v, base)
}

// Equal reports whether a and b hold the same value, whatever their bases.
func Equal(a, b Decimaler) bool {
	return a.Decimal() == b.Decimal()
}

func operands(a *ring.Ring, b Decimaler) (x, y *big.Int, err error) {
	y, err = integer.Parse(b.Decimal())
	if err != nil {
		return nil, nil, err
	}

	return Int(a), y, nil
}

// Subtract returns a new ring, in a's base, holding a - b.
func Subtract(a *ring.Ring, b Decimaler) (_ *ring.Ring, err error) {
	defer Error.WrapP(&err)

	x, y, err := operands(a, b)
	if err != nil {
		return nil, err
	}

	if x.Cmp(y) < 0 {
		return nil, DomainError.New("%s - %s is negative", x, y)
	}

	return FromInt(new(big.Int).Sub(x, y), a.Base())
}

// Divide returns a new ring, in a's base, holding a / b rounded down.
func Divide(a *ring.Ring, b Decimaler) (_ *ring.Ring, err error) {
	defer Error.WrapP(&err)

	x, y, err := operands(a, b)
	if err != nil {
		return nil, err
	}

	if y.Sign() == 0 {
		return nil, DomainError.New("division by zero")
	}

	return FromInt(new(big.Int).Quo(x, y), a.Base())
}
