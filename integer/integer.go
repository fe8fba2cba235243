// Package integer converts between arbitrary precision integers, base 10
// numerals and base B digit sequences.
package integer

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Base limits, matching the range of a digit byte.
const (
	MinBase = 2
	MaxBase = 256
)

// Parse reads a non-negative base 10 integer. Surrounding whitespace is
// ignored. Signs, separators and any other characters are rejected.
func Parse(s string) (i *big.Int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, Error.New("empty decimal")
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, Error.New("invalid decimal digit %q", c)
		}
	}

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, Error.New("invalid decimal")
	}

	return i, nil
}

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return Error.New("base %d outside [%d, %d]", base, MinBase, MaxBase)
	}

	return nil
}

// Digits returns the base b digits of i, most significant first.
func Digits(i *big.Int, base int) (digits []byte, err error) {
	err = checkBase(base)
	if err != nil {
		return nil, err
	}

	if i.Sign() < 0 {
		return nil, Error.New("negative value: %s", i)
	}

	// Note: big.Int has no digits for zero, but we desire zero to be an
	// actual zero digit.
	if i.Sign() == 0 {
		return []byte{0}, nil
	}

	switch {
	case base == 256:
		return i.Bytes(), nil
	case base <= 36:
		text := i.Text(base)

		digits = make([]byte, len(text))
		for j := 0; j < len(text); j++ {
			digits[j] = digitValue(text[j])
		}

		return digits, nil
	}

	n := new(big.Int).Set(i)
	b := big.NewInt(int64(base))
	m := new(big.Int)

	for n.Sign() > 0 {
		n.QuoRem(n, b, m)
		digits = append(digits, byte(m.Uint64()))
	}

	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}

	return digits, nil
}

// Value returns the integer whose base b digits, most significant first,
// are digits. No digits is zero.
func Value(digits []byte, base int) (i *big.Int, err error) {
	err = checkBase(base)
	if err != nil {
		return nil, err
	}

	for _, d := range digits {
		if int(d) >= base {
			return nil, Error.New("digit %d outside [0, %d)", d, base)
		}
	}

	i = new(big.Int)

	switch {
	case len(digits) == 0:
		return i, nil
	case base == 256:
		return i.SetBytes(digits), nil
	case base <= 36:
		var sb strings.Builder
		sb.Grow(len(digits))

		for _, d := range digits {
			sb.WriteByte(digitChar(d))
		}

		_, ok := i.SetString(sb.String(), base)
		if !ok {
			return nil, Error.New("invalid base %d numeral", base)
		}

		return i, nil
	}

	b := big.NewInt(int64(base))
	for _, d := range digits {
		i.Mul(i, b)
		i.Add(i, big.NewInt(int64(d)))
	}

	return i, nil
}

// digitValue is the value of a lower case big.Int numeral character.
func digitValue(c byte) byte {
	if c <= '9' {
		return c - '0'
	}

	return c - 'a' + 10
}

func digitChar(d byte) byte {
	if d < 10 {
		return '0' + d
	}

	return 'a' + d - 10
}
