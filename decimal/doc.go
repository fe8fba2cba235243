// Package decimal converts digit rings to and from base 10 numerals and
// provides arithmetic over them.
//
// The base 10 numeral is the interchange format between rings of different
// bases. Conversion goes through an arbitrary precision integer:
//
//  decimal numeral  <-->  big.Int  <-->  ring of base B digits
//
// For example, in base 8:
//
//  | Decimal | Octal | Ring          |
//  |---------|-------|---------------|
//  | 0       | 0     | [0]           |
//  | 7       | 7     | [7]           |
//  | 8       | 10    | [1, 0]        |
//  | 83      | 123   | [1, 2, 3]     |
//  | 4095    | 7777  | [7, 7, 7, 7]  |
//  |---------|-------|---------------|
//
// Every conversion produces a new ring; the source ring is never modified
// and never shares cells with the result. Leading zero digits in a ring do
// not change its value, so they do not survive a round trip through a
// numeral.
//
// Malformed Input
//
// FromDecimal accepts an unsigned base 10 numeral, optionally surrounded by
// whitespace. Empty or malformed text is not an error: it produces the zero
// ring and reports defaulted as true, so callers can tell it apart from a
// genuine "0". Callers that want a hard failure should use integer.Parse and
// FromInt.
//
// Arithmetic
//
// Subtract and Divide take their second operand as a Decimaler, so any value
// able to report itself as a decimal numeral can take part. The result is a
// ring in the first operand's base. A negative difference or a zero divisor
// is a DomainError; values are never clamped or defaulted.
package decimal
