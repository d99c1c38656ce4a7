// Package decimal provides an exact rational base 10 number.
//
// The equation for a decimal number is:
//
//  number = num / den
//
// Where num and den are arbitrary precision integers. Decimal strings are
// read with a power of ten denominator. For example:
//
//  10.25 = 1025 / 10^2
//
// Values are not kept in lowest terms. Arithmetic composes the pairs directly
// and the digit counts grow with every operation until Reduce is called:
//
//  | Operation | Result            |
//  |-----------|-------------------|
//  | a/d + A/D | (aD + Ad) / dD    |
//  | a/d - A/D | (aD - Ad) / dD    |
//  | a/d * A/D | aA / dD           |
//  | a/d / A/D | aD / Ad           |
//  | a/d ? A/D | aD ? Ad           |
//  |-----------|-------------------|
//
// Sign
//
// The sign may sit in either component. Comparisons cross multiply without
// looking at the denominators, so they are only correct when both
// denominators are positive. Values produced by Parse always have positive
// denominators; values built with New may not. Canonical moves the sign into
// the numerator.
//
// Approximations
//
// Ln, Exp and Pow are fixed iteration series with no convergence check. The
// iteration counts may be overridden per call (LnN, ExpN, PowN):
//
//  | Function | Series                                  | Default |
//  |----------|-----------------------------------------|---------|
//  | ln(x)    | 2 * sum z^k/k, k odd, z = (x-1)/(x+1)   | 10      |
//  | e^y      | sum y^k/k!                              | 36      |
//  | x^(w+r)  | x^w * e^(r ln x)                        | 34      |
//  |----------|-----------------------------------------|---------|
//
// Display
//
// String prints up to 56 fractional digits, trailing zeros removed, and
// elides anything past 54 digits:
//
//  1/3   => 0.333333333333333333333333333333333333333333333333333333...
//  41/2  => 20.5
//  20    => 20.
//
// Infinity
//
// Value wraps a Decimal together with a Kind so that "inf" and "-inf" can be
// represented without storing a sentinel in the integer fields.
package decimal
