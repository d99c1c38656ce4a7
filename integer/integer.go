// Package integer provides arbitrary precision integer helpers shared by the
// rational types: a binary greatest common divisor and powers of ten.
package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("integer")

// ErrUndefined is returned by GCD when both operands are zero.
var ErrUndefined = Error.New("gcd(0, 0) is undefined")

var ten = big.NewInt(10)

// GCD returns the greatest common divisor of a and b using the binary
// algorithm. The result is always non-negative and a and b are not modified.
//
// If either operand is zero the absolute value of the other is returned. Both
// operands being zero is an error.
func GCD(a, b *big.Int) (*big.Int, error) {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)

	switch {
	case x.Sign() == 0 && y.Sign() == 0:
		return nil, ErrUndefined
	case x.Sign() == 0:
		return y, nil
	case y.Sign() == 0:
		return x, nil
	case x.Cmp(y) == 0:
		return x, nil
	}

	// Common power of two: 2^p.
	p := StripTwos(x)
	if q := StripTwos(y); q < p {
		p = q
	}

	// Both are odd from here on, so the difference is even.
	for x.Cmp(y) != 0 {
		if y.Cmp(x) > 0 {
			x, y = y, x
		}

		x.Sub(x, y)
		StripTwos(x)
	}

	return x.Lsh(x, p), nil
}

// StripTwos divides x in place by the largest power of two that divides it
// and returns that power. Zero is left unchanged.
func StripTwos(x *big.Int) uint {
	if x.Sign() == 0 {
		return 0
	}

	n := x.TrailingZeroBits()
	x.Rsh(x, n)

	return n
}

// Pow10 returns 10^n. Negative n yields 1.
func Pow10(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}
