package decimal

import (
	"math/big"
	"strings"

	"github.com/calebcase/bigdec/integer"
)

const (
	// FormatDigits is the number of fractional digits computed by String.
	FormatDigits = 56

	// DisplayDigits is the number of fractional digits String shows before
	// eliding the rest with "...".
	DisplayDigits = 54
)

var formatScale = integer.Pow10(FormatDigits)

// Int returns num/den truncated toward zero.
func (d *Decimal) Int() *big.Int {
	return new(big.Int).Quo(d.n(), d.d())
}

// Trunc returns the integer part of d, truncated toward zero, as a Decimal.
// For negative values this is not the mathematical floor: -2.5 becomes -2.
func (d *Decimal) Trunc() *Decimal {
	return frac(d.Int(), big.NewInt(1))
}

// Float64 returns an approximation of d. Numerator and denominator are
// rounded to float64 separately and then divided, so components beyond
// float64 range give NaN, ±Inf or 0 even when the quotient itself is
// moderate. Results of Ln, Exp and Pow routinely reach that size; convert
// those through big.Rat or String instead.
func (d *Decimal) Float64() float64 {
	n, _ := new(big.Float).SetInt(d.n()).Float64()
	m, _ := new(big.Float).SetInt(d.d()).Float64()

	return n / m
}

// String formats d as "<integer>.<fraction>".
//
// The fraction holds up to FormatDigits digits with trailing zeros removed.
// When more than DisplayDigits remain the fraction is cut there and "..." is
// appended. Whole numbers keep the point: 20 formats as "20.".
func (d *Decimal) String() string {
	num := new(big.Int).Abs(d.n())
	den := new(big.Int).Abs(d.d())

	left, rem := new(big.Int).QuoRem(num, den, new(big.Int))

	right := rem.Mul(rem, formatScale)
	right.Quo(right, den)

	fraction := right.String()
	if right.Sign() != 0 {
		fraction = strings.Repeat("0", FormatDigits-len(fraction)) + fraction
	}
	fraction = strings.TrimRight(fraction, "0")

	if len(fraction) > DisplayDigits {
		fraction = fraction[:DisplayDigits] + "..."
	}

	sign := ""
	if d.Sign() < 0 {
		sign = "-"
	}

	return sign + left.String() + "." + fraction
}
