package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/calebcase/bigdec/integer"
)

// Parse reads a fixed point decimal string such as "10.25", "-3", ".5" or
// "7.". The result is num/10^n where n is the number of digits after the
// point. Anything else (empty input, a leading '+', exponents, separators,
// whitespace) is a ParseError.
func Parse(s string) (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	return parse(s)
}

func parse(s string) (*Decimal, error) {
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")

	dot := -1
	digits := 0

	for i := 0; i < len(body); i++ {
		c := body[i]

		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && dot == -1:
			dot = i
		case c == '.':
			return nil, ParseError.New("multiple decimal points in %q", s)
		default:
			return nil, ParseError.New("invalid character %q at offset %d in %q", c, i+len(s)-len(body), s)
		}
	}

	if digits == 0 {
		return nil, ParseError.New("no digits in %q", s)
	}

	scale := 0
	if dot != -1 {
		scale = len(body) - dot - 1
		body = body[:dot] + body[dot+1:]
	}

	num, ok := new(big.Int).SetString(body, 10)
	if !ok {
		return nil, ParseError.New("invalid integer %q", s)
	}

	if neg {
		num.Neg(num)
	}

	return frac(num, integer.Pow10(scale)), nil
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(s string) *Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// FromFloat64 converts f through its shortest fixed point decimal
// representation. The result is exact for that string, so precision is
// already bounded by the float64 itself.
func FromFloat64(f float64) (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ParseError.New("not a finite number: %v", f)
	}

	return parse(strconv.FormatFloat(f, 'f', -1, 64))
}
