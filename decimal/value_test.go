package decimal_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigdec/decimal"
)

func TestParseValue(t *testing.T) {
	type TC struct {
		input string
		kind  decimal.Kind
		str   string
		Mark  error
	}

	tcs := []TC{
		{input: "inf", kind: decimal.PositiveInfinity, str: "inf", Mark: oops.New("unexpected")},
		{input: "INF", kind: decimal.PositiveInfinity, str: "inf", Mark: oops.New("unexpected")},
		{input: "-inf", kind: decimal.NegativeInfinity, str: "-inf", Mark: oops.New("unexpected")},
		{input: "-Inf", kind: decimal.NegativeInfinity, str: "-inf", Mark: oops.New("unexpected")},
		{input: "10.25", kind: decimal.Finite, str: "10.25", Mark: oops.New("unexpected")},
		{input: "-3", kind: decimal.Finite, str: "-3.", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			v, err := decimal.ParseValue(tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.kind, v.Kind(), tc.Mark)
			require.Equal(t, tc.str, v.String(), tc.Mark)
			require.Equal(t, tc.kind != decimal.Finite, v.IsInf(), tc.Mark)

			d, ok := v.Decimal()
			require.Equal(t, tc.kind == decimal.Finite, ok, tc.Mark)
			if ok {
				require.True(t, d.Eq(decimal.MustParse(tc.input)), tc.Mark)
			} else {
				require.Nil(t, d, tc.Mark)
			}
		})
	}

	for _, input := range []string{"+inf", "infinity", "", "1e3", "inf.0"} {
		_, err := decimal.ParseValue(input)
		require.True(t, decimal.ParseError.Has(err), input)
	}
}

func TestValueOrder(t *testing.T) {
	ninf := decimal.Inf(-1)
	pinf := decimal.Inf(1)
	small := decimal.FiniteValue(decimal.MustParse("-1000000"))
	big := decimal.FiniteValue(decimal.MustParse("1000000"))

	ordered := []decimal.Value{ninf, small, big, pinf}

	for i := range ordered {
		for j := range ordered {
			a, b := ordered[i], ordered[j]

			require.Equal(t, i < j, a.Lt(b), "%s < %s", a, b)
			require.Equal(t, i <= j, a.Lte(b), "%s <= %s", a, b)
			require.Equal(t, i > j, a.Gt(b), "%s > %s", a, b)
			require.Equal(t, i >= j, a.Gte(b), "%s >= %s", a, b)
			require.Equal(t, i == j, a.Eq(b), "%s == %s", a, b)
		}
	}

	require.True(t, decimal.Inf(1).Eq(decimal.Inf(0)))
}

func TestValueFloat64(t *testing.T) {
	require.True(t, math.IsInf(decimal.Inf(1).Float64(), 1))
	require.True(t, math.IsInf(decimal.Inf(-1).Float64(), -1))
	require.Equal(t, 20.5, decimal.FiniteValue(decimal.MustParse("20.5")).Float64())
}

func TestValueZero(t *testing.T) {
	var v decimal.Value

	require.Equal(t, decimal.Finite, v.Kind())
	require.Equal(t, "0.", v.String())
	require.Equal(t, 0.0, v.Float64())
	require.True(t, v.Eq(decimal.FiniteValue(decimal.FromInt64(0))))

	d, ok := v.Decimal()
	require.True(t, ok)
	require.Equal(t, 0, d.Sign())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "finite", decimal.Finite.String())
	require.Equal(t, "+inf", decimal.PositiveInfinity.String())
	require.Equal(t, "-inf", decimal.NegativeInfinity.String())
	require.Equal(t, "unknown", decimal.Kind(42).String())
}
