package expr_test

import (
	"testing"

	"github.com/specterops/dispatch/expr"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	e := expr.Add(expr.Mul(expr.Add(expr.Int(1), expr.Mul(expr.Int(0), x)), expr.Int(3)), expr.Int(12))

	require.Equal(t, "(((1 + (0 * x)) * 3) + 12)", e.String())
	require.Equal(t, "(x / -2)", expr.Div(x, expr.Int(-2)).String())
	require.Equal(t, "(x - y)", expr.Sub(x, y).String())
	require.Equal(t, "7", expr.Int(7).String())
}

func TestConstruction_IsReferentiallyTransparent(t *testing.T) {
	var (
		first  = expr.Add(x, expr.Mul(expr.Int(2), y))
		second = expr.Add(x, expr.Mul(expr.Int(2), y))
	)

	require.NotSame(t, first, second)
	require.True(t, expr.Equal(first, second))
	require.Equal(t, expr.Fingerprint(first), expr.Fingerprint(second))
}

func TestEqual(t *testing.T) {
	shared := expr.Mul(x, y)

	require.True(t, expr.Equal(expr.Int(1), expr.Int(1)))
	require.False(t, expr.Equal(expr.Int(1), expr.Symbol("1")))
	require.True(t, expr.Equal(expr.Add(shared, shared), expr.Add(expr.Mul(x, y), expr.Mul(x, y))))
	require.False(t, expr.Equal(expr.Add(x, y), expr.Add(y, x)))
	require.False(t, expr.Equal(expr.Add(x, y), expr.Sub(x, y)))
	require.False(t, expr.Equal(expr.Add(x, y), x))
}

func TestFingerprint(t *testing.T) {
	distinct := []expr.Expr{
		expr.Int(1),
		expr.Symbol("1"),
		expr.Add(x, y),
		expr.Add(y, x),
		expr.Sub(x, y),
		expr.Mul(x, y),
		expr.Div(x, y),
		expr.Add(expr.Add(x, y), x),
		expr.Add(x, expr.Add(y, x)),
	}

	seen := map[uint64]expr.Expr{}

	for _, e := range distinct {
		digest := expr.Fingerprint(e)

		_, collides := seen[digest]
		require.Falsef(t, collides, "fingerprint of %s collides", e)

		seen[digest] = e
	}

	var (
		fingerprinter = expr.NewFingerprinter()
		shared        = expr.SharedChain(x, 64)
	)

	require.Equal(t, fingerprinter.Fingerprint(shared), fingerprinter.Fingerprint(expr.SharedChain(x, 64)))
}

func TestOperator(t *testing.T) {
	require.True(t, expr.OperatorAdd.IsIn(expr.OperatorSubtract, expr.OperatorAdd))
	require.False(t, expr.OperatorDivide.IsIn(expr.OperatorAdd))
	require.Greater(t, expr.OperatorMultiply.Precedence(), expr.OperatorSubtract.Precedence())

	for _, operator := range []expr.Operator{expr.OperatorAdd, expr.OperatorSubtract, expr.OperatorMultiply, expr.OperatorDivide} {
		built := operator.Build(x, y)

		binary, isBinary := built.(expr.Binary)
		require.True(t, isBinary)
		require.Equal(t, operator, binary.Operator())

		left, right := binary.Operands()
		require.Equal(t, x, left)
		require.Equal(t, y, right)
	}

	require.Panics(t, func() {
		expr.Operator("%").Build(x, y)
	})
}

func TestParse(t *testing.T) {
	testCases := []struct {
		text     string
		expected expr.Expr
	}{
		{"42", expr.Int(42)},
		{"-42", expr.Int(-42)},
		{"x_1", expr.Symbol("x_1")},
		{"1 + 2 * 3", expr.Add(expr.Int(1), expr.Mul(expr.Int(2), expr.Int(3)))},
		{"(1 + 2) * 3", expr.Mul(expr.Add(expr.Int(1), expr.Int(2)), expr.Int(3))},
		{"8 - 3 - 2", expr.Sub(expr.Sub(expr.Int(8), expr.Int(3)), expr.Int(2))},
		{"x / 2 / y", expr.Div(expr.Div(x, expr.Int(2)), y)},
		{"x * -5", expr.Mul(x, expr.Int(-5))},
		{"x--5", expr.Sub(x, expr.Int(-5))},
		{"-9223372036854775808", expr.Int(-9223372036854775808)},
	}

	for _, testCase := range testCases {
		parsed, err := expr.Parse(testCase.text)

		require.NoErrorf(t, err, "parsing %s", testCase.text)
		require.Equalf(t, testCase.expected, parsed, "parsing %s", testCase.text)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for depth := 0; depth < 8; depth++ {
		chain := expr.BenchmarkChain(depth)

		parsed, err := expr.Parse(chain.String())
		require.NoError(t, err)
		require.True(t, expr.Equal(chain, parsed))
	}

	requireSimplified(t, expr.Int(15), expr.MustParse("(1 + 0*x)*3 + 12"))
}

func TestParse_Errors(t *testing.T) {
	for _, text := range []string{
		"",
		"1 +",
		"(1 + 2",
		"1 2",
		"-x",
		"9223372036854775808",
		"a $ b",
		"(1))",
	} {
		_, err := expr.Parse(text)

		require.Errorf(t, err, "parsing %q", text)
		require.ErrorIsf(t, err, expr.ErrInvalidExpression, "parsing %q", text)
	}

	require.Panics(t, func() {
		expr.MustParse("*")
	})
}

func TestSymbols(t *testing.T) {
	symbols, err := expr.Symbols(expr.MustParse("(y + x) * (x - 3) / z"))
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", "z"}, symbols)

	symbols, err = expr.Symbols(expr.Int(3))
	require.NoError(t, err)
	require.Empty(t, symbols)
}
