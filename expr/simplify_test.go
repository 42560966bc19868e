package expr_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/specterops/dispatch/cache"
	"github.com/specterops/dispatch/expr"
	"github.com/stretchr/testify/require"
)

var (
	x = expr.Symbol("x")
	y = expr.Symbol("y")
)

func requireSimplified(t *testing.T, expected, e expr.Expr) {
	t.Helper()

	simplified, err := expr.Simplify(e)
	require.NoError(t, err)
	require.Truef(t, expr.Equal(expected, simplified), "expected %s but got %s", expected, simplified)
}

func TestSimplify_Canonical(t *testing.T) {
	requireSimplified(t, expr.Int(1), expr.Add(expr.Int(1), expr.Mul(expr.Int(0), x)))
	requireSimplified(t, expr.Int(15), expr.Add(expr.Mul(expr.Add(expr.Int(1), expr.Mul(expr.Int(0), x)), expr.Int(3)), expr.Int(12)))
}

func TestSimplify_IntegerFolding(t *testing.T) {
	testCases := []struct {
		a, b int64
	}{
		{0, 0},
		{1, 7},
		{-3, 4},
		{12, -12},
		{math.MaxInt64, 2},
		{math.MinInt64, -1},
	}

	for _, testCase := range testCases {
		a, b := expr.Int(testCase.a), expr.Int(testCase.b)

		requireSimplified(t, a*b, expr.Mul(a, b))
		requireSimplified(t, a+b, expr.Add(a, b))
		requireSimplified(t, a-b, expr.Sub(a, b))
	}

	// Overflow wraps
	requireSimplified(t, expr.Int(-2), expr.Mul(expr.Int(math.MaxInt64), expr.Int(2)))
	requireSimplified(t, expr.Int(math.MinInt64), expr.Add(expr.Int(math.MaxInt64), expr.Int(1)))
}

func TestSimplify_DivisionByZero(t *testing.T) {
	for _, a := range []int64{0, 1, -9, math.MaxInt64} {
		_, err := expr.Simplify(expr.Div(expr.Int(a), expr.Int(0)))
		require.ErrorIs(t, err, expr.ErrDivisionByZero)
	}

	_, err := expr.Simplify(expr.Add(x, expr.Mul(y, expr.Div(expr.Int(1), expr.Sub(expr.Int(2), expr.Int(2))))))
	require.ErrorIs(t, err, expr.ErrDivisionByZero)

	_, err = expr.SimplifyOneLevel(expr.Div(expr.Int(3), expr.Int(0)))
	require.ErrorIs(t, err, expr.ErrDivisionByZero)

	require.Panics(t, func() {
		expr.MustSimplify(expr.Div(expr.Int(3), expr.Int(0)))
	})

	// Only two integer operands are divided, so a symbolic dividend over zero is left alone
	requireSimplified(t, expr.Div(x, expr.Int(0)), expr.Div(x, expr.Int(0)))
}

func TestSimplifyOneLevel_Rules(t *testing.T) {
	testCases := []struct {
		name     string
		input    expr.Expr
		expected expr.Expr
	}{
		{"int plus int", expr.Add(expr.Int(2), expr.Int(3)), expr.Int(5)},
		{"zero plus y", expr.Add(expr.Int(0), y), y},
		{"x plus zero", expr.Add(x, expr.Int(0)), x},
		{"x plus y", expr.Add(x, y), expr.Add(x, y)},
		{"int minus int", expr.Sub(expr.Int(5), expr.Int(7)), expr.Int(-2)},
		{"x minus zero", expr.Sub(x, expr.Int(0)), x},
		{"x minus one", expr.Sub(x, expr.Int(1)), expr.Sub(x, expr.Int(1))},
		{"int times int", expr.Mul(expr.Int(6), expr.Int(7)), expr.Int(42)},
		{"zero times y", expr.Mul(expr.Int(0), y), expr.Int(0)},
		{"one times y", expr.Mul(expr.Int(1), y), y},
		{"x times zero", expr.Mul(x, expr.Int(0)), expr.Int(0)},
		{"x times one", expr.Mul(x, expr.Int(1)), x},
		{"x times three keeps order", expr.Mul(x, expr.Int(3)), expr.Mul(x, expr.Int(3))},
		{"int over int", expr.Div(expr.Int(7), expr.Int(2)), expr.Int(3)},
		{"division truncates", expr.Div(expr.Int(-7), expr.Int(2)), expr.Int(-3)},
		{"zero over y", expr.Div(expr.Int(0), y), expr.Int(0)},
		{"x over one", expr.Div(x, expr.Int(1)), x},
		{"x over two", expr.Div(x, expr.Int(2)), expr.Div(x, expr.Int(2))},
		{"int leaf", expr.Int(9), expr.Int(9)},
		{"symbol leaf", x, x},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			simplified, err := expr.SimplifyOneLevel(testCase.input)

			require.NoError(t, err)
			require.Equal(t, testCase.expected, simplified)
		})
	}
}

// Zero minus y folds to y rather than to the negation of y. This pins the existing rule so a change to it is
// deliberate.
func TestSimplifyOneLevel_ZeroMinusFoldsToOperand(t *testing.T) {
	simplified, err := expr.SimplifyOneLevel(expr.Sub(expr.Int(0), y))
	require.NoError(t, err)
	require.Equal(t, y, simplified)

	requireSimplified(t, expr.Int(-5), expr.Sub(expr.Int(0), expr.Int(5)))
	requireSimplified(t, expr.Add(x, y), expr.Sub(expr.Int(0), expr.Add(x, y)))
}

func TestSimplifyOneLevel_ReturnsFreshNode(t *testing.T) {
	original := expr.Add(x, y)

	simplified, err := expr.SimplifyOneLevel(original)
	require.NoError(t, err)
	require.True(t, expr.Equal(original, simplified))
	require.NotSame(t, original, simplified)
}

func TestSimplifyOneLevel_OnlyInspectsRoot(t *testing.T) {
	var (
		e       = expr.Add(expr.Int(1), expr.Mul(expr.Int(0), x))
		current = e
	)

	for pass := 0; pass < 5; pass++ {
		next, err := expr.SimplifyOneLevel(current)
		require.NoError(t, err)

		current = next
	}

	require.True(t, expr.Equal(e, current), "one level simplification never reaches nested patterns")
	requireSimplified(t, expr.Int(1), current)
}

func TestSimplify_Leaves(t *testing.T) {
	requireSimplified(t, expr.Int(-4), expr.Int(-4))
	requireSimplified(t, x, x)
	requireSimplified(t, expr.Mul(x, y), expr.Mul(x, y))
}

func TestSimplify_DoesNotMutate(t *testing.T) {
	var (
		shared = expr.Mul(expr.Int(0), x)
		e      = expr.Add(expr.Add(shared, expr.Int(2)), shared)
		before = e.String()
	)

	requireSimplified(t, expr.Int(2), e)
	require.Equal(t, before, e.String())
	require.Equal(t, expr.Mul(expr.Int(0), x), shared)
}

func TestSimplify_AssociativeChainsAreNotCombined(t *testing.T) {
	var (
		chain       = expr.Add(expr.Add(x, expr.Int(1)), expr.Int(2))
		product     = expr.Mul(expr.Int(2), expr.Mul(expr.Int(3), x))
		difference  = expr.Sub(expr.Add(x, expr.Int(3)), expr.Int(3))
		irreducible = []expr.Expr{chain, product, difference}
	)

	for _, e := range irreducible {
		requireSimplified(t, e, e)

		fixed, passes, err := expr.SimplifyFixedPoint(e, 10)
		require.NoError(t, err)
		require.Equal(t, 1, passes)
		require.True(t, expr.Equal(e, fixed))
	}
}

func TestSimplifyFixedPoint(t *testing.T) {
	fixed, passes, err := expr.SimplifyFixedPoint(expr.BenchmarkChain(6), 10)
	require.NoError(t, err)
	require.Equal(t, 2, passes)
	require.Equal(t, expr.Int(53), fixed)

	_, _, err = expr.SimplifyFixedPoint(expr.Div(expr.Int(1), expr.Int(0)), 3)
	require.ErrorIs(t, err, expr.ErrDivisionByZero)

	unchanged, passes, err := expr.SimplifyFixedPoint(x, 0)
	require.NoError(t, err)
	require.Zero(t, passes)
	require.Equal(t, x, unchanged)
}

func randomExpr(rng *rand.Rand, depth int) expr.Expr {
	if depth == 0 || rng.IntN(4) == 0 {
		if rng.IntN(2) == 0 {
			return expr.Int(rng.IntN(4))
		}

		return expr.Symbol(string(rune('a' + rng.IntN(3))))
	}

	var (
		left  = randomExpr(rng, depth-1)
		right = randomExpr(rng, depth-1)
	)

	switch rng.IntN(4) {
	case 0:
		return expr.Add(left, right)
	case 1:
		return expr.Sub(left, right)
	case 2:
		return expr.Mul(left, right)
	default:
		return expr.Div(left, right)
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))

	for iteration := 0; iteration < 500; iteration++ {
		e := randomExpr(rng, 6)

		once, err := expr.Simplify(e)
		if err != nil {
			require.ErrorIs(t, err, expr.ErrDivisionByZero)
			continue
		}

		twice, err := expr.Simplify(once)
		require.NoError(t, err)
		require.Truef(t, expr.Equal(once, twice), "simplify(%s) = %s but simplify again = %s", e, once, twice)
	}
}

func TestBenchmarkChain(t *testing.T) {
	for depth, expected := range []expr.Int{15, 46, 23, 70, 35, 106, 53} {
		requireSimplified(t, expected, expr.BenchmarkChain(depth))
	}
}

func TestSimplifier_MatchesSimplify(t *testing.T) {
	var (
		rng        = rand.New(rand.NewPCG(13, 14))
		simplifier = expr.NewSieveSimplifier(8)
	)

	for iteration := 0; iteration < 200; iteration++ {
		e := randomExpr(rng, 6)

		expected, expectedErr := expr.Simplify(e)
		actual, actualErr := simplifier.Simplify(e)

		if expectedErr != nil {
			require.ErrorIs(t, actualErr, expr.ErrDivisionByZero)
		} else {
			require.NoError(t, actualErr)
			require.True(t, expr.Equal(expected, actual))
		}
	}
}

func TestSimplifier_SharedSubtrees(t *testing.T) {
	var (
		simplifier = expr.NewSimplifier(cache.NewNonExpiringMapCache[expr.Expr, expr.Expr](128))
		shared     = expr.SharedChain(expr.Int(1), 40)
	)

	simplified, err := simplifier.Simplify(shared)
	require.NoError(t, err)
	require.Equal(t, expr.Int(1<<40), simplified)

	stats := simplifier.Stats()
	require.Equal(t, int64(39), stats.Hits)
	require.Equal(t, int64(40), stats.Misses)
	require.Equal(t, 40, stats.Size)

	requireSimplified(t, expr.Int(1<<10), expr.SharedChain(expr.Int(1), 10))
}
