package expr

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
)

func foldAdd(left, right Expr) Expr {
	leftInt, leftIsInt := left.(Int)
	rightInt, rightIsInt := right.(Int)

	switch {
	case leftIsInt && rightIsInt:
		return leftInt + rightInt

	case leftIsInt && leftInt == 0:
		return right

	case rightIsInt && rightInt == 0:
		return left

	default:
		return Add(left, right)
	}
}

// foldSub mirrors addition for a zero left operand: 0 - y folds to y, not to the negation of y.
func foldSub(left, right Expr) Expr {
	leftInt, leftIsInt := left.(Int)
	rightInt, rightIsInt := right.(Int)

	switch {
	case leftIsInt && rightIsInt:
		return leftInt - rightInt

	case leftIsInt && leftInt == 0:
		return right

	case rightIsInt && rightInt == 0:
		return left

	default:
		return Sub(left, right)
	}
}

func foldMul(left, right Expr) Expr {
	leftInt, leftIsInt := left.(Int)
	rightInt, rightIsInt := right.(Int)

	switch {
	case leftIsInt && rightIsInt:
		return leftInt * rightInt

	case leftIsInt && leftInt == 0:
		return Int(0)

	case leftIsInt && leftInt == 1:
		return right

	case rightIsInt && rightInt == 0:
		return Int(0)

	case rightIsInt && rightInt == 1:
		return left

	default:
		return Mul(left, right)
	}
}

func foldDiv(left, right Expr) (Expr, error) {
	leftInt, leftIsInt := left.(Int)
	rightInt, rightIsInt := right.(Int)

	switch {
	case leftIsInt && rightIsInt:
		if rightInt == 0 {
			return nil, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, leftInt)
		}

		return leftInt / rightInt, nil

	case leftIsInt && leftInt == 0:
		return Int(0), nil

	case rightIsInt && rightInt == 1:
		return left, nil

	default:
		return Div(left, right), nil
	}
}

// Fold applies the reduction rules of the operator to a pair of operands. The operands are inspected as they are;
// nothing beneath them is visited.
func Fold(operator Operator, left, right Expr) (Expr, error) {
	switch operator {
	case OperatorAdd:
		return foldAdd(left, right), nil

	case OperatorSubtract:
		return foldSub(left, right), nil

	case OperatorMultiply:
		return foldMul(left, right), nil

	case OperatorDivide:
		return foldDiv(left, right)

	default:
		panic(fmt.Sprintf("internal invariant violated: unknown operator %q", string(operator)))
	}
}

// SimplifyOneLevel applies the reduction rules of the root operator to its two operands. Leaves are returned
// unchanged. When no rule applies the result is a fresh node with the same operator and operands.
func SimplifyOneLevel(e Expr) (Expr, error) {
	switch typed := e.(type) {
	case Int, Symbol:
		return e, nil

	case *Addition:
		return foldAdd(typed.Left, typed.Right), nil

	case *Subtraction:
		return foldSub(typed.Left, typed.Right), nil

	case *Multiplication:
		return foldMul(typed.Left, typed.Right), nil

	case *Division:
		return foldDiv(typed.Left, typed.Right)

	default:
		panic(unknownVariant(e))
	}
}

type simplifyFunc func(e Expr) (Expr, error)

func simplifyBinary(operator Operator, left, right Expr, recurse simplifyFunc) (Expr, error) {
	if simplifiedLeft, err := recurse(left); err != nil {
		return nil, err
	} else if simplifiedRight, err := recurse(right); err != nil {
		return nil, err
	} else if folded, err := Fold(operator, simplifiedLeft, simplifiedRight); err != nil {
		return nil, err
	} else {
		return SimplifyOneLevel(folded)
	}
}

func simplifyWith(e Expr, recurse simplifyFunc) (Expr, error) {
	switch typed := e.(type) {
	case Int, Symbol:
		return e, nil

	case *Addition:
		return simplifyBinary(OperatorAdd, typed.Left, typed.Right, recurse)

	case *Subtraction:
		return simplifyBinary(OperatorSubtract, typed.Left, typed.Right, recurse)

	case *Multiplication:
		return simplifyBinary(OperatorMultiply, typed.Left, typed.Right, recurse)

	case *Division:
		return simplifyBinary(OperatorDivide, typed.Left, typed.Right, recurse)

	default:
		panic(unknownVariant(e))
	}
}

// Simplify rewrites the tree bottom up in a single pass. Each node has its children simplified first, is rebuilt
// through the operator's reduction rules and then has SimplifyOneLevel applied to the rebuilt result. Only local
// rules run, so constants separated by a symbol in an associative chain, such as (x + 1) + 2, are never combined.
// Recursion depth equals tree depth.
func Simplify(e Expr) (Expr, error) {
	return simplifyWith(e, Simplify)
}

func MustSimplify(e Expr) Expr {
	if simplified, err := Simplify(e); err != nil {
		panic(err)
	} else {
		return simplified
	}
}

// SimplifyFixedPoint calls Simplify until the result stops changing structurally or maxPasses calls have been made.
// It returns the last result and the number of passes that ran. A tree that Simplify already reduced reports a
// single pass.
func SimplifyFixedPoint(e Expr, maxPasses int) (Expr, int, error) {
	current := e

	for pass := 1; pass <= maxPasses; pass++ {
		if next, err := Simplify(current); err != nil {
			return nil, pass, err
		} else if Equal(next, current) {
			return next, pass, nil
		} else {
			current = next
		}
	}

	return current, maxPasses, nil
}
