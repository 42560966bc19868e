// Package expr models integer arithmetic expressions as an immutable tree and simplifies them with local algebraic
// rules. Leaves are Int and Symbol values; interior nodes are the four binary operators. Children are held by shared
// reference, so the same subtree may appear under any number of parents.
package expr

import (
	"fmt"
	"strconv"
)

type Operator string

const (
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
	OperatorMultiply Operator = "*"
	OperatorDivide   Operator = "/"
)

func (s Operator) IsIn(others ...Operator) bool {
	for _, other := range others {
		if s == other {
			return true
		}
	}

	return false
}

func (s Operator) String() string {
	return string(s)
}

// Precedence returns the binding strength of the operator. Multiplicative operators bind tighter than additive ones.
func (s Operator) Precedence() int {
	switch s {
	case OperatorMultiply, OperatorDivide:
		return 2

	case OperatorAdd, OperatorSubtract:
		return 1

	default:
		return 0
	}
}

// Build constructs a new node for this operator over the given operands.
func (s Operator) Build(left, right Expr) Expr {
	switch s {
	case OperatorAdd:
		return Add(left, right)

	case OperatorSubtract:
		return Sub(left, right)

	case OperatorMultiply:
		return Mul(left, right)

	case OperatorDivide:
		return Div(left, right)

	default:
		panic(fmt.Sprintf("internal invariant violated: unknown operator %q", string(s)))
	}
}

// Expr is the closed set of expression variants: Int, Symbol, *Addition, *Subtraction, *Multiplication and
// *Division.
type Expr interface {
	fmt.Stringer

	expr()
}

// Binary is implemented by every interior node.
type Binary interface {
	Expr

	Operator() Operator
	Operands() (Expr, Expr)
}

type Int int64

func (s Int) String() string {
	return strconv.FormatInt(int64(s), 10)
}

func (Int) expr() {}

type Symbol string

func (s Symbol) String() string {
	return string(s)
}

func (Symbol) expr() {}

type Addition struct {
	Left  Expr
	Right Expr
}

func (s *Addition) Operator() Operator {
	return OperatorAdd
}

func (s *Addition) Operands() (Expr, Expr) {
	return s.Left, s.Right
}

func (s *Addition) String() string {
	return renderBinary(s)
}

func (*Addition) expr() {}

type Subtraction struct {
	Left  Expr
	Right Expr
}

func (s *Subtraction) Operator() Operator {
	return OperatorSubtract
}

func (s *Subtraction) Operands() (Expr, Expr) {
	return s.Left, s.Right
}

func (s *Subtraction) String() string {
	return renderBinary(s)
}

func (*Subtraction) expr() {}

type Multiplication struct {
	Left  Expr
	Right Expr
}

func (s *Multiplication) Operator() Operator {
	return OperatorMultiply
}

func (s *Multiplication) Operands() (Expr, Expr) {
	return s.Left, s.Right
}

func (s *Multiplication) String() string {
	return renderBinary(s)
}

func (*Multiplication) expr() {}

type Division struct {
	Left  Expr
	Right Expr
}

func (s *Division) Operator() Operator {
	return OperatorDivide
}

func (s *Division) Operands() (Expr, Expr) {
	return s.Left, s.Right
}

func (s *Division) String() string {
	return renderBinary(s)
}

func (*Division) expr() {}

// Add, Sub, Mul and Div always allocate a new node. Operands are referenced, never copied or mutated.
func Add(left, right Expr) Expr {
	return &Addition{
		Left:  left,
		Right: right,
	}
}

func Sub(left, right Expr) Expr {
	return &Subtraction{
		Left:  left,
		Right: right,
	}
}

func Mul(left, right Expr) Expr {
	return &Multiplication{
		Left:  left,
		Right: right,
	}
}

func Div(left, right Expr) Expr {
	return &Division{
		Left:  left,
		Right: right,
	}
}

func unknownVariant(e Expr) string {
	return fmt.Sprintf("internal invariant violated: unknown expression variant %T", e)
}
