// Package logic evaluates propositional formulas. Only falsehood, variables, negation and disjunction are stored;
// truth and conjunction are built from them by De Morgan's laws, so every formula has a single representation made of
// the four primitives.
package logic

import (
	"fmt"
	"strings"
)

type Formula interface {
	fmt.Stringer

	formula()
}

type Bottom struct{}

func (Bottom) String() string {
	return "false"
}

func (Bottom) formula() {}

type Variable string

func (s Variable) String() string {
	return string(s)
}

func (Variable) formula() {}

type Negation struct {
	Operand Formula
}

func (s *Negation) String() string {
	return render(s)
}

func (*Negation) formula() {}

type Disjunction struct {
	Left  Formula
	Right Formula
}

func (s *Disjunction) String() string {
	return render(s)
}

func (*Disjunction) formula() {}

func Not(operand Formula) Formula {
	return &Negation{
		Operand: operand,
	}
}

func Or(left, right Formula) Formula {
	return &Disjunction{
		Left:  left,
		Right: right,
	}
}

// Top returns the negation of Bottom.
func Top() Formula {
	return Not(Bottom{})
}

// Conjunction returns !(!left | !right).
func Conjunction(left, right Formula) Formula {
	return Not(Or(Not(left), Not(right)))
}

func unknownVariant(f Formula) string {
	return fmt.Sprintf("internal invariant violated: unknown formula variant %T", f)
}

func writeFormula(builder *strings.Builder, f Formula) {
	switch typed := f.(type) {
	case Bottom, Variable:
		builder.WriteString(typed.String())

	case *Negation:
		builder.WriteByte('!')
		writeFormula(builder, typed.Operand)

	case *Disjunction:
		builder.WriteByte('(')
		writeFormula(builder, typed.Left)
		builder.WriteString(" | ")
		writeFormula(builder, typed.Right)
		builder.WriteByte(')')

	default:
		panic(unknownVariant(f))
	}
}

func render(f Formula) string {
	builder := strings.Builder{}
	writeFormula(&builder, f)

	return builder.String()
}
