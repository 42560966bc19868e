package logic

import (
	"fmt"
	"slices"

	"github.com/specterops/dispatch/walk"
)

func NewCursor(f Formula) (*walk.Cursor[Formula], error) {
	switch typed := f.(type) {
	case Bottom, Variable:
		return walk.NewCursor(f), nil

	case *Negation:
		return walk.NewCursor(f, typed.Operand), nil

	case *Disjunction:
		return walk.NewCursor(f, typed.Left, typed.Right), nil

	default:
		return nil, fmt.Errorf("unable to create cursor for formula type %T", f)
	}
}

func Walk(f Formula, visitor walk.Visitor[Formula]) error {
	return walk.Generic(f, visitor, NewCursor)
}

// Variables returns the distinct variable names of the formula in sorted order.
func Variables(f Formula) ([]string, error) {
	var (
		seen  = map[string]struct{}{}
		names []string
	)

	if err := Walk(f, walk.NewSimpleVisitor(walk.OrderPrefix, func(node Formula, _ walk.VisitorHandler) {
		if variable, isVariable := node.(Variable); isVariable {
			if _, exists := seen[string(variable)]; !exists {
				seen[string(variable)] = struct{}{}
				names = append(names, string(variable))
			}
		}
	})); err != nil {
		return nil, err
	}

	slices.Sort(names)
	return names, nil
}
