package expr

import (
	"fmt"
	"slices"

	"github.com/specterops/dispatch/walk"
)

func NewCursor(e Expr) (*walk.Cursor[Expr], error) {
	switch typed := e.(type) {
	case Int, Symbol:
		return walk.NewCursor(e), nil

	case Binary:
		left, right := typed.Operands()
		return walk.NewCursor(e, left, right), nil

	default:
		return nil, fmt.Errorf("unable to create cursor for expression type %T", e)
	}
}

func Walk(e Expr, visitor walk.Visitor[Expr]) error {
	return walk.Generic(e, visitor, NewCursor)
}

// Symbols returns the distinct symbol names of the expression in sorted order.
func Symbols(e Expr) ([]string, error) {
	var (
		seen  = map[Symbol]struct{}{}
		names []string
	)

	if err := Walk(e, walk.NewSimpleVisitor(walk.OrderPrefix, func(node Expr, _ walk.VisitorHandler) {
		if symbol, isSymbol := node.(Symbol); isSymbol {
			if _, exists := seen[symbol]; !exists {
				seen[symbol] = struct{}{}
				names = append(names, string(symbol))
			}
		}
	})); err != nil {
		return nil, err
	}

	slices.Sort(names)
	return names, nil
}
