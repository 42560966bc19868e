package expr

import (
	"strings"
)

func writeExpr(builder *strings.Builder, e Expr) {
	switch typed := e.(type) {
	case Int, Symbol:
		builder.WriteString(typed.String())

	case Binary:
		left, right := typed.Operands()

		builder.WriteByte('(')
		writeExpr(builder, left)
		builder.WriteByte(' ')
		builder.WriteString(typed.Operator().String())
		builder.WriteByte(' ')
		writeExpr(builder, right)
		builder.WriteByte(')')

	default:
		panic(unknownVariant(e))
	}
}

// renderBinary renders the node fully parenthesized so that the output parses back to the same tree.
func renderBinary(e Binary) string {
	builder := strings.Builder{}
	writeExpr(&builder, e)

	return builder.String()
}
