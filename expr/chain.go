package expr

// BenchmarkChain builds the nested benchmark input. It starts from ((1 + 0 * x) * 3) + 12 and then wraps the tree
// depth times, alternating between (3 * e) + 1 on even steps and e / 2 on odd steps. Every chain simplifies to a
// single Int.
func BenchmarkChain(depth int) Expr {
	e := Add(Mul(Add(Int(1), Mul(Int(0), Symbol("x"))), Int(3)), Int(12))

	for step := 0; step < depth; step++ {
		if step%2 == 1 {
			e = Div(e, Int(2))
		} else {
			e = Add(Mul(Int(3), e), Int(1))
		}
	}

	return e
}

// SharedChain builds a tree of the given depth where both operands of every addition are the same subtree. The tree
// has depth + 1 distinct nodes but 2^(depth+1) - 1 nodes when unfolded.
func SharedChain(leaf Expr, depth int) Expr {
	e := leaf

	for step := 0; step < depth; step++ {
		e = Add(e, e)
	}

	return e
}
