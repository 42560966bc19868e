// Package profile summarizes the shape of expression and formula trees. Trees are walked with an explicit stack so
// profiling is safe for trees too deep to simplify or evaluate recursively.
package profile

import (
	"log/slog"
	"slices"

	"github.com/specterops/dispatch/cardinality"
	"github.com/specterops/dispatch/expr"
	"github.com/specterops/dispatch/logic"
	"github.com/specterops/dispatch/walk"
)

// Stats describes a tree. Nodes counts every visited node, so shared subtrees are counted once per parent that
// references them. DistinctSubtrees is a HyperLogLog estimate of how many structurally different subtrees appear.
type Stats struct {
	Nodes            int
	Leaves           int
	Depth            int
	Kinds            map[string]int
	Symbols          []string
	DistinctSubtrees uint64
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("nodes", s.Nodes),
		slog.Int("leaves", s.Leaves),
		slog.Int("depth", s.Depth),
		slog.Any("kinds", s.Kinds),
		slog.Any("symbols", s.Symbols),
		slog.Uint64("distinct_subtrees", s.DistinctSubtrees),
	)
}

type collector[N any] struct {
	walk.Visitor[N]

	stats    Stats
	depth    int
	symbols  map[string]struct{}
	subtrees cardinality.Simplex[uint64]
	classify func(node N) (kind string, symbol string, isLeaf bool)
	digest   func(node N) uint64
}

func newCollector[N any](classify func(node N) (string, string, bool), digest func(node N) uint64) *collector[N] {
	return &collector[N]{
		Visitor: walk.NewVisitor[N](),
		stats: Stats{
			Kinds: map[string]int{},
		},
		symbols:  map[string]struct{}{},
		subtrees: cardinality.NewHyperLogLog64(),
		classify: classify,
		digest:   digest,
	}
}

func (s *collector[N]) Enter(node N) {
	kind, symbol, isLeaf := s.classify(node)

	s.stats.Nodes++
	s.stats.Kinds[kind]++

	if isLeaf {
		s.stats.Leaves++
	}

	if symbol != "" {
		s.symbols[symbol] = struct{}{}
	}

	if s.depth++; s.depth > s.stats.Depth {
		s.stats.Depth = s.depth
	}
}

// Exit digests the node once its branches are done so the fingerprinter only ever looks one level down.
func (s *collector[N]) Exit(node N) {
	s.subtrees.Add(s.digest(node))
	s.depth--
}

func (s *collector[N]) finish() Stats {
	for symbol := range s.symbols {
		s.stats.Symbols = append(s.stats.Symbols, symbol)
	}

	slices.Sort(s.stats.Symbols)
	s.stats.DistinctSubtrees = s.subtrees.Cardinality()

	return s.stats
}

func classifyExpression(node expr.Expr) (string, string, bool) {
	switch typed := node.(type) {
	case expr.Int:
		return "int", "", true

	case expr.Symbol:
		return "symbol", string(typed), true

	case expr.Binary:
		return typed.Operator().String(), "", false

	default:
		return "unknown", "", false
	}
}

func classifyFormula(node logic.Formula) (string, string, bool) {
	switch typed := node.(type) {
	case logic.Bottom:
		return "bottom", "", true

	case logic.Variable:
		return "variable", string(typed), true

	case *logic.Negation:
		return "negation", "", false

	case *logic.Disjunction:
		return "disjunction", "", false

	default:
		return "unknown", "", false
	}
}

func Expression(e expr.Expr) (Stats, error) {
	var (
		fingerprinter = expr.NewFingerprinter()
		visitor       = newCollector(classifyExpression, fingerprinter.Fingerprint)
	)

	if err := expr.Walk(e, visitor); err != nil {
		return Stats{}, err
	}

	return visitor.finish(), nil
}

func Formula(f logic.Formula) (Stats, error) {
	var (
		fingerprinter = logic.NewFingerprinter()
		visitor       = newCollector(classifyFormula, fingerprinter.Fingerprint)
	)

	if err := logic.Walk(f, visitor); err != nil {
		return Stats{}, err
	}

	return visitor.finish(), nil
}
