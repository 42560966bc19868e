package expr

import (
	"github.com/specterops/dispatch/cache"
)

const DefaultSimplifierCapacity = 4096

// Simplifier memoizes Simplify by node identity. Trees that share subtrees have each shared node simplified once for
// as long as its result stays in the cache. Results are the same as Simplify.
type Simplifier struct {
	results cache.Cache[Expr, Expr]
}

func NewSimplifier(results cache.Cache[Expr, Expr]) *Simplifier {
	return &Simplifier{
		results: results,
	}
}

func NewSieveSimplifier(capacity int) *Simplifier {
	return NewSimplifier(cache.NewSieve[Expr, Expr](capacity))
}

func (s *Simplifier) Simplify(e Expr) (Expr, error) {
	if _, isBinary := e.(Binary); !isBinary {
		return simplifyWith(e, s.Simplify)
	}

	if simplified, cached := s.results.Get(e); cached {
		return simplified, nil
	}

	if simplified, err := simplifyWith(e, s.Simplify); err != nil {
		return nil, err
	} else {
		s.results.Put(e, simplified)
		return simplified, nil
	}
}

func (s *Simplifier) Stats() cache.Stats {
	return s.results.Stats()
}
