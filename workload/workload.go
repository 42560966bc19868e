// Package workload holds helpers shared by the registered workloads.
package workload

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Options resolves the workload-specific configuration. A nil value selects the supplied default; any other type than
// T is an error.
func Options[T any](name string, value any, fallback T) (T, error) {
	switch typed := value.(type) {
	case nil:
		return fallback, nil

	case T:
		return typed, nil

	case *T:
		return *typed, nil

	default:
		return fallback, fmt.Errorf("workload %s: unexpected configuration type %T", name, value)
	}
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Stopwatch accumulates time across many short measured sections.
type Stopwatch struct {
	elapsed time.Duration
	started time.Time
}

func (s *Stopwatch) Start() {
	s.started = time.Now()
}

func (s *Stopwatch) Stop() {
	s.elapsed += time.Since(s.started)
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}
