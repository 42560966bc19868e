// Package simplify registers the expression workload. Every iteration builds a fresh benchmark chain and simplifies
// it, optionally through a memoizing simplifier.
package simplify

import (
	"context"
	"fmt"

	"github.com/specterops/dispatch"
	"github.com/specterops/dispatch/cache"
	"github.com/specterops/dispatch/config"
	"github.com/specterops/dispatch/expr"
	"github.com/specterops/dispatch/workload"
)

const Name = "expr"

func init() {
	dispatch.Register(Name, New)
}

type Workload struct {
	iterations int
	options    config.ExprConfig
}

func New(_ context.Context, cfg dispatch.Config) (dispatch.Workload, error) {
	options, err := workload.Options(Name, cfg.WorkloadConfig, config.Default().Workloads.Expr)
	if err != nil {
		return nil, err
	}

	if options.Depth < 0 {
		return nil, fmt.Errorf("workload %s: depth must not be negative, got %d", Name, options.Depth)
	}

	if options.Memoize && options.CacheCapacity <= 0 {
		return nil, fmt.Errorf("workload %s: cache capacity must be positive, got %d", Name, options.CacheCapacity)
	}

	switch options.CachePolicy {
	case config.CacheSieve, config.CacheMap:
	default:
		return nil, fmt.Errorf("workload %s: unknown cache policy %q", Name, options.CachePolicy)
	}

	return &Workload{
		iterations: cfg.Iterations,
		options:    options,
	}, nil
}

func (s *Workload) Name() string {
	return Name
}

func (s *Workload) Run(ctx context.Context) (dispatch.Result, error) {
	var (
		checksum  = dispatch.NewChecksum()
		stopwatch workload.Stopwatch
		simplify  = expr.Simplify
	)

	if s.options.Memoize {
		if s.options.CachePolicy == config.CacheMap {
			simplify = expr.NewSimplifier(cache.NewNonExpiringMapCache[expr.Expr, expr.Expr](s.options.CacheCapacity)).Simplify
		} else {
			simplify = expr.NewSieveSimplifier(s.options.CacheCapacity).Simplify
		}
	}

	for iteration := 0; iteration < s.iterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return dispatch.Result{
				Iterations: iteration,
				Elapsed:    stopwatch.Elapsed(),
			}, err
		}

		chain := expr.BenchmarkChain(s.options.Depth)

		stopwatch.Start()
		simplified, err := simplify(chain)
		stopwatch.Stop()

		if err != nil {
			return dispatch.Result{
				Iterations: iteration,
				Elapsed:    stopwatch.Elapsed(),
			}, err
		}

		if value, isInt := simplified.(expr.Int); isInt {
			checksum.Add(uint64(value))
		} else {
			checksum.Add(expr.Fingerprint(simplified))
		}
	}

	return dispatch.Result{
		Iterations: s.iterations,
		Elapsed:    stopwatch.Elapsed(),
		Checksum:   checksum.Sum64(),
	}, nil
}
