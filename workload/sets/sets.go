// Package sets registers the sorted set workload. Every iteration draws two random sets and computes their union and
// intersection.
package sets

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/specterops/dispatch"
	"github.com/specterops/dispatch/config"
	"github.com/specterops/dispatch/sortedset"
	"github.com/specterops/dispatch/workload"
)

const Name = "sets"

func init() {
	dispatch.Register(Name, New)
}

type Workload struct {
	seed       uint64
	iterations int
	options    config.SetsConfig
}

func New(_ context.Context, cfg dispatch.Config) (dispatch.Workload, error) {
	options, err := workload.Options(Name, cfg.WorkloadConfig, config.Default().Workloads.Sets)
	if err != nil {
		return nil, err
	}

	if options.Limit == 0 {
		return nil, fmt.Errorf("workload %s: limit must be positive", Name)
	}

	return &Workload{
		seed:       cfg.Seed,
		iterations: cfg.Iterations,
		options:    options,
	}, nil
}

func (s *Workload) Name() string {
	return Name
}

func randomSet(rng *rand.Rand, size int, limit uint32) []uint32 {
	var set []uint32

	for idx := 0; idx < size; idx++ {
		set, _ = sortedset.InsertUnique(set, rng.Uint32N(limit))
	}

	return set
}

func (s *Workload) Run(ctx context.Context) (dispatch.Result, error) {
	var (
		rng       = workload.NewRand(s.seed)
		checksum  = dispatch.NewChecksum()
		stopwatch workload.Stopwatch
	)

	for iteration := 0; iteration < s.iterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return dispatch.Result{
				Iterations: iteration,
				Elapsed:    stopwatch.Elapsed(),
			}, err
		}

		var (
			xs = randomSet(rng, s.options.Size, s.options.Limit)
			ys = randomSet(rng, s.options.Size, s.options.Limit)
		)

		stopwatch.Start()
		var (
			union        = sortedset.Union(xs, ys)
			intersection = sortedset.Intersection(xs, ys)
		)
		stopwatch.Stop()

		checksum.Add(uint64(len(union)))
		checksum.Add(uint64(len(intersection)))
	}

	return dispatch.Result{
		Iterations: s.iterations,
		Elapsed:    stopwatch.Elapsed(),
		Checksum:   checksum.Sum64(),
	}, nil
}
