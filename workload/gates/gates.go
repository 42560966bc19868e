// Package gates registers the reversible circuit workload. Every iteration draws a fresh register and circuit and
// applies the circuit with the configured engine.
package gates

import (
	"context"
	"fmt"

	"github.com/specterops/dispatch"
	"github.com/specterops/dispatch/config"
	"github.com/specterops/dispatch/gate"
	"github.com/specterops/dispatch/workload"
)

const Name = "gates"

func init() {
	dispatch.Register(Name, New)
}

type Workload struct {
	seed       uint64
	iterations int
	options    config.GatesConfig
}

func New(_ context.Context, cfg dispatch.Config) (dispatch.Workload, error) {
	options, err := workload.Options(Name, cfg.WorkloadConfig, config.Default().Workloads.Gates)
	if err != nil {
		return nil, err
	}

	if options.Width < 3 {
		return nil, fmt.Errorf("workload %s: width must be at least 3, got %d", Name, options.Width)
	}

	switch options.Engine {
	case config.EngineInterpreted, config.EngineCompiled, config.EnginePacked:
	default:
		return nil, fmt.Errorf("workload %s: unknown engine %q", Name, options.Engine)
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
			bits    = gate.RandomBits(rng, s.options.Width)
			circuit = gate.RandomCircuit(rng, s.options.Width, s.options.Gates)
		)

		switch s.options.Engine {
		case config.EngineCompiled:
			program := gate.Compile(circuit)

			stopwatch.Start()
			program.Execute(bits)
			stopwatch.Stop()

			checksum.Add(uint64(bits.Count()))

		case config.EnginePacked:
			packed := gate.Pack(bits)

			stopwatch.Start()
			gate.ApplyAll(circuit, packed)
			stopwatch.Stop()

			checksum.Add(uint64(packed.Count()))

		default:
			stopwatch.Start()
			gate.ApplyAll(circuit, bits)
			stopwatch.Stop()

			checksum.Add(uint64(bits.Count()))
		}
	}

	return dispatch.Result{
		Iterations: s.iterations,
		Elapsed:    stopwatch.Elapsed(),
		Checksum:   checksum.Sum64(),
	}, nil
}
