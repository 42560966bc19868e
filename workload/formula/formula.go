// Package formula registers the propositional logic workload. The configured formula is parsed once and evaluated
// against the configured true variables on every iteration.
package formula

import (
	"context"
	"fmt"

	"github.com/specterops/dispatch"
	"github.com/specterops/dispatch/config"
	"github.com/specterops/dispatch/logic"
	"github.com/specterops/dispatch/workload"
)

const Name = "logic"

func init() {
	dispatch.Register(Name, New)
}

type Workload struct {
	iterations int
	compiled   bool
	formula    logic.Formula
	trueNames  []string
}

func New(_ context.Context, cfg dispatch.Config) (dispatch.Workload, error) {
	options, err := workload.Options(Name, cfg.WorkloadConfig, config.Default().Workloads.Logic)
	if err != nil {
		return nil, err
	}

	formula, err := logic.Parse(options.Formula)
	if err != nil {
		return nil, fmt.Errorf("workload %s: %w", Name, err)
	}

	return &Workload{
		iterations: cfg.Iterations,
		compiled:   options.Compiled,
		formula:    formula,
		trueNames:  options.TrueVariables,
	}, nil
}

func (s *Workload) Name() string {
	return Name
}

func (s *Workload) Run(ctx context.Context) (dispatch.Result, error) {
	var (
		checksum  = dispatch.NewChecksum()
		stopwatch workload.Stopwatch
		evaluate  func() bool
	)

	if s.compiled {
		program, err := logic.Compile(s.formula)
		if err != nil {
			return dispatch.Result{}, err
		}

		trueSymbols := program.Bind(s.trueNames...)

		evaluate = func() bool {
			return program.Eval(trueSymbols)
		}
	} else {
		assignment := logic.NewAssignment(s.trueNames...)

		evaluate = func() bool {
			return logic.Eval(s.formula, assignment)
		}
	}

	for iteration := 0; iteration < s.iterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return dispatch.Result{
				Iterations: iteration,
				Elapsed:    stopwatch.Elapsed(),
			}, err
		}

		stopwatch.Start()
		satisfied := evaluate()
		stopwatch.Stop()

		if satisfied {
			checksum.Add(1)
		} else {
			checksum.Add(0)
		}
	}

	return dispatch.Result{
		Iterations: s.iterations,
		Elapsed:    stopwatch.Elapsed(),
		Checksum:   checksum.Sum64(),
	}, nil
}
