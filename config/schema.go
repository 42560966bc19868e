package config

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/specterops/dispatch/util"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

const schemaSource = `
#Workload: "gates" | "expr" | "logic" | "sets"

#Config: {
	log_level:  "debug" | "info" | "warn" | "error"
	seed:       int & >=0
	iterations: int & >0
	run: [...#Workload] | null

	workloads: {
		gates: {
			width:  int & >=3 & <=4294967295
			gates:  int & >=0
			engine: "interpreted" | "compiled" | "packed"
		}

		expr: {
			depth:          int & >=0 & <=64
			memoize:        bool
			cache_capacity: int & >0
			cache_policy:   "sieve" | "map"
		}

		logic: {
			formula:        string & !=""
			true_variables: [...string] | null
			compiled:       bool
		}

		sets: {
			size:  int & >=0
			limit: int & >0 & <=4294967295
		}
	}
}
`

// Validate checks the configuration against the embedded CUE schema. Every violation is reported.
func Validate(cfg Config) error {
	var (
		cueContext = cuecontext.New()
		schema     = cueContext.CompileString(schemaSource)
	)

	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	var (
		definition = schema.LookupPath(cue.ParsePath("#Config"))
		unified    = definition.Unify(cueContext.Encode(cfg))
	)

	if err := unified.Validate(cue.Concrete(true)); err != nil {
		violations := util.NewErrorCollector()

		for _, violation := range cueerrors.Errors(err) {
			violations.Add(errors.New(violation.Error()))
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, violations.Combined())
	}

	return nil
}
