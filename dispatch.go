// Package dispatch runs evaluation workloads over the sandbox engines. Workloads register a constructor under a name,
// usually from an init function, and are opened by that name.
package dispatch

import (
	"context"
	"encoding/binary"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/specterops/dispatch/metrics"
	"github.com/specterops/dispatch/util"
)

var (
	ErrWorkloadMissing = errors.New("workload missing")
)

// Workload evaluates freshly generated inputs on every iteration. A workload derives its inputs from the configured
// seed only, so two runs with the same configuration produce the same checksum.
type Workload interface {
	Name() string
	Run(ctx context.Context) (Result, error)
}

// WorkloadConstructor describes a function that takes a context and a dispatch configuration struct and returns
// either a ready workload or the error that prevented building it.
type WorkloadConstructor func(ctx context.Context, cfg Config) (Workload, error)

var availableWorkloads = map[string]WorkloadConstructor{}

// Register registers a workload constructor under the given name
func Register(name string, constructor WorkloadConstructor) {
	availableWorkloads[name] = constructor
}

// Registered returns the sorted names of every registered workload.
func Registered() []string {
	names := make([]string, 0, len(availableWorkloads))

	for name := range availableWorkloads {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

type Config struct {
	Seed       uint64
	Iterations int

	// WorkloadConfig holds workload-specific configuration that is passed to the workload constructor. The type
	// depends on the workload.
	WorkloadConfig any
}

func Open(ctx context.Context, name string, config Config) (Workload, error) {
	if constructor, hasWorkload := availableWorkloads[name]; !hasWorkload {
		return nil, ErrWorkloadMissing
	} else {
		return constructor(ctx, config)
	}
}

type Result struct {
	RunID      uuid.UUID
	Workload   string
	Iterations int
	Elapsed    time.Duration
	Checksum   uint64
}

func (s Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID.String()),
		slog.String("workload", s.Workload),
		slog.Int("iterations", s.Iterations),
		slog.Duration("elapsed", s.Elapsed),
		slog.Uint64("checksum", s.Checksum),
	)
}

// Checksum folds workload outputs into a single digest so that runs can be compared.
type Checksum struct {
	digest *xxhash.Digest
	buffer [8]byte
}

func NewChecksum() *Checksum {
	return &Checksum{
		digest: xxhash.New(),
	}
}

func (s *Checksum) Add(value uint64) {
	binary.LittleEndian.PutUint64(s.buffer[:], value)
	s.digest.Write(s.buffer[:])
}

func (s *Checksum) Sum64() uint64 {
	return s.digest.Sum64()
}

// Execute runs the workload once, stamps the result with a fresh run identifier and records it. The recorder may be
// nil.
func Execute(ctx context.Context, workload Workload, recorder *metrics.Metrics) (Result, error) {
	measure := util.SLogMeasureFunction("dispatch.Execute", slog.String("workload", workload.Name()))

	result, err := workload.Run(ctx)
	result.RunID = uuid.New()
	result.Workload = workload.Name()

	if recorder != nil {
		recorder.RecordRun(result.Workload, result.Iterations, result.Elapsed, err)
	}

	if err != nil {
		util.SLogError("workload run failed", err, slog.String("workload", result.Workload))
		measure(slog.String("status", metrics.StatusError))

		return result, err
	}

	measure(slog.String("status", metrics.StatusSuccess), slog.Any("result", result))
	return result, nil
}
