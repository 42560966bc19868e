package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
log_level: debug
seed: 7
run: [expr, logic]
workloads:
  expr:
    depth: 3
    memoize: true
    cache_policy: map
  gates:
    engine: packed
`))

	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, uint64(7), cfg.Seed)
	require.Equal(t, []string{"expr", "logic"}, cfg.Run)
	require.Equal(t, 3, cfg.Workloads.Expr.Depth)
	require.True(t, cfg.Workloads.Expr.Memoize)
	require.Equal(t, CacheMap, cfg.Workloads.Expr.CachePolicy)
	require.Equal(t, EnginePacked, cfg.Workloads.Gates.Engine)

	// Untouched values keep their defaults
	require.Equal(t, Default().Workloads.Gates.Width, cfg.Workloads.Gates.Width)
	require.Equal(t, Default().Iterations, cfg.Iterations)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("log_level: loud\niterations: 0\nrun: [gates, quantum]\n"))

	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorContains(t, err, "log_level")
	require.ErrorContains(t, err, "iterations")
	require.ErrorContains(t, err, "run")

	_, err = Parse([]byte("workloads:\n  gates:\n    width: 2\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse([]byte("seed: [1, 2"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte("iterations: 5\n"), 0o600))

	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Iterations)
	require.Equal(t, uint64(99), cfg.Seed)
	require.Equal(t, "warn", cfg.LogLevel)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyEnvironment(t *testing.T) {
	var (
		cfg = Default()
		env = map[string]string{
			EnvIterations: "12",
		}
	)

	lookup := func(key string) (string, bool) {
		value, set := env[key]
		return value, set
	}

	require.NoError(t, applyEnvironment(&cfg, lookup))
	require.Equal(t, 12, cfg.Iterations)

	env[EnvSeed] = "-1"
	require.Error(t, applyEnvironment(&cfg, lookup))

	delete(env, EnvSeed)
	env[EnvIterations] = "many"
	require.Error(t, applyEnvironment(&cfg, lookup))
}

func TestMarshal_RoundTrip(t *testing.T) {
	content, err := Default().Marshal()
	require.NoError(t, err)

	cfg, err := Parse(content)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
