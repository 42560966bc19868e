// Package config loads sandbox run configuration. Values start from Default, are overlaid by a YAML document and then
// by environment variables, and are finally validated against an embedded CUE schema.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	EngineInterpreted = "interpreted"
	EngineCompiled    = "compiled"
	EnginePacked      = "packed"

	CacheSieve = "sieve"
	CacheMap   = "map"

	EnvLogLevel   = "DISPATCH_LOG_LEVEL"
	EnvSeed       = "DISPATCH_SEED"
	EnvIterations = "DISPATCH_ITERATIONS"
)

type Config struct {
	LogLevel   string    `json:"log_level" yaml:"log_level"`
	Seed       uint64    `json:"seed" yaml:"seed"`
	Iterations int       `json:"iterations" yaml:"iterations"`
	Run        []string  `json:"run" yaml:"run"`
	Workloads  Workloads `json:"workloads" yaml:"workloads"`
}

type Workloads struct {
	Gates GatesConfig `json:"gates" yaml:"gates"`
	Expr  ExprConfig  `json:"expr" yaml:"expr"`
	Logic LogicConfig `json:"logic" yaml:"logic"`
	Sets  SetsConfig  `json:"sets" yaml:"sets"`
}

type GatesConfig struct {
	Width  uint32 `json:"width" yaml:"width"`
	Gates  int    `json:"gates" yaml:"gates"`
	Engine string `json:"engine" yaml:"engine"`
}

type ExprConfig struct {
	Depth         int    `json:"depth" yaml:"depth"`
	Memoize       bool   `json:"memoize" yaml:"memoize"`
	CacheCapacity int    `json:"cache_capacity" yaml:"cache_capacity"`
	CachePolicy   string `json:"cache_policy" yaml:"cache_policy"`
}

type LogicConfig struct {
	Formula       string   `json:"formula" yaml:"formula"`
	TrueVariables []string `json:"true_variables" yaml:"true_variables"`
	Compiled      bool     `json:"compiled" yaml:"compiled"`
}

type SetsConfig struct {
	Size  int    `json:"size" yaml:"size"`
	Limit uint32 `json:"limit" yaml:"limit"`
}

func Default() Config {
	return Config{
		LogLevel:   "info",
		Seed:       1,
		Iterations: 100,
		Run:        []string{"gates", "expr", "logic", "sets"},
		Workloads: Workloads{
			Gates: GatesConfig{
				Width:  1_000,
				Gates:  10_000,
				Engine: EngineInterpreted,
			},
			Expr: ExprConfig{
				Depth:         15,
				CacheCapacity: 4096,
				CachePolicy:   CacheSieve,
			},
			Logic: LogicConfig{
				Formula:       "(false | (a | !b)) & true",
				TrueVariables: []string{"b", "c"},
			},
			Sets: SetsConfig{
				Size:  1_000,
				Limit: 100_000,
			},
		},
	}
}

// Parse overlays the YAML document onto Default and validates the result. Environment variables are not consulted.
func Parse(content []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, Validate(cfg)
}

// Load reads the configuration file when path is not empty, applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if content, err := os.ReadFile(path); err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		} else if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvironment(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, Validate(cfg)
}

type lookupFunc func(key string) (string, bool)

func applyEnvironment(cfg *Config, lookup lookupFunc) error {
	if value, set := lookup(EnvLogLevel); set {
		cfg.LogLevel = value
	}

	if value, set := lookup(EnvSeed); set {
		if seed, err := strconv.ParseUint(value, 10, 64); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		} else {
			cfg.Seed = seed
		}
	}

	if value, set := lookup(EnvIterations); set {
		if iterations, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvIterations, err)
		} else {
			cfg.Iterations = iterations
		}
	}

	return nil
}

func (s Config) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
