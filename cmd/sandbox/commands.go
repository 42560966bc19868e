package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specterops/dispatch"
	"github.com/specterops/dispatch/config"
	"github.com/specterops/dispatch/expr"
	"github.com/specterops/dispatch/gate"
	"github.com/specterops/dispatch/logic"
	"github.com/specterops/dispatch/metrics"
	"github.com/specterops/dispatch/profile"
	"github.com/specterops/dispatch/util"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sandbox",
		Short:         "Evaluate reversible circuits, arithmetic expressions and propositional formulas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newRunCommand(),
		newApplyCommand(),
		newSimplifyCommand(),
		newEvalCommand(),
		newProfileCommand(),
		newWorkloadsCommand(),
	)

	return rootCmd
}

func newRunCommand() *cobra.Command {
	var (
		configPath string
		workloads  []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured workloads and report their checksums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if len(workloads) > 0 {
				cfg.Run = workloads
			}

			return runWorkloads(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")
	cmd.Flags().StringSliceVarP(&workloads, "workload", "w", nil, "workloads to run, overriding the configuration")

	return cmd
}

func workloadConfig(cfg config.Config, name string) any {
	switch name {
	case "gates":
		return cfg.Workloads.Gates
	case "expr":
		return cfg.Workloads.Expr
	case "logic":
		return cfg.Workloads.Logic
	case "sets":
		return cfg.Workloads.Sets
	default:
		return nil
	}
}

func runWorkloads(cmd *cobra.Command, cfg config.Config) error {
	level, err := util.ParseSLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	slog.SetDefault(util.NewSLogger(cmd.ErrOrStderr(), level))

	var (
		ctx      = cmd.Context()
		registry = prometheus.NewRegistry()
		recorder = metrics.New(registry)
	)

	for _, name := range cfg.Run {
		workload, err := dispatch.Open(ctx, name, dispatch.Config{
			Seed:           cfg.Seed,
			Iterations:     cfg.Iterations,
			WorkloadConfig: workloadConfig(cfg, name),
		})

		if err != nil {
			return fmt.Errorf("open workload %s: %w", name, err)
		}

		if result, err := dispatch.Execute(ctx, workload, recorder); err != nil {
			return fmt.Errorf("run workload %s: %w", name, err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%016x\n", result.Workload, result.Iterations, result.Elapsed, result.Checksum)
		}
	}

	if families, err := registry.Gather(); err != nil {
		util.SLogError("gather metrics", err)
	} else {
		for _, family := range families {
			slog.Debug("metric family", slog.String("name", family.GetName()), slog.Int("series", len(family.GetMetric())))
		}
	}

	return nil
}

func newApplyCommand() *cobra.Command {
	var (
		rawBits string
		inverse bool
	)

	cmd := &cobra.Command{
		Use:   "apply [gates...]",
		Short: "Apply a circuit to a register, for example: apply --bits 110 'toffoli(0,1,2)'",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := gate.ParseBits(rawBits)
			if err != nil {
				return err
			}

			circuit, err := gate.ParseGates(strings.Join(args, " "))
			if err != nil {
				return err
			}

			if err := circuit.Validate(bits.Len()); err != nil {
				return err
			}

			if inverse {
				circuit = gate.Inverse(circuit)
			}

			gate.ApplyAll(circuit, bits)
			fmt.Fprintln(cmd.OutOrStdout(), bits.String())

			return nil
		},
	}

	cmd.Flags().StringVarP(&rawBits, "bits", "b", "", "initial register as a string of 0 and 1")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "apply the inverse circuit")
	cmd.MarkFlagRequired("bits")

	return cmd
}

func newSimplifyCommand() *cobra.Command {
	var oneLevel bool

	cmd := &cobra.Command{
		Use:   "simplify [expression]",
		Short: "Simplify an arithmetic expression, for example: simplify '(x * 1) + 0'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := expr.Parse(args[0])
			if err != nil {
				return err
			}

			var simplified expr.Expr

			if oneLevel {
				simplified, err = expr.SimplifyOneLevel(parsed)
			} else {
				simplified, err = expr.Simplify(parsed)
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), simplified.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&oneLevel, "one-level", false, "apply the rewrite rules at the root only")
	return cmd
}

func newEvalCommand() *cobra.Command {
	var (
		trueVariables []string
		compiled      bool
	)

	cmd := &cobra.Command{
		Use:   "eval [formula]",
		Short: "Evaluate a propositional formula, for example: eval --true b,c '!a | b'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := logic.Parse(args[0])
			if err != nil {
				return err
			}

			var satisfied bool

			if compiled {
				program, err := logic.Compile(formula)
				if err != nil {
					return err
				}

				satisfied = program.Eval(program.Bind(trueVariables...))
			} else {
				satisfied = logic.Eval(formula, logic.NewAssignment(trueVariables...))
			}

			fmt.Fprintln(cmd.OutOrStdout(), satisfied)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&trueVariables, "true", "t", nil, "variables assigned true")
	cmd.Flags().BoolVar(&compiled, "compiled", false, "evaluate with the compiled stack program")

	return cmd
}

func newProfileCommand() *cobra.Command {
	var isFormula bool

	cmd := &cobra.Command{
		Use:   "profile [expression]",
		Short: "Summarize the shape of an expression or, with --formula, a propositional formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				stats profile.Stats
				err   error
			)

			if isFormula {
				if formula, parseErr := logic.Parse(args[0]); parseErr != nil {
					return parseErr
				} else {
					stats, err = profile.Formula(formula)
				}
			} else {
				if expression, parseErr := expr.Parse(args[0]); parseErr != nil {
					return parseErr
				} else {
					stats, err = profile.Expression(expression)
				}
			}

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes\t%d\n", stats.Nodes)
			fmt.Fprintf(out, "leaves\t%d\n", stats.Leaves)
			fmt.Fprintf(out, "depth\t%d\n", stats.Depth)
			fmt.Fprintf(out, "symbols\t%s\n", strings.Join(stats.Symbols, ","))
			fmt.Fprintf(out, "distinct_subtrees\t%d\n", stats.DistinctSubtrees)

			return nil
		},
	}

	cmd.Flags().BoolVar(&isFormula, "formula", false, "parse the argument as a propositional formula")
	return cmd
}

func newWorkloadsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "workloads",
		Short: "List the registered workloads",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range dispatch.Registered() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
