package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	var (
		rootCmd = newRootCommand()
		stdout  = &bytes.Buffer{}
	)

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestApplyCommand(t *testing.T) {
	output, err := execute(t, "apply", "--bits", "110", "toffoli(0,1,2)")
	require.NoError(t, err)
	require.Equal(t, "111\n", output)

	output, err = execute(t, "apply", "--bits", "100", "--inverse", "not(0)", "cnot(0,1)")
	require.NoError(t, err)
	require.Equal(t, "010\n", output)

	_, err = execute(t, "apply", "--bits", "110", "toffoli(0,1,3)")
	require.Error(t, err)
}

func TestSimplifyCommand(t *testing.T) {
	output, err := execute(t, "simplify", "(x * 1) + 0")
	require.NoError(t, err)
	require.Equal(t, "x\n", output)

	output, err = execute(t, "simplify", "--one-level", "(2 + 3) * 1")
	require.NoError(t, err)
	require.Equal(t, "(2 + 3)\n", output)

	_, err = execute(t, "simplify", "4 / 0")
	require.Error(t, err)
}

func TestEvalCommand(t *testing.T) {
	for _, compiled := range []string{"--compiled=false", "--compiled=true"} {
		output, err := execute(t, "eval", compiled, "--true", "b,c", "!a | b")
		require.NoError(t, err)
		require.Equal(t, "true\n", output)

		output, err = execute(t, "eval", compiled, "--true", "b,c", "(false | (a | !b)) & true")
		require.NoError(t, err)
		require.Equal(t, "false\n", output)
	}
}

func TestProfileCommand(t *testing.T) {
	output, err := execute(t, "profile", "x + 1")
	require.NoError(t, err)
	require.Contains(t, output, "nodes\t3\n")
	require.Contains(t, output, "leaves\t2\n")
	require.Contains(t, output, "depth\t2\n")
	require.Contains(t, output, "symbols\tx\n")

	output, err = execute(t, "profile", "--formula", "a | !b")
	require.NoError(t, err)
	require.Contains(t, output, "symbols\ta,b\n")
}

func TestWorkloadsCommand(t *testing.T) {
	output, err := execute(t, "workloads")
	require.NoError(t, err)
	require.Equal(t, "expr\ngates\nlogic\nsets\n", output)
}

func TestRunCommand(t *testing.T) {
	var (
		configPath = filepath.Join(t.TempDir(), "sandbox.yaml")
		content    = `
iterations: 2
workloads:
  gates:
    width: 16
    gates: 32
  sets:
    size: 10
    limit: 100
`
	)

	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	output, err := execute(t, "run", "--config", configPath, "--workload", "gates,sets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "gates\t2\t"))
	require.True(t, strings.HasPrefix(lines[1], "sets\t2\t"))

	_, err = execute(t, "run", "--workload", "missing")
	require.Error(t, err)
}
