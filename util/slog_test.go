package util_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/specterops/dispatch/util"
	"github.com/stretchr/testify/require"
)

func TestParseSLogLevel(t *testing.T) {
	for input, expected := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		level, err := util.ParseSLogLevel(input)

		require.NoError(t, err)
		require.Equal(t, expected, level)
	}

	_, err := util.ParseSLogLevel("loud")
	require.Error(t, err)
}

func TestSLogMeasureFunction(t *testing.T) {
	var (
		output   = &bytes.Buffer{}
		previous = slog.Default()
	)

	slog.SetDefault(util.NewSLogger(output, slog.LevelDebug))
	defer slog.SetDefault(previous)

	measure := util.SLogMeasureFunction("TestSLogMeasureFunction", slog.String("workload", "gates"))
	measure(slog.Int("iterations", 3))

	logged := output.String()
	require.Contains(t, logged, "state=enter")
	require.Contains(t, logged, "state=exit")
	require.Contains(t, logged, "workload=gates")
	require.Contains(t, logged, "iterations=3")
}
