package util

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

var slogMeasureID = &atomic.Int64{}

// SLogMeasureFunction logs an enter record immediately and returns a closure that logs the matching exit record with
// the elapsed time. Extra args passed to the closure are appended to the exit record.
func SLogMeasureFunction(functionName string, args ...any) func(args ...any) {
	var (
		then          = time.Now()
		measurementID = slogMeasureID.Add(1)
		allArgs       = append(args, slog.String("fn", functionName), slog.Int64("measurement_id", measurementID))
	)

	slog.Debug("SLogMeasureFunction", append(allArgs, slog.String("state", "enter"))...)

	return func(args ...any) {
		exitArgs := append(allArgs, slog.Duration("elapsed", time.Since(then)), slog.String("state", "exit"))
		exitArgs = append(exitArgs, args...)

		slog.Info("SLogMeasureFunction", exitArgs...)
	}
}

func SLogError(msg string, err error, args ...any) {
	allArgs := append([]any{slog.String("err", err.Error())}, args...)
	slog.Error(msg, allArgs...)
}

// ParseSLogLevel maps the configuration spelling of a log level onto slog's levels.
func ParseSLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: \"%s\"", level)
	}
}

// NewSLogger builds a text logger writing to the given output at the given level.
func NewSLogger(output io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level,
	}))
}
