// Package logger builds the zap logger used by the beans CLI and installs it
// as the process-wide logger returned by zap.L.
package logger

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// ParseLevel converts a level name (debug, info, warn, error) to a zap
// level. An empty name selects DefaultLevel.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return lvl, errors.Wrapf(err, "log level %q", name)
	}
	return lvl, nil
}

// New returns a logger writing to w at the given level. JSON output uses the
// production encoder; otherwise a compact console encoder without caller or
// stack information.
func New(w zapcore.WriteSyncer, level string, jsonOutput bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = newConsoleEncoder()
	}
	return zap.New(zapcore.NewCore(enc, w, lvl)), nil
}

// Initialize installs a stderr logger as the global zap logger. The returned
// function flushes it and restores the previous globals.
func Initialize(level string, jsonOutput bool) (func(), error) {
	l, err := New(zapcore.Lock(os.Stderr), level, jsonOutput)
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(l)
	return func() {
		_ = l.Sync()
		restore()
	}, nil
}

func newConsoleEncoder() zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return zapcore.NewConsoleEncoder(cfg)
}
