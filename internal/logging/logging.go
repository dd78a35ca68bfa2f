// Package logging builds the zap loggers used by the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file the TUI writes under its data dir.
const FileName = "pogruzhatel.log"

type Option func(*zap.Config, *zapcore.WriteSyncer, *[]zapcore.Core)

// WithLevel sets the minimum level. Unknown names fall back to info.
func WithLevel(level string) Option {
	return func(cfg *zap.Config, _ *zapcore.WriteSyncer, _ *[]zapcore.Core) {
		lvl, err := ParseLevel(level)
		if err != nil {
			lvl = zapcore.InfoLevel
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
}

// WithDevelopment switches to the human readable console encoder.
func WithDevelopment() Option {
	return func(cfg *zap.Config, _ *zapcore.WriteSyncer, _ *[]zapcore.Core) {
		cfg.Development = true
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
}

func WithOutput(w io.Writer) Option {
	return func(_ *zap.Config, ws *zapcore.WriteSyncer, _ *[]zapcore.Core) {
		*ws = zapcore.AddSync(w)
	}
}

// WithCore tees an extra core next to the encoder core.
func WithCore(core zapcore.Core) Option {
	return func(_ *zap.Config, _ *zapcore.WriteSyncer, cores *[]zapcore.Core) {
		*cores = append(*cores, core)
	}
}

// New returns a JSON logger on stderr unless options say otherwise.
func New(options ...Option) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var ws zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	var extra []zapcore.Core

	for _, option := range options {
		option(&cfg, &ws, &extra)
	}

	var enc zapcore.Encoder
	if cfg.Encoding == "console" {
		enc = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	} else {
		enc = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	}
	cores := append([]zapcore.Core{zapcore.NewCore(enc, ws, cfg.Level)}, extra...)

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), opts...)
}

func ParseLevel(level string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", level)
	}
	return lvl, nil
}

// OpenFile opens (creating if needed) the log file under dir for appending.
func OpenFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return f, nil
}
