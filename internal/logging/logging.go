package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the logger configuration.
type Config struct {
	Level        string // debug, info, warn, error; empty means info
	FileName     string // rotating log file; empty logs to Stderr
	MaxLogSizeMB int
	Backups      int
	MaxAgeDays   int

	// Stderr receives log lines when FileName is empty. Defaults to os.Stderr.
	Stderr io.Writer
}

// DefaultConfig returns rotation settings suitable for a long-running dashboard.
func DefaultConfig() Config {
	return Config{
		Level:        "info",
		MaxLogSizeMB: 10,
		Backups:      3,
		MaxAgeDays:   7,
	}
}

// New builds a console-encoded zap logger. When cfg.FileName is set the
// output goes through a lumberjack rotating writer. The returned close
// function flushes the logger and releases the file.
func New(cfg Config) (*zap.Logger, func(), error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	var (
		sink      zapcore.WriteSyncer
		closeFile = func() {}
	)
	if cfg.FileName != "" {
		fw := &lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxLogSizeMB,
			MaxBackups: cfg.Backups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		sink = zapcore.AddSync(fw)
		closeFile = func() { _ = fw.Close() }
	} else {
		w := cfg.Stderr
		if w == nil {
			w = os.Stderr
		}
		sink = zapcore.Lock(zapcore.AddSync(w))
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, zap.NewAtomicLevelAt(level))
	logger := zap.New(core)

	return logger, func() {
		_ = logger.Sync()
		closeFile()
	}, nil
}
