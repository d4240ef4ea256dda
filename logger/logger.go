// Package logger builds the zap logger of the CLI.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wally-yu/binance-dex/config"
)

// New returns a console-encoded logger writing to stderr and, if
// cfg.FileName is set, to a rotated file. The returned function flushes
// and closes the outputs.
func New(cfg config.LogConfig, debug bool) (*zap.Logger, func() error, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeDuration = zapcore.StringDurationEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewConsoleEncoder(encCfg)
	atom := zap.NewAtomicLevelAt(level)

	var (
		cores  []zapcore.Core
		closer = func() error { return nil }
	)
	if cfg.FileName == "" || cfg.Console {
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stderr), atom))
	}
	if cfg.FileName != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FileName), 0755); err != nil {
			return nil, nil, fmt.Errorf("could not create dir for logger: %w", err)
		}
		rotated := &lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rotated), atom))
		closer = rotated.Close
	}

	log := zap.New(zapcore.NewTee(cores...))
	return log, func() error {
		_ = log.Sync()
		return closer()
	}, nil
}
