// Package logger builds the zap loggers and the HTTP access log middleware.
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/joeydtaylor/steeze-pages/pkg/config"
)

// NewLog builds a JSON logger writing to stdout and, unless cfg.StdoutOnly, to the
// rotating file cfg.Path/name.
func NewLog(name string, cfg config.Log) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.MessageKey = zapcore.OmitKey
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if l, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level.SetLevel(l)
	}

	console := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(os.Stdout), level)
	if cfg.StdoutOnly {
		return zap.New(console)
	}

	_ = os.MkdirAll(cfg.Path, 0o755)
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(cfg.Path, name),
		MaxSize:    cfg.MaxSizeMB, // MB
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
	})

	return zap.New(zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, level),
		console,
	))
}
