package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Dir returns the log directory, LOG_DIR or "log".
func Dir() string {
	if d := os.Getenv("LOG_DIR"); d != "" {
		return d
	}
	return "log"
}

// NewLog builds a JSON logger tee'd to stdout and a rotated file under dir.
func NewLog(dir, name string) *zap.Logger {
	return newLog(dir, name, zap.NewProductionEncoderConfig())
}

// newAccessLog is NewLog without a message key; access lines are all fields.
func newAccessLog(dir string) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.MessageKey = zapcore.OmitKey
	return newLog(dir, "http-access.log", cfg)
}

func newLog(dir, name string, cfg zapcore.EncoderConfig) *zap.Logger {
	_ = os.MkdirAll(dir, 0o755)

	console := zapcore.Lock(os.Stdout)

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, zap.InfoLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), console, zap.InfoLevel),
	)
	return zap.New(core)
}
