// Package log provides the file-backed debug logger. The TUI owns the
// terminal, so log output goes to debug.log in the state directory instead
// of stderr.
package log

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens (or creates) debug.log under dir and returns a sugared zap
// logger writing JSON lines to it. If the file cannot be opened the logger
// degrades to a no-op — logging must never take the app down.
func New(dir string) *zap.SugaredLogger {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zap.NewNop().Sugar()
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zap.NewNop().Sugar()
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeTime:  zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(f),
		zapcore.DebugLevel,
	)
	return zap.New(core).Sugar()
}
