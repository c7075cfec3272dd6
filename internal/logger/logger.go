package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process logger. It defaults to a no-op so library code and
// tests can log without calling Init first.
var (
	Log   = zap.NewNop()
	Sugar = Log.Sugar()
)

func Init() error {
	return InitWithLevel("info")
}

func InitWithLevel(logLevel string) error {
	return InitWithConfig(logLevel, "")
}

// InitWithConfig builds the process logger at the given level. An empty
// logFilePath keeps output on stderr only; otherwise the file is appended
// alongside stderr. Unknown levels fall back to info.
func InitWithConfig(logLevel, logFilePath string) error {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "time"

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	cfg.OutputPaths = []string{"stderr"}
	if logFilePath != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, logFilePath)
	}

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = built
	Sugar = built.Sugar()
	return nil
}
