// internal/utils/logging.go
package utils

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultLogFileName = "lexicon.log"
	LogFileMode        = 0644
)

var Logger *zap.Logger

// Init configures zap to write to stderr and, unless LOG_FILE is set to
// "-", to a JSON log file. This should be called once at application startup.
func Init() error {
	level := levelFromEnv()

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stderr), level),
	}

	logFileName := os.Getenv("LOG_FILE")
	if logFileName == "" {
		logFileName = DefaultLogFileName
	}
	if logFileName != "-" {
		logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, LogFileMode)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", logFileName, err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(logFile), level))
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	Logger.Info("logging initialized", zap.String("log_level", level.String()))

	return nil
}

// levelFromEnv reads LOG_LEVEL (default: info).
func levelFromEnv() zapcore.Level {
	envLevel := os.Getenv("LOG_LEVEL")
	if envLevel == "" {
		return zapcore.InfoLevel
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(envLevel)); err != nil {
		fmt.Printf("unknown LOG_LEVEL '%s', defaulting to 'info'\n", envLevel)
		return zapcore.InfoLevel
	}
	return level
}

// Sync flushes any buffered log entries.
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

// WithComponent returns a logger pre-bound with a `component` field so callers
// don't have to repeat the same field across messages in a component.
// It falls back to a no-op logger when logging has not been initialized.
func WithComponent(component string) *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger.With(zap.String(FieldComponent, component))
}
