// Package logger holds the process-wide structured logger used by the sealgen
// CLI layers. The validation and synthesis packages never log; they return
// diagnostics instead.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

var (
	// Logger is the global logger. It is a no-op until Initialize is called.
	Logger *zap.SugaredLogger
	// JSONOutput reports whether Initialize selected JSON output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize builds the global logger. JSON output targets machines; the
// console form writes terse lines to stderr so stdout stays free for reports.
func Initialize(jsonOutput, verbose bool) error {
	JSONOutput = jsonOutput

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var (
		zapLogger *zap.Logger
		err       error
	)

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		zapLogger, err = config.Build()
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.CallerKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}

	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()

	return nil
}

// Set replaces the global logger and returns a func restoring the previous one.
func Set(l *zap.Logger) (restore func()) {
	prev := Logger
	Logger = l.Sugar()

	return func() { Logger = prev }
}

// TestingT is the part of testing.TB that SetForTest needs.
type TestingT interface {
	zaptest.TestingT
	Cleanup(func())
}

// SetForTest routes the global logger to t until the test ends.
func SetForTest(t TestingT) {
	t.Cleanup(Set(zaptest.NewLogger(t)))
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
