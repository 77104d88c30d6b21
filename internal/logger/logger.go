package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured diagnostic sink. The backup runner logs each
// resolved path and the run summary through it, and one Error entry when a
// run aborts. User-facing console lines never go through it.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// zapLogger wraps a *zap.SugaredLogger and implements Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Ensure zapLogger satisfies Logger.
var _ Logger = (*zapLogger)(nil)

// Debug logs at DebugLevel. keysAndValues are alternating key/value pairs.
func (l *zapLogger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs at InfoLevel.
func (l *zapLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs at WarnLevel.
func (l *zapLogger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs at ErrorLevel.
func (l *zapLogger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// globalSugar holds the SugaredLogger built by Init.
var globalSugar *zap.SugaredLogger

// New builds a console logger that writes entries at or above level to w.
func New(level string, w io.Writer) (Logger, error) {
	sugar, err := build(level, w)
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: sugar}, nil
}

// Init creates the process logger on stderr and makes it available through
// Global. Call this once at startup.
func Init(level string) (Logger, error) {
	sugar, err := build(level, os.Stderr)
	if err != nil {
		return nil, err
	}
	globalSugar = sugar
	return &zapLogger{sugar: sugar}, nil
}

func build(level string, w io.Writer) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	// Development encoder with ISO8601 timestamps and capital levels. Colors
	// are left out since stderr is often redirected to a file at boot.
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	zapLog := zap.New(core,
		zap.AddCaller(),      // include file:line
		zap.AddCallerSkip(1), // skip the zapLogger wrapper frame
	)
	return zapLog.Sugar(), nil
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// Cleanup flushes any buffered log entries. Call at program exit.
func Cleanup() {
	if globalSugar != nil {
		_ = globalSugar.Sync()
	}
}

// Global returns the Logger created by Init, or a no-op Logger before Init
// has succeeded.
func Global() Logger {
	if globalSugar == nil {
		return Nop()
	}
	return &zapLogger{sugar: globalSugar}
}
