package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// SetupLogger configures the process-wide slog default used by the library:
// JSON records on stdout, with stacktraces attached to pkg/errors values by
// ErrFmtHandler.
func SetupLogger(loglevel string) {
	slog.SetDefault(slog.New(newHandler(os.Stdout, ToLogLevel(loglevel))))
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	return WrapByErrFmtHandler(slog.NewJSONHandler(w, &ops))
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// slogLogger adapts the process slog default to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
	level  Level
}

func (s *slogLogger) Debug(msg string, fields ...any) {
	if s.level <= LevelDebug {
		s.logger.Debug(msg, fields...)
	}
}

func (s *slogLogger) Info(msg string, fields ...any) {
	if s.level <= LevelInfo {
		s.logger.Info(msg, fields...)
	}
}

func (s *slogLogger) Warn(msg string, fields ...any) {
	if s.level <= LevelWarn {
		s.logger.Warn(msg, fields...)
	}
}

func (s *slogLogger) Error(msg string, fields ...any) {
	if s.level <= LevelError {
		s.logger.Error(msg, fields...)
	}
}

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: s.logger.With(fields...), level: s.level}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.level <= level && s.logger.Enabled(ctx, slog.Level(level))
}

// slogProvider is the production LoggerProvider.
type slogProvider struct {
	mu    sync.Mutex
	level Level
}

func (p *slogProvider) GetLogger() Logger {
	p.mu.Lock()
	defer p.mu.Unlock()
	return &slogLogger{logger: slog.Default(), level: p.level}
}

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

func (p *slogProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

var (
	providerMu sync.Mutex
	provider   LoggerProvider = &slogProvider{level: LevelInfo}
)

// SetProvider replaces the package-level LoggerProvider. Tests use this to
// capture log output with a TestLoggerProvider.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.Lock()
	defer providerMu.Unlock()
	return provider.GetLogger()
}

// GetLoggerWithName returns a component-scoped logger from the current provider.
func GetLoggerWithName(name string) Logger {
	providerMu.Lock()
	defer providerMu.Unlock()
	return provider.GetLoggerWithName(name)
}
