package logging

import (
	"context"
	"log/slog"
	"os"
)

// SlogLogger adapts *slog.Logger to the Logger interface.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps an existing slog logger.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// Default returns a text logger on stderr at the given level. Stderr keeps
// log lines out of the interactive prompt on stdout.
func Default(level slog.Level) *SlogLogger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &SlogLogger{l: slog.New(h)}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
