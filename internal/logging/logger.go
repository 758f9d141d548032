// Package logging defines the structured-logging interface shared by the
// client packages, plus the slog-backed default implementation.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "fetched tickets", "count", len(items))
type Logger interface {
	// Debug logs fine-grained diagnostics, normally disabled.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
