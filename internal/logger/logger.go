/*
Package logger
File: logger.go
Description:
    Installs the slog default and carries request IDs through contexts
    so handlers log with the ID of the request they serve.
*/

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = attrRequestID

// level is shared by every handler InitLogger builds, so SetLevel applies live.
var level = new(slog.LevelVar)

// InitLogger installs the configured logger as the slog default, writing to stdout.
func InitLogger(opts Options) *slog.Logger {
	return InitLoggerWithWriter(opts, os.Stdout)
}

// InitLoggerWithWriter is InitLogger with an explicit destination.
func InitLoggerWithWriter(opts Options, w io.Writer) *slog.Logger {
	level.Set(ParseLevel(opts.Level))
	hopts := &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.AddSource,
	}

	var handler slog.Handler
	if opts.json() {
		handler = slog.NewJSONHandler(w, hopts)
	} else {
		handler = slog.NewTextHandler(w, hopts)
	}

	l := slog.New(handler.WithAttrs(opts.attrs()))
	slog.SetDefault(l)
	return l
}

// SetLevel changes the minimum level of the installed logger.
func SetLevel(l string) {
	level.Set(ParseLevel(l))
}

// Discard returns a logger that drops everything. Used by tests and the simulator.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// FromContext returns a logger that includes the request_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(attrRequestID, id)
	}
	return slog.Default()
}
