package logging

import (
	"context"
	"log/slog"
	"os"
)

// NewLogger returns a JSON slog logger tagged with the service name. One line
// per record on stdout, which is what the hosting platform's log collector
// expects.
func NewLogger(service string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true})
	return slog.New(handler).With(slog.String("service", service))
}

// WithRequestID returns a logger that stamps every record with the chi
// request id, so one request's lines can be correlated.
func WithRequestID(ctx context.Context, logger *slog.Logger, requestID string) *slog.Logger {
	return logger.With(slog.String("requestId", requestID))
}
