// Package logger wraps zerolog for the service: a process wide base logger,
// component child loggers and request scoped fields
package logger

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the base logger
type Config struct {
	Level   string    // "debug", "info", ... (defaults to info)
	Output  io.Writer // defaults to os.Stdout
	Service string
	Version string
}

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
)

// Configure replaces the base logger. Unknown levels fall back to info
func Configure(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	writer := cfg.Output
	if writer == nil {
		writer = os.Stdout
	}
	service := cfg.Service
	if service == "" {
		service = "content-api"
	}

	l := zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", service).
		Str("version", cfg.Version).
		Logger()

	mu.Lock()
	base = l
	mu.Unlock()
}

// Base returns the configured base logger
func Base() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}

type ctxKey struct{}

// ContextWithRequestID stores the request ID in ctx
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestIDFromContext extracts the request ID from ctx if present
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}

// FromContext returns a component logger enriched with the request ID carried by ctx
func FromContext(ctx context.Context, component string) zerolog.Logger {
	builder := Base().With().Str("component", component)
	if rid := RequestIDFromContext(ctx); rid != "" {
		builder = builder.Str("request_id", rid)
	}
	return builder.Logger()
}
