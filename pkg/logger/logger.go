// Package logger provides the zap logger shared by the resource services.
//
// Every entry carries the service name. Request-scoped loggers add the
// trace ids and the resource collection and travel in the context, so
// code below the HTTP layer logs through the package functions.
package logger

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appctx "imaut/internal/core/context"
)

// Logger wraps zap.SugaredLogger with context-aware logging.
type Logger struct {
	*zap.SugaredLogger
}

type loggerKey struct{}

// Config holds logger configuration.
type Config struct {
	Level       string // debug, info, warn, error
	Development bool   // console encoder with colored levels
	Service     string // e.g. "account-api"
	OutputPaths []string
}

// New creates a Logger. Unknown levels fall back to info.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var config zap.Config
	if cfg.Development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stdout"}
	if len(cfg.OutputPaths) > 0 {
		config.OutputPaths = cfg.OutputPaths
	}
	if cfg.Service != "" {
		config.InitialFields = map[string]any{"service": cfg.Service}
	}

	zapLogger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{zapLogger.Sugar()}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

var fallback atomic.Pointer[Logger]

// SetDefault installs l as the logger used when a context carries none.
func SetDefault(l *Logger) {
	fallback.Store(l)
}

// Default returns the logger installed by SetDefault, or a no-op logger.
func Default() *Logger {
	if l := fallback.Load(); l != nil {
		return l
	}
	return NewNop()
}

// WithContext adds the trace and request ids of ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	trace := appctx.GetTrace(ctx)
	if trace == nil {
		return l
	}
	return &Logger{l.SugaredLogger.With(
		"trace_id", trace.TraceID,
		"request_id", trace.RequestID,
	)}
}

// WithResource tags entries with the resource collection, e.g. "accounts".
func (l *Logger) WithResource(resource string) *Logger {
	return &Logger{l.SugaredLogger.With("resource", resource)}
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the request logger stored in ctx. Without one it
// falls back to Default with the trace ids of ctx.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey{}).(*Logger); ok {
		return l
	}
	return Default().WithContext(ctx)
}

// Debug logs at debug level from context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Debugw(msg, keysAndValues...)
}

// Warn logs at warn level from context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Warnw(msg, keysAndValues...)
}

// Error logs at error level from context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	FromContext(ctx).Errorw(msg, keysAndValues...)
}
