package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxLoggerKey struct{}

// ContextWithLogger attaches a logger to the context
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}

// FromContext returns the logger attached to ctx, or the global logger
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.L()
}

// With returns a child context whose logger carries keysAndValues
func With(ctx context.Context, keysAndValues ...any) context.Context {
	return ContextWithLogger(ctx, Sugar(ctx).With(keysAndValues...).Desugar())
}

// ForConfig tags every entry logged through ctx with the config path
func ForConfig(ctx context.Context, path string) context.Context {
	return ContextWithLogger(ctx, FromContext(ctx).With(zap.String("config", path)))
}

func Sugar(ctx context.Context) *zap.SugaredLogger {
	return FromContext(ctx).Sugar()
}
