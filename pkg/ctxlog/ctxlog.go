// Package ctxlog carries a zap Logger in a Context, so that the
// domain being worked on travels with the logger through the apps.
package ctxlog

import (
	"context"

	"go.uber.org/zap"
)

type loggerKeyType struct{}

var (
	loggerKey = loggerKeyType{}

	nop = zap.NewNop()

	// L is an alias for GetLogger.
	L = GetLogger

	// S is an alias for GetSugaredLogger.
	S = GetSugaredLogger
)

// WithLogger embeds logger in the given Context.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFields adds the given fields to the Logger embedded in ctx.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	return WithLogger(ctx, GetLogger(ctx).With(fields...))
}

// WithName adds the given name to the Logger embedded in ctx.
func WithName(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, GetLogger(ctx).Named(name))
}

// WithDomain tags the Logger embedded in ctx with an Elasticsearch
// Service domain name.
func WithDomain(ctx context.Context, domain string) context.Context {
	return WithFields(ctx, zap.String("domain", domain))
}

// GetLogger returns the Logger embedded in ctx, or a nop Logger.
func GetLogger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return nop
}

// GetSugaredLogger returns GetLogger(ctx).Sugar().
func GetSugaredLogger(ctx context.Context) *zap.SugaredLogger {
	return GetLogger(ctx).Sugar()
}
