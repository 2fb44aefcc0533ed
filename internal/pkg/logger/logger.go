package logger

import (
	"context"

	"go.uber.org/zap"
)

// Package-level sugared logger. Context is accepted on every call so request
// scoped fields can be attached later without touching call sites.

var global *zap.SugaredLogger

func init() {
	l, _ := zap.NewProduction()
	global = l.Sugar()
}

// Init replaces the global logger, e.g. with a development config.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func Debugf(_ context.Context, format string, args ...any) {
	global.Debugf(format, args...)
}

func Info(_ context.Context, msg string) {
	global.Info(msg)
}

func Infof(_ context.Context, format string, args ...any) {
	global.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...any) {
	global.Warnf(format, args...)
}

func Error(_ context.Context, msg string) {
	global.Error(msg)
}

func Errorf(_ context.Context, format string, args ...any) {
	global.Errorf(format, args...)
}

func Fatal(_ context.Context, args ...any) {
	global.Fatal(args...)
}
