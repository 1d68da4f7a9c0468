// Package logger provides the structured, levelled logger for the dealership
// app, built on log/slog.
//
// The extension over plain slog is WithCtx: handlers log through a per-request
// logger pre-tagged with the request ID, so every line from a booking or admin
// handler is automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("booking created", "booking_ref", ref)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// AttachMongo adds an asynchronous MongoDB sink alongside the stdout handler
// when LOG_MONGO_URI is configured. Returns a close function that flushes the
// sink; it is a no-op when Mongo logging is not configured.
func AttachMongo() (func(), error) {
	uri := config.Get("LOG_MONGO_URI", "")
	if uri == "" {
		return func() {}, nil
	}

	mh, err := NewMongoHandler(uri,
		config.Get("LOG_MONGO_DB", "prince_automotive"),
		config.Get("LOG_MONGO_COLLECTION", "logs"))
	if err != nil {
		return func() {}, err
	}

	base := L.Handler()
	L = slog.New(fanoutHandler{base, mh})
	slog.SetDefault(L)
	return mh.Close, nil
}

// fanoutHandler forwards every record to all wrapped handlers.
type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, lvl) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// ─── Context-aware logger ────────────────────────────────────────────────────

type ctxKey struct{}

// WithCtx returns the per-request *slog.Logger injected by the logging
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─── Short-hand helpers (base logger) ────────────────────────────────────────

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
