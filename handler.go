// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"context"
	"log/slog"
	"time"
)

// Options are the independent diagnostics flags of a handler.
// Each flag is honored in isolation; enabling one never implies another.
type Options struct {
	// LogParameters captures and logs frame parameters.
	LogParameters bool
	// LogLocals captures and logs frame locals.
	LogLocals bool
	// LogExceptions emits an [ExceptionLog] for every failed effect and
	// for terminal failures.
	LogExceptions bool
	// LogResults emits a [ResultLog] for every completed effect.
	LogResults bool
}

// Handler decides how effects are performed and whether diagnostics are
// logged. A handler is configuration scoped to a process or a run; it
// holds no per-computation state and must be safe for concurrent use
// when the host runs multiple computations against it simultaneously.
type Handler interface {
	// HandleSync performs a synchronous effect kind. Recognized kinds
	// must be completed via SetResult/SetException before returning;
	// unrecognized kinds are left untouched and the executor reports
	// the protocol violation. A returned error becomes the effect's
	// failure while the effect is still pending.
	HandleSync(e Effect) error

	// HandleAsync drives a bridge effect's native primitive to
	// completion or failure. This is the only operation in the system
	// permitted to block the calling computation's logical thread.
	HandleAsync(ctx context.Context, e Awaitable) error

	// Log receives diagnostic records. Called by the executor only,
	// never by effects, in strict program order.
	Log(ctx context.Context, rec Record)

	// Options returns the diagnostics flags.
	Options() Options
}

// SlogHandler is the built-in handler. It performs the built-in effect
// kinds — [ClockEffect], anything exposing Invoke() error, and
// [Awaitable] bridges — and writes diagnostics through a slog.Logger.
type SlogHandler struct {
	logger *slog.Logger
	opts   Options
	now    func() time.Time
}

// NewSlogHandler creates a handler logging through logger.
// A nil logger falls back to slog.Default().
func NewSlogHandler(logger *slog.Logger, opts Options) *SlogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHandler{logger: logger, opts: opts, now: time.Now}
}

// WithClock fixes the clock used to complete [ClockEffect] and returns
// the handler for chaining. Intended for tests.
func (h *SlogHandler) WithClock(now func() time.Time) *SlogHandler {
	h.now = now
	return h
}

// HandleSync implements [Handler].
func (h *SlogHandler) HandleSync(e Effect) error {
	switch op := e.(type) {
	case *ClockEffect:
		op.SetResult(h.now())
		return nil
	}
	if inv, ok := e.(interface{ Invoke() error }); ok {
		return inv.Invoke()
	}
	// Unrecognized kind: left untouched, the executor detects non-completion.
	return nil
}

// HandleAsync implements [Handler].
func (h *SlogHandler) HandleAsync(ctx context.Context, e Awaitable) error {
	return e.Await(ctx)
}

// Log implements [Handler].
func (h *SlogHandler) Log(ctx context.Context, rec Record) {
	switch r := rec.(type) {
	case ExceptionLog:
		h.logger.LogAttrs(ctx, slog.LevelError, "effect failed",
			slog.String("caller", r.CallerMember),
			slog.String("file", r.CallerFile),
			slog.Int("line", r.CallerLine),
			slog.Any("error", r.Exception),
			bindingGroup("parameters", r.Parameters),
			bindingGroup("locals", r.Locals),
		)
	case ResultLog:
		h.logger.LogAttrs(ctx, slog.LevelInfo, "effect completed",
			slog.String("caller", r.CallerMember),
			slog.String("file", r.CallerFile),
			slog.Int("line", r.CallerLine),
			slog.Any("result", r.Result),
			bindingGroup("parameters", r.Parameters),
			bindingGroup("locals", r.Locals),
		)
	}
}

// Options implements [Handler].
func (h *SlogHandler) Options() Options { return h.opts }

func bindingGroup(key string, bs []Binding) slog.Attr {
	args := make([]any, 0, len(bs))
	for _, b := range bs {
		args = append(args, slog.Any(b.Name, b.Value))
	}
	return slog.Group(key, args...)
}

// handlerFunc wraps a synchronous dispatch function as a concrete Handler.
// Bridges are awaited directly; records are dropped.
type handlerFunc struct {
	opts Options
	f    func(e Effect) error
}

// HandleSyncFunc creates a handler from a synchronous dispatch function.
// The function receives each non-bridge effect and must complete the
// kinds it recognizes; bridge effects are awaited directly.
//
// Example:
//
//	h := eff.HandleSyncFunc(eff.Options{}, func(e eff.Effect) error {
//	    switch op := e.(type) {
//	    case *readLine:
//	        op.SetResult(scanner.Text())
//	    }
//	    return nil
//	})
func HandleSyncFunc(opts Options, f func(e Effect) error) *handlerFunc {
	return &handlerFunc{opts: opts, f: f}
}

func (h *handlerFunc) HandleSync(e Effect) error { return h.f(e) }

func (h *handlerFunc) HandleAsync(ctx context.Context, e Awaitable) error {
	return e.Await(ctx)
}

func (h *handlerFunc) Log(context.Context, Record) {}

func (h *handlerFunc) Options() Options { return h.opts }
