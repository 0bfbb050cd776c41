// internal/logging/tee.go
package logging

import (
	"context"
	"errors"
	"log/slog"
)

// tee duplicates each record to every destination handler. Destinations do
// their own level filtering, so a record goes wherever at least one of them
// accepts it.
type tee struct {
	dests []slog.Handler
}

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.dests {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t tee) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t.dests {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		// Records are single-use; each destination gets its own clone.
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(t.dests))
	for i, h := range t.dests {
		next[i] = h.WithAttrs(attrs)
	}
	return tee{dests: next}
}

func (t tee) WithGroup(name string) slog.Handler {
	if name == "" {
		return t
	}
	next := make([]slog.Handler, len(t.dests))
	for i, h := range t.dests {
		next[i] = h.WithGroup(name)
	}
	return tee{dests: next}
}
