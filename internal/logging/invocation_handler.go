package logging

import (
	"context"
	"log/slog"
)

// FieldInvocationID is the structured logging key identifying one CLI run.
const FieldInvocationID = "invocation_id"

// invocationHandler stamps every record with the id of the current CLI run so
// lines in a shared log file can be grouped per command.
type invocationHandler struct {
	base slog.Handler
	id   string
}

// WithInvocationID returns a logger whose records all carry id.
func WithInvocationID(logger *slog.Logger, id string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	if id == "" {
		return logger
	}
	return slog.New(&invocationHandler{base: logger.Handler(), id: id})
}

func (h *invocationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *invocationHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(slog.String(FieldInvocationID, h.id))
	return h.base.Handle(ctx, record)
}

func (h *invocationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &invocationHandler{base: h.base.WithAttrs(attrs), id: h.id}
}

func (h *invocationHandler) WithGroup(name string) slog.Handler {
	return &invocationHandler{base: h.base.WithGroup(name), id: h.id}
}
