package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
)

type interactionKey struct{}

// NewInteractionID generates an 8-character hex ID (4 random bytes) used to
// correlate all log records of one inbound interaction.
func NewInteractionID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// WithInteractionID returns a new context carrying the given interaction ID.
func WithInteractionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, interactionKey{}, id)
}

// InteractionID extracts the interaction ID from ctx, returning ("", false)
// if not present.
func InteractionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(interactionKey{}).(string)
	return id, ok && id != ""
}

// interactionHandler wraps an slog.Handler to inject an "interaction_id"
// attribute when the context carries one.
type interactionHandler struct {
	inner slog.Handler
}

func newInteractionHandler(inner slog.Handler) *interactionHandler {
	return &interactionHandler{inner: inner}
}

func (h *interactionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *interactionHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := InteractionID(ctx); ok {
		r.AddAttrs(slog.String("interaction_id", id))
	}
	if err := h.inner.Handle(ctx, r); err != nil {
		return fmt.Errorf("interaction handler: %w", err)
	}
	return nil
}

func (h *interactionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &interactionHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *interactionHandler) WithGroup(name string) slog.Handler {
	return &interactionHandler{inner: h.inner.WithGroup(name)}
}
