package observability

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	attrService = "service"
	attrVersion = "version"
)

// ServiceHandler is an [slog.Handler] that attaches service metadata
// (service, version) to every log record. The attributes are
// pre-attached at construction so they remain at the top level even
// when groups are used.
type ServiceHandler struct {
	inner slog.Handler
}

// NewServiceHandler wraps an [slog.Handler], attaching service metadata.
func NewServiceHandler(inner slog.Handler, service, version string) *ServiceHandler {
	attrs := []slog.Attr{
		slog.String(attrService, service),
	}

	if version != "" {
		attrs = append(attrs, slog.String(attrVersion, version))
	}

	return &ServiceHandler{
		inner: inner.WithAttrs(attrs),
	}
}

// Enabled delegates to the inner handler.
func (sh *ServiceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return sh.inner.Enabled(ctx, level)
}

// Handle delegates to the inner handler.
func (sh *ServiceHandler) Handle(ctx context.Context, record slog.Record) error {
	err := sh.inner.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("service handler: %w", err)
	}

	return nil
}

// WithAttrs returns a new ServiceHandler with additional attributes on
// the inner handler.
func (sh *ServiceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ServiceHandler{
		inner: sh.inner.WithAttrs(attrs),
	}
}

// WithGroup returns a new ServiceHandler with a group prefix on the
// inner handler.
func (sh *ServiceHandler) WithGroup(name string) slog.Handler {
	return &ServiceHandler{
		inner: sh.inner.WithGroup(name),
	}
}
