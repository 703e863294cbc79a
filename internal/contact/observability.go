package contact

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// SubmitEvent describes one hand-off of a mailto URI to the host.
type SubmitEvent struct {
	HasName    bool
	MessageLen int
	URILen     int
	Duration   time.Duration
	Err        error
}

// Observer receives submission events.
type Observer interface {
	ObserveSubmit(ctx context.Context, event SubmitEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveSubmit(context.Context, SubmitEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes submission events to w. Form contents are never
// logged, only their sizes.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveSubmit(ctx context.Context, event SubmitEvent) {
	attrs := []any{
		"has_name", event.HasName,
		"message_len", event.MessageLen,
		"uri_len", event.URILen,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "contact_submit", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "contact_submit", attrs...)
}
