package shared

import (
	"context"
	"log/slog"

	"tabletop-reserve/internal/pkg/metrics"
)

// Dispatcher sends notifications after the owning mutation has committed. Failures are
// logged and counted, never returned: a notification must not fail the mutation.
type Dispatcher struct {
	gateway NotificationGateway
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewDispatcher(gateway NotificationGateway, m *metrics.Metrics, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		gateway: gateway,
		metrics: m,
		logger:  logger,
	}
}

// Multicast skips the call entirely when there is nobody to notify. It reports whether
// the gateway accepted the message.
func (d *Dispatcher) Multicast(ctx context.Context, kind string, tokens []string, title, body string, attrs ...any) bool {
	if len(tokens) == 0 {
		d.logger.Debug("No device tokens to notify", append([]any{"kind", kind}, attrs...)...)
		return false
	}

	if err := d.gateway.SendMulticast(ctx, tokens, title, body); err != nil {
		d.failed(kind, err, append(attrs, "tokens", len(tokens)))
		return false
	}
	d.metrics.NotificationsSent.WithLabelValues(kind).Inc()
	return true
}

func (d *Dispatcher) Topic(ctx context.Context, kind, topic, title, body, imageURL string, attrs ...any) bool {
	if err := d.gateway.SendTopic(ctx, topic, title, body, imageURL); err != nil {
		d.failed(kind, err, append(attrs, "topic", topic))
		return false
	}
	d.metrics.NotificationsSent.WithLabelValues(kind).Inc()
	return true
}

func (d *Dispatcher) failed(kind string, err error, attrs []any) {
	d.metrics.NotificationsFailed.WithLabelValues(kind).Inc()
	d.logger.Warn("Notification delivery failed",
		append([]any{"kind", kind, "error", err.Error()}, attrs...)...)
}
