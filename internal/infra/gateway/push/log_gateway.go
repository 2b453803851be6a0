package push

import (
	"context"
	"log/slog"
)

// LogGateway stands in for the broker when none is configured. Messages are logged and dropped.
type LogGateway struct {
	logger *slog.Logger
}

func NewLogGateway(logger *slog.Logger) *LogGateway {
	return &LogGateway{logger: logger}
}

func (g *LogGateway) SendMulticast(_ context.Context, tokens []string, title, body string) error {
	g.logger.Info("Push multicast (not delivered)", "tokens", len(tokens), "title", title, "body", body)
	return nil
}

func (g *LogGateway) SendTopic(_ context.Context, topic, title, body, imageURL string) error {
	g.logger.Info("Push topic (not delivered)", "topic", topic, "title", title, "body", body, "image_url", imageURL)
	return nil
}
