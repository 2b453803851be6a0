package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"tabletop-reserve/internal/pkg/clock"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

// Publisher hands notifications to the broker. A channel is not safe for concurrent
// publishing, so publishes are serialized.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	clock    clock.Clock
	logger   *slog.Logger

	mu sync.Mutex
}

func NewPublisher(url, exchange string, clk clock.Clock, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		clock:    clk,
		logger:   logger,
	}, nil
}

func (p *Publisher) SendMulticast(ctx context.Context, tokens []string, title, body string) error {
	msg := newMessage(KindMulticast, p.clock.Now())
	msg.Tokens = tokens
	msg.Title = title
	msg.Body = body
	return p.publish(ctx, RoutingKeyMulticast, msg)
}

func (p *Publisher) SendTopic(ctx context.Context, topic, title, body, imageURL string) error {
	msg := newMessage(KindTopic, p.clock.Now())
	msg.Topic = topic
	msg.Title = title
	msg.Body = body
	msg.ImageURL = imageURL
	return p.publish(ctx, RoutingKeyTopic, msg)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal push message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.ID.String(),
			Timestamp:    msg.CreatedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish push message: %w", err)
	}

	p.logger.Debug("Push message published", "routing_key", routingKey, "message_id", msg.ID.String())
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
