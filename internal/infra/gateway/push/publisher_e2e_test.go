//go:build e2e

package push_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"tabletop-reserve/internal/infra/gateway/push"
	"tabletop-reserve/internal/pkg/clock"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRabbitMQ(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(90 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start RabbitMQ container")
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate RabbitMQ container: %v", err)
		}
	})

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

func TestPublisher_RoutesMessages(t *testing.T) {
	url := startRabbitMQ(t)
	now := time.Date(2030, time.March, 14, 17, 0, 0, 0, time.UTC)

	pub, err := push.NewPublisher(url, "notifications", clock.NewMockClock(now), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = pub.Close() })

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	ch, err := conn.Channel()
	require.NoError(t, err)

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, "push.*", "notifications", false, nil))
	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, pub.SendMulticast(ctx, []string{"token-ana", "token-bob"}, "New player", "Bob joined"))
	require.NoError(t, pub.SendTopic(ctx, "shop_1", "New event at Board Room", "Catan on 14/03/2030", "https://cdn.example.com/logo.png"))

	var got []push.Message
	timeout := time.After(10 * time.Second)
	for len(got) < 2 {
		select {
		case d := <-deliveries:
			assert.Equal(t, "application/json", d.ContentType)
			var m push.Message
			require.NoError(t, json.Unmarshal(d.Body, &m))
			assert.Equal(t, m.ID.String(), d.MessageId)
			got = append(got, m)
		case <-timeout:
			t.Fatalf("received %d of 2 messages", len(got))
		}
	}

	assert.Equal(t, push.KindMulticast, got[0].Kind)
	assert.Equal(t, []string{"token-ana", "token-bob"}, got[0].Tokens)
	assert.True(t, got[0].CreatedAt.Equal(now))

	assert.Equal(t, push.KindTopic, got[1].Kind)
	assert.Equal(t, "shop_1", got[1].Topic)
	assert.Equal(t, "https://cdn.example.com/logo.png", got[1].ImageURL)
}
