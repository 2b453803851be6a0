package push

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindMulticast = "multicast"
	KindTopic     = "topic"

	RoutingKeyMulticast = "push.multicast"
	RoutingKeyTopic     = "push.topic"
)

// Message is the envelope consumed by the push delivery worker.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Tokens    []string  `json:"tokens,omitempty"`
	Topic     string    `json:"topic,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newMessage(kind string, now time.Time) Message {
	return Message{
		ID:        uuid.New(),
		Kind:      kind,
		CreatedAt: now.UTC(),
	}
}
