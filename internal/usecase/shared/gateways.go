package shared

import "context"

//go:generate mockgen -source=gateways.go -destination=../../../tests/mock/shared/gateways.go -package=sharedmock

// NotificationGateway hands push notifications to the delivery provider. Delivery is
// best-effort; a nil error only means the message was accepted.
type NotificationGateway interface {
	SendMulticast(ctx context.Context, tokens []string, title, body string) error
	SendTopic(ctx context.Context, topic, title, body, imageURL string) error
}

type GameMetadata struct {
	ExternalID   string
	Name         string
	Description  string
	CategoryName string
}

// GameLookupGateway resolves games from the remote catalog. A nil result with a nil
// error means the remote has no game with that id.
type GameLookupGateway interface {
	FetchGameByExternalID(ctx context.Context, externalID string) (*GameMetadata, error)
}
