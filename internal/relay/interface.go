package relay

import (
	"context"

	"wecom-relay/internal/message"
	"wecom-relay/pkg/wecom"
)

// UseCase sends messages to the configured webhook.
type UseCase interface {
	// Send rate-limits, serialises and delivers msg.
	Send(ctx context.Context, msg message.Message) error

	// Relay builds a message from a kind tag and content, then sends it.
	Relay(ctx context.Context, input RelayInput) error
}

// Limiter admits or refuses one send.
type Limiter interface {
	Allow() error
}

// WebhookClient performs the outbound webhook call.
type WebhookClient interface {
	Send(ctx context.Context, payload any) (wecom.APIResponse, error)
}
