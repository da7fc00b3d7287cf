package http

import (
	"strings"

	"wecom-relay/internal/message"
	"wecom-relay/internal/relay"
)

// --- Request DTOs ---

// sendReq is the body of POST /send. Content is a string for text and
// markdown, an object for link and image.
type sendReq struct {
	Type    string `json:"type" example:"text"`
	Content any    `json:"content" swaggertype:"object"`
}

func (r sendReq) validate() error {
	if strings.TrimSpace(r.Type) == "" {
		return message.ErrInvalidKind
	}
	return nil
}

func (r sendReq) toInput() relay.RelayInput {
	return relay.RelayInput{
		Kind:    r.Type,
		Content: r.Content,
	}
}
