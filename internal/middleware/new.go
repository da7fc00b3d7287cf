package middleware

import (
	"wecom-relay/pkg/log"
)

// SecretHeader carries the shared API secret on inbound requests.
const SecretHeader = "X-API-Secret"

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

type Middleware struct {
	l      log.Logger
	secret string
}

func New(l log.Logger, secret string) Middleware {
	return Middleware{
		l:      l,
		secret: secret,
	}
}
