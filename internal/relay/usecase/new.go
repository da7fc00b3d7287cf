package usecase

import (
	"time"

	"golang.org/x/time/rate"

	"wecom-relay/internal/relay"
	pkgLog "wecom-relay/pkg/log"
)

// limitHintInterval spaces out the "raise rate_limit" hint in the logs.
const limitHintInterval = 5 * time.Minute

type implUseCase struct {
	l       pkgLog.Logger
	limiter relay.Limiter
	client  relay.WebhookClient

	limitHint *rate.Sometimes
}

// New creates a new relay UseCase instance.
func New(
	l pkgLog.Logger,
	limiter relay.Limiter,
	client relay.WebhookClient,
) relay.UseCase {
	return &implUseCase{
		l:         l,
		limiter:   limiter,
		client:    client,
		limitHint: &rate.Sometimes{First: 1, Interval: limitHintInterval},
	}
}
