package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wecom-relay/internal/message"
	"wecom-relay/internal/metrics"
	"wecom-relay/internal/relay"
)

// Send applies the rate limit, serialises msg and posts it to the webhook.
// Every outcome is logged and counted; nothing here panics on remote faults.
func (uc *implUseCase) Send(ctx context.Context, msg message.Message) error {
	kind := string(msg.Kind)

	if err := uc.limiter.Allow(); err != nil {
		metrics.IncSend(kind, metrics.OutcomeRateLimited)
		uc.l.Errorf(ctx, "relay.Send: %s message rejected: %v", kind, err)
		uc.limitHint.Do(func() {
			uc.l.Warnf(ctx, "relay.Send: sends are being rate limited; consider raising rate_limit")
		})
		return err
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		uc.l.Errorf(ctx, "relay.Send: failed to serialise %s message: %v", kind, err)
		return fmt.Errorf("serialise message: %w", err)
	}

	start := time.Now()
	resp, err := uc.client.Send(ctx, json.RawMessage(payload))
	elapsed := time.Since(start)

	if err != nil {
		metrics.ObserveSendLatency(kind, elapsed, false)
		metrics.IncSend(kind, metrics.OutcomeTransportError)
		uc.l.Errorf(ctx, "relay.Send: %s message request failed after %s: %v", kind, elapsed, err)
		return &relay.TransportError{Err: err}
	}

	if !resp.OK() {
		metrics.ObserveSendLatency(kind, elapsed, false)
		metrics.IncSend(kind, metrics.OutcomeDeliveryFailed)
		uc.l.Errorf(ctx, "relay.Send: %s message rejected by webhook: errcode=%d errmsg=%s", kind, resp.ErrCode, resp.ErrMsg)
		return &relay.DeliveryFailedError{Code: resp.ErrCode, Message: resp.ErrMsg}
	}

	metrics.ObserveSendLatency(kind, elapsed, true)
	metrics.IncSend(kind, metrics.OutcomeSuccess)
	uc.l.Infof(ctx, "relay.Send: %s message delivered in %s", kind, elapsed)
	return nil
}

// Relay builds the message described by input and sends it.
func (uc *implUseCase) Relay(ctx context.Context, input relay.RelayInput) error {
	msg, err := message.Build(input.Kind, input.Content)
	if err != nil {
		uc.l.Errorf(ctx, "relay.Relay: build %q message: %v", input.Kind, err)
		return err
	}
	return uc.Send(ctx, msg)
}
