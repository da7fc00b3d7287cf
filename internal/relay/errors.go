package relay

import (
	"errors"
	"fmt"

	"wecom-relay/internal/message"
	"wecom-relay/internal/ratelimit"
)

var (
	ErrRateLimitExceeded = ratelimit.ErrRateLimitExceeded
	ErrDeliveryFailed    = errors.New("delivery failed")
	ErrTransport         = errors.New("transport error")
)

// DeliveryFailedError is returned when the webhook answered with a non-zero errcode.
type DeliveryFailedError struct {
	Code    int
	Message string
}

func (e *DeliveryFailedError) Error() string {
	return fmt.Sprintf("delivery failed: %s (errcode %d)", e.Message, e.Code)
}

func (e *DeliveryFailedError) Unwrap() error {
	return ErrDeliveryFailed
}

// TransportError wraps a network, timeout or decoding fault of the webhook call.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// IsClientError reports whether err was caused by the caller's input or the
// local rate limit rather than by the webhook or the network.
func IsClientError(err error) bool {
	return errors.Is(err, message.ErrInvalidKind) ||
		errors.Is(err, message.ErrMissingField) ||
		errors.Is(err, message.ErrInvalidContent) ||
		errors.Is(err, ErrRateLimitExceeded)
}
