package http

import (
	"errors"
	"net/http"

	"wecom-relay/internal/relay"
)

var errInvalidBody = errors.New("invalid request body")

// statusFor maps relay and builder errors to an HTTP status: input and
// rate-limit failures are 400, webhook and transport failures are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidBody), relay.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
