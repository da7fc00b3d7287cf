package middleware

import "errors"

var ErrInvalidSecret = errors.New("invalid secret")

// invalidSecretMessage is the client-facing text for ErrInvalidSecret.
const invalidSecretMessage = "Invalid secret"
