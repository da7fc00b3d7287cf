package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"wecom-relay/pkg/response"
)

// RequireSecret rejects requests whose X-API-Secret header does not match the
// configured secret. The body is never read, so a bad secret always yields 401.
// An empty configured secret rejects every request.
func (m Middleware) RequireSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(SecretHeader)
		if m.secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(m.secret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.RequireSecret: %v: %s %s from %s", ErrInvalidSecret, c.Request.Method, c.Request.URL.Path, c.ClientIP())
			response.Unauthorized(c, invalidSecretMessage)
			return
		}
		c.Next()
	}
}
