package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"wecom-relay/internal/middleware"
	"wecom-relay/pkg/log"
)

func newEngine(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), secret)

	r := gin.New()
	r.Use(mw.RequestID(), mw.RequestLog())
	r.POST("/guarded", mw.RequireSecret(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": log.RequestIDFromContext(c.Request.Context())})
	})
	return r
}

func TestRequireSecret(t *testing.T) {
	r := newEngine("s3cret")

	tests := []struct {
		name   string
		secret string
		body   string
		code   int
	}{
		{"valid secret", "s3cret", `{}`, http.StatusOK},
		{"wrong secret", "nope", `{"type":"text","content":"x"}`, http.StatusUnauthorized},
		{"missing secret", "", `{"type":"text","content":"x"}`, http.StatusUnauthorized},
		{"wrong secret garbage body", "nope", `{{{`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/guarded", strings.NewReader(tt.body))
			if tt.secret != "" {
				req.Header.Set(middleware.SecretHeader, tt.secret)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusUnauthorized {
				assert.JSONEq(t, `{"status":"error","message":"Invalid secret"}`, w.Body.String())
			}
		})
	}
}

func TestRequireSecret_EmptyConfiguredSecret(t *testing.T) {
	r := newEngine("")

	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	req.Header.Set(middleware.SecretHeader, "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	r := newEngine("s3cret")

	t.Run("generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
		req.Header.Set(middleware.SecretHeader, "s3cret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		id := w.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Contains(t, w.Body.String(), id)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
		req.Header.Set(middleware.SecretHeader, "s3cret")
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, w.Body.String(), "abc-123")
	})
}
