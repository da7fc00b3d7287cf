package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wecom-relay/internal/httpserver"
	"wecom-relay/internal/middleware"
	"wecom-relay/internal/ratelimit"
	relayHTTP "wecom-relay/internal/relay/delivery/http"
	"wecom-relay/internal/relay/usecase"
	"wecom-relay/pkg/log"
	"wecom-relay/pkg/wecom"
)

const secret = "s3cret"

type testEnv struct {
	engine *gin.Engine
	hits   *atomic.Int32
	reply  *atomic.Value
}

func setup(t *testing.T, limit int) testEnv {
	t.Helper()

	hits := &atomic.Int32{}
	reply := &atomic.Value{}
	reply.Store(`{"errcode":0,"errmsg":"ok"}`)

	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(reply.Load().(string)))
	}))
	t.Cleanup(hook.Close)

	l := log.NewNop()
	limiter := ratelimit.New(limit)
	uc := usecase.New(l, limiter, wecom.NewClient(hook.URL, time.Second))

	srv, err := httpserver.New(l, httpserver.Config{
		Logger:       l,
		Port:         8080,
		Mode:         gin.TestMode,
		Environment:  "test",
		Secret:       secret,
		RelayHandler: relayHTTP.New(l, uc),
		RateStatus:   limiter,
	})
	require.NoError(t, err)

	return testEnv{engine: srv.Handler(), hits: hits, reply: reply}
}

func (e testEnv) do(method, path, secretHeader, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secretHeader != "" {
		req.Header.Set(middleware.SecretHeader, secretHeader)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err, "relay handler is required")

	_, err = httpserver.New(nil, httpserver.Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)
}

func TestSend_EndToEnd(t *testing.T) {
	env := setup(t, 2)

	w := env.do(http.MethodPost, "/send", secret, `{"type":"text","content":"hello"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = env.do(http.MethodPost, "/send", secret, `{"type":"markdown","content":"**b**"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/send", secret, `{"type":"text","content":"third"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	assert.Equal(t, int32(2), env.hits.Load())
}

func TestSend_RemoteError(t *testing.T) {
	env := setup(t, 5)
	env.reply.Store(`{"errcode":1,"errmsg":"boom"}`)

	w := env.do(http.MethodPost, "/send", secret, `{"type":"text","content":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "boom")
}

func TestSend_WrongSecret(t *testing.T) {
	env := setup(t, 5)

	w := env.do(http.MethodPost, "/send", "bad", `{"type":"text","content":"hello"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Invalid secret"}`, w.Body.String())
	assert.Equal(t, int32(0), env.hits.Load())
}

func TestSystemRoutes(t *testing.T) {
	env := setup(t, 7)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := env.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"remaining":7`, path)
	}

	var health struct {
		Data struct {
			RateLimit struct {
				Limit     int       `json:"limit"`
				Remaining int       `json:"remaining"`
				ResetAt   time.Time `json:"reset_at"`
			} `json:"rate_limit"`
		} `json:"data"`
	}
	w := env.do(http.MethodGet, "/health", "", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, 7, health.Data.RateLimit.Limit)
	assert.WithinDuration(t, time.Now().Add(ratelimit.Window), health.Data.RateLimit.ResetAt, 5*time.Second)

	w = env.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/send")
}
