package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"wecom-relay/internal/middleware"
	relayHTTP "wecom-relay/internal/relay/delivery/http"
	"wecom-relay/pkg/log"
)

// RateStatus exposes the limiter state shown on the health routes.
type RateStatus interface {
	Limit() int
	Remaining() int
	ResetAt() time.Time
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Relay domain
	relayHandler relayHTTP.Handler
	rateStatus   RateStatus
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Secret      string

	// Relay domain
	RelayHandler relayHTTP.Handler
	RateStatus   RateStatus
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           middleware.New(logger, cfg.Secret),
		relayHandler: cfg.RelayHandler,
		rateStatus:   cfg.RateStatus,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.relayHandler == nil {
		return errors.New("relay handler is required")
	}
	return nil
}
