package httpserver

import (
	"github.com/gin-gonic/gin"

	"wecom-relay/pkg/response"
)

// Service identity reported by the health routes.
const (
	HealthVersion = "1.0.0"
	ServiceName   = "wecom-relay"
)

func (srv *HTTPServer) healthPayload(status string) gin.H {
	h := gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
	if srv.rateStatus != nil {
		h["rate_limit"] = gin.H{
			"limit":     srv.rateStatus.Limit(),
			"remaining": srv.rateStatus.Remaining(),
			"reset_at":  srv.rateStatus.ResetAt(),
		}
	}
	return h
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.healthPayload("healthy"))
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.healthPayload("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.healthPayload("alive"))
}
