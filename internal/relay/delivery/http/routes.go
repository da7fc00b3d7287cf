package http

import (
	"github.com/gin-gonic/gin"

	"wecom-relay/internal/middleware"
)

// RegisterRoutes mounts POST /send behind the shared-secret check.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.POST("/send", mw.RequireSecret(), h.Send)
}
