package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wecom-relay/pkg/response"
)

// Send godoc
// @Summary     Relay a message to the webhook
// @Description Builds a text, markdown, link or image message and posts it to the configured webhook.
// @Tags        Relay
// @Accept      json
// @Produce     json
// @Param       X-API-Secret header string  true "Shared API secret"
// @Param       body         body   sendReq true "Message type and content"
// @Success     200 {object} response.Resp "Delivered"
// @Failure     400 {object} response.Resp "Bad input or rate limit exceeded"
// @Failure     401 {object} response.Resp "Invalid secret"
// @Failure     500 {object} response.Resp "Webhook rejected the message or was unreachable"
// @Router      /send [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		h.l.Warnf(ctx, "relay.http.Send: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.uc.Relay(ctx, req.toInput()); err != nil {
		if statusFor(err) == http.StatusBadRequest {
			response.Error(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}
