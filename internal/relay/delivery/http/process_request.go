package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}
