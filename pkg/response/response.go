package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a success body carrying data (omitted when nil).
func NewOKResp(data any) Resp {
	return Resp{
		Status: StatusSuccess,
		Data:   data,
	}
}

// NewErrorResp returns an error body with the given message.
func NewErrorResp(message string) Resp {
	if message == "" {
		message = DefaultErrorMessage
	}
	return Resp{
		Status:  StatusError,
		Message: message,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends 400 with the error text as message.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, NewErrorResp(errText(err)))
}

// InternalError sends 500 with the error text as message.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, NewErrorResp(errText(err)))
}

// Unauthorized aborts the chain with 401 and message.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResp(message))
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
