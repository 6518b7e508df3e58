package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the structured error response every endpoint returns.
type ErrorBody struct {
	Method  string `json:"method"`
	URI     string `json:"uri"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorBody{
		Method:  c.Request.Method,
		URI:     c.Request.URL.Path,
		Code:    code,
		Message: message,
	})
}

// UnknownEndpoint answers every unrouted request.
func UnknownEndpoint(c *gin.Context) {
	writeError(c, http.StatusNotFound, "Unknown Endpoint")
}
