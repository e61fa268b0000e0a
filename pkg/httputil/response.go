// Package httputil provides the uniform HTTP error envelope shared by the
// handler boundary and the middleware chain.
package httputil

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorEnvelope is the error body returned by every endpoint.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Message    string `json:"message"`
}

// NewErrorEnvelope builds the envelope for the current request.
func NewErrorEnvelope(c *gin.Context, status int, message string) ErrorEnvelope {
	return ErrorEnvelope{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Path:       c.Request.URL.Path,
		Method:     c.Request.Method,
		Message:    message,
	}
}

// WriteError writes the envelope with the given status.
func WriteError(c *gin.Context, status int, message string) {
	c.JSON(status, NewErrorEnvelope(c, status, message))
}

// AbortError writes the envelope and aborts the remaining handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewErrorEnvelope(c, status, message))
}
