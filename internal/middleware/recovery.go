package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homelib/server/pkg/httputil"
)

// Recovery converts panics into the standard 500 error envelope.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", GetRequestID(c)).
					Str("panic", fmt.Sprintf("%v", err)).
					Str("stack", string(debug.Stack())).
					Msg("panic recovered")

				httputil.AbortError(c, http.StatusInternalServerError, "Internal server error")
			}
		}()

		c.Next()
	}
}
