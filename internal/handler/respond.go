// Package handler maps HTTP verbs onto the services and converts their
// errors into the uniform error envelope.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/homelib/server/pkg/apperr"
	"github.com/homelib/server/pkg/httputil"
)

// respondError writes err as an error envelope. Unknown error kinds collapse
// to 500 with a generic message.
func respondError(c *gin.Context, err error) {
	httputil.WriteError(c, apperr.HTTPStatus(err), apperr.PublicMessage(err))
}

// bindJSON decodes the request body, mapping malformed payloads to a 400.
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return apperr.ErrInvalidArgument.WithMessage("Invalid request body").WithError(err)
	}
	return nil
}
