package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homelib/server/internal/domain"
	"github.com/homelib/server/pkg/httputil"
)

const userKey = "current_user"

// Authenticator resolves an access token to a live user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*domain.User, error)
}

// Auth guards protected routes: it extracts the bearer token, verifies it
// against the access secret and resolves the claimed user. Public routes are
// mounted outside the guarded group and never reach this middleware.
func Auth(authenticator Authenticator, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		user, err := authenticator.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			log.Warn().
				Str("request_id", GetRequestID(c)).
				Err(err).
				Msg("authentication failed")
			abortUnauthorized(c, "Unauthorized")
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the context.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

func abortUnauthorized(c *gin.Context, message string) {
	httputil.AbortError(c, http.StatusUnauthorized, message)
}
