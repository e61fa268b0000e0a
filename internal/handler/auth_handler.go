package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homelib/server/internal/service"
)

// AuthHandler serves /auth.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignUp handles POST /auth/signup. It confirms registration without
// issuing tokens.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var in service.SignUpInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.service.SignUp(c.Request.Context(), &in); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login handles POST /auth/login, issuing an access/refresh token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var in service.LoginInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.service.Login(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// Refresh handles POST /auth/refresh, rotating the refresh token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var in service.RefreshInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.service.Refresh(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}
