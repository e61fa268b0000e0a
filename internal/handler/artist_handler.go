package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homelib/server/internal/service"
)

// ArtistHandler serves /artist.
type ArtistHandler struct {
	service *service.ArtistService
}

// NewArtistHandler creates an artist handler.
func NewArtistHandler(service *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// List handles GET /artist.
func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artists)
}

// Get handles GET /artist/:id.
func (h *ArtistHandler) Get(c *gin.Context) {
	artist, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

// Create handles POST /artist.
func (h *ArtistHandler) Create(c *gin.Context) {
	var in service.CreateArtistInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	artist, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artist)
}

// Update handles PUT /artist/:id.
func (h *ArtistHandler) Update(c *gin.Context) {
	var in service.UpdateArtistInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	artist, err := h.service.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artist)
}

// Delete handles DELETE /artist/:id.
func (h *ArtistHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
