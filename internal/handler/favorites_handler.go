package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homelib/server/internal/service"
)

// FavoritesHandler serves /favs.
type FavoritesHandler struct {
	service *service.FavoritesService
}

// NewFavoritesHandler creates a favorites handler.
func NewFavoritesHandler(service *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{service: service}
}

// GetAll handles GET /favs, expanding stored ids to full records.
func (h *FavoritesHandler) GetAll(c *gin.Context) {
	favorites, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// AddArtist handles POST /favs/artist/:id.
func (h *FavoritesHandler) AddArtist(c *gin.Context) {
	if err := h.service.AddArtist(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// RemoveArtist handles DELETE /favs/artist/:id.
func (h *FavoritesHandler) RemoveArtist(c *gin.Context) {
	if err := h.service.RemoveArtist(c.Request.Context(), c.Param("id"), service.FailIfMissing); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddAlbum handles POST /favs/album/:id.
func (h *FavoritesHandler) AddAlbum(c *gin.Context) {
	if err := h.service.AddAlbum(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// RemoveAlbum handles DELETE /favs/album/:id.
func (h *FavoritesHandler) RemoveAlbum(c *gin.Context) {
	if err := h.service.RemoveAlbum(c.Request.Context(), c.Param("id"), service.FailIfMissing); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTrack handles POST /favs/track/:id.
func (h *FavoritesHandler) AddTrack(c *gin.Context) {
	if err := h.service.AddTrack(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// RemoveTrack handles DELETE /favs/track/:id.
func (h *FavoritesHandler) RemoveTrack(c *gin.Context) {
	if err := h.service.RemoveTrack(c.Request.Context(), c.Param("id"), service.FailIfMissing); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
