package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homelib/server/internal/service"
)

// AlbumHandler serves /album.
type AlbumHandler struct {
	service *service.AlbumService
}

// NewAlbumHandler creates an album handler.
func NewAlbumHandler(service *service.AlbumService) *AlbumHandler {
	return &AlbumHandler{service: service}
}

// List handles GET /album.
func (h *AlbumHandler) List(c *gin.Context) {
	albums, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

// Get handles GET /album/:id.
func (h *AlbumHandler) Get(c *gin.Context) {
	album, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

// Create handles POST /album.
func (h *AlbumHandler) Create(c *gin.Context) {
	var in service.CreateAlbumInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	album, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, album)
}

// Update handles PUT /album/:id.
func (h *AlbumHandler) Update(c *gin.Context) {
	var in service.UpdateAlbumInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	album, err := h.service.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

// Delete handles DELETE /album/:id.
func (h *AlbumHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
