package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homelib/server/internal/service"
)

// TrackHandler serves /track.
type TrackHandler struct {
	service *service.TrackService
}

// NewTrackHandler creates a track handler.
func NewTrackHandler(service *service.TrackService) *TrackHandler {
	return &TrackHandler{service: service}
}

// List handles GET /track.
func (h *TrackHandler) List(c *gin.Context) {
	tracks, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tracks)
}

// Get handles GET /track/:id.
func (h *TrackHandler) Get(c *gin.Context) {
	track, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, track)
}

// Create handles POST /track.
func (h *TrackHandler) Create(c *gin.Context) {
	var in service.CreateTrackInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	track, err := h.service.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, track)
}

// Update handles PUT /track/:id.
func (h *TrackHandler) Update(c *gin.Context) {
	var in service.UpdateTrackInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	track, err := h.service.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, track)
}

// Delete handles DELETE /track/:id.
func (h *TrackHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
