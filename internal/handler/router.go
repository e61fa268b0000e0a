package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/homelib/server/internal/middleware"
	"github.com/homelib/server/internal/service"
)

// Pinger reports storage liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles everything the router mounts.
type Services struct {
	Users     *service.UserService
	Artists   *service.ArtistService
	Albums    *service.AlbumService
	Tracks    *service.TrackService
	Favorites *service.FavoritesService
	Auth      *service.AuthService
}

// NewRouter builds the gin engine: middleware chain, public routes (root,
// health, docs, auth) and the JWT-guarded resource routes.
func NewRouter(svc *Services, db Pinger, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logging(log))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "home-library", "docs": "/doc"})
	})
	router.GET("/doc", docIndex)
	router.GET("/health", func(c *gin.Context) {
		if db != nil {
			if err := db.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(svc.Auth)
	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	protected := router.Group("/")
	protected.Use(middleware.Auth(svc.Auth, log))
	{
		userHandler := NewUserHandler(svc.Users)
		protected.GET("/user", userHandler.List)
		protected.GET("/user/:id", userHandler.Get)
		protected.POST("/user", userHandler.Create)
		protected.PUT("/user/:id", userHandler.UpdatePassword)
		protected.DELETE("/user/:id", userHandler.Delete)

		artistHandler := NewArtistHandler(svc.Artists)
		protected.GET("/artist", artistHandler.List)
		protected.GET("/artist/:id", artistHandler.Get)
		protected.POST("/artist", artistHandler.Create)
		protected.PUT("/artist/:id", artistHandler.Update)
		protected.DELETE("/artist/:id", artistHandler.Delete)

		albumHandler := NewAlbumHandler(svc.Albums)
		protected.GET("/album", albumHandler.List)
		protected.GET("/album/:id", albumHandler.Get)
		protected.POST("/album", albumHandler.Create)
		protected.PUT("/album/:id", albumHandler.Update)
		protected.DELETE("/album/:id", albumHandler.Delete)

		trackHandler := NewTrackHandler(svc.Tracks)
		protected.GET("/track", trackHandler.List)
		protected.GET("/track/:id", trackHandler.Get)
		protected.POST("/track", trackHandler.Create)
		protected.PUT("/track/:id", trackHandler.Update)
		protected.DELETE("/track/:id", trackHandler.Delete)

		favoritesHandler := NewFavoritesHandler(svc.Favorites)
		protected.GET("/favs", favoritesHandler.GetAll)
		protected.POST("/favs/artist/:id", favoritesHandler.AddArtist)
		protected.DELETE("/favs/artist/:id", favoritesHandler.RemoveArtist)
		protected.POST("/favs/album/:id", favoritesHandler.AddAlbum)
		protected.DELETE("/favs/album/:id", favoritesHandler.RemoveAlbum)
		protected.POST("/favs/track/:id", favoritesHandler.AddTrack)
		protected.DELETE("/favs/track/:id", favoritesHandler.RemoveTrack)
	}

	return router
}

// docIndex lists the REST surface for quick orientation.
func docIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"auth":      []string{"POST /auth/signup", "POST /auth/login", "POST /auth/refresh"},
		"user":      []string{"GET /user", "GET /user/:id", "POST /user", "PUT /user/:id", "DELETE /user/:id"},
		"artist":    []string{"GET /artist", "GET /artist/:id", "POST /artist", "PUT /artist/:id", "DELETE /artist/:id"},
		"album":     []string{"GET /album", "GET /album/:id", "POST /album", "PUT /album/:id", "DELETE /album/:id"},
		"track":     []string{"GET /track", "GET /track/:id", "POST /track", "PUT /track/:id", "DELETE /track/:id"},
		"favorites": []string{"GET /favs", "POST /favs/{artist|album|track}/:id", "DELETE /favs/{artist|album|track}/:id"},
	})
}
