package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/homelib/server/internal/config"
	"github.com/homelib/server/internal/database"
	"github.com/homelib/server/internal/handler"
	"github.com/homelib/server/internal/repository"
	"github.com/homelib/server/internal/service"
	"github.com/homelib/server/migrations"
	"github.com/homelib/server/pkg/hash"
	"github.com/homelib/server/pkg/token"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(&cfg.Log)

	ctx := context.Background()
	pool, err := database.Connect(ctx, &cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := database.Migrate(cfg.Postgres.DSN(), migrations.FS, "."); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("database ready")

	userRepo := repository.NewUserRepository(pool)
	artistRepo := repository.NewArtistRepository(pool)
	albumRepo := repository.NewAlbumRepository(pool)
	trackRepo := repository.NewTrackRepository(pool)
	favoritesRepo := repository.NewFavoritesRepository(pool)

	hasher := hash.NewHasher(cfg.JWT.BcryptCost)
	tokens := token.NewManager(&token.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Issuer:        cfg.JWT.Issuer,
		AccessExpiry:  cfg.JWT.AccessExpiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})

	favoritesService := service.NewFavoritesService(favoritesRepo, artistRepo, albumRepo, trackRepo)
	userService := service.NewUserService(userRepo, hasher)
	svc := &handler.Services{
		Users:     userService,
		Artists:   service.NewArtistService(artistRepo, albumRepo, trackRepo, favoritesService, log),
		Albums:    service.NewAlbumService(albumRepo, artistRepo, trackRepo, favoritesService, log),
		Tracks:    service.NewTrackService(trackRepo, artistRepo, albumRepo, favoritesService, log),
		Favorites: favoritesService,
		Auth:      service.NewAuthService(userRepo, userService, hasher, tokens),
	}

	var sweeperCron *cron.Cron
	if cfg.Sweeper.Enabled {
		sweeper := service.NewIntegritySweeper(favoritesRepo, artistRepo, albumRepo, trackRepo, log)
		sweeperCron = cron.New()
		_, err := sweeperCron.AddFunc(cfg.Sweeper.Schedule, func() {
			if _, err := sweeper.Sweep(context.Background()); err != nil {
				log.Error().Err(err).Msg("favorites sweep failed")
			}
		})
		if err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Sweeper.Schedule).Msg("invalid sweeper schedule")
		}
		sweeperCron.Start()
		defer sweeperCron.Stop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(svc, pool, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("stopped")
}

func newLogger(cfg *config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.Pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger
}
