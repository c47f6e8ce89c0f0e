package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swcatalog/film-manager/internal/api"
	"github.com/swcatalog/film-manager/internal/core/service"
	"github.com/swcatalog/film-manager/internal/core/token"
	"github.com/swcatalog/film-manager/internal/infrastructure/config"
	"github.com/swcatalog/film-manager/internal/infrastructure/db/postgres"
	redisdb "github.com/swcatalog/film-manager/internal/infrastructure/db/redis"
	"github.com/swcatalog/film-manager/internal/infrastructure/swapi"
	syncworker "github.com/swcatalog/film-manager/internal/infrastructure/sync"
	"github.com/swcatalog/film-manager/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer db.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Dependencies ---
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := postgres.NewUserRepository(db)
	filmRepo := postgres.NewFilmRepository(db)
	catalog := swapi.NewClient(cfg.Catalog.FilmsURL, 0, log)
	syncLock := redisdb.NewSyncLock(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	filmService := service.NewFilmService(filmRepo, catalog, syncLock, log)

	if cfg.Catalog.SyncInterval > 0 {
		syncworker.NewScheduler(cfg.Catalog.SyncInterval, filmService, log).Start(ctx)
	}

	e := api.NewRouter(api.Services{
		Auth:  authService,
		Users: userService,
		Films: filmService,
	}, tokens, db, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("film manager API started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
