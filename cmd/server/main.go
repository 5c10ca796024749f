package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/quickcourt/quickcourt-backend/internal/app"
	"github.com/quickcourt/quickcourt-backend/internal/booking"
	"github.com/quickcourt/quickcourt-backend/internal/config"
	"github.com/quickcourt/quickcourt-backend/internal/db"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Setup(cfg.IsProduction)

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db")
	}
	defer pool.Close()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, continuing without cache")
			redisClient = nil
		}
	}

	container, err := app.NewContainer(app.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,

		DBPool:      pool,
		RedisClient: redisClient,
		CacheTTL:    cfg.RedisCacheTTL,

		JWTSecret:  cfg.JWTSecret,
		JWTTTL:     cfg.JWTAccessTokenTTL,
		BcryptCost: cfg.BcryptCost,

		StoragePath: cfg.StoragePath,

		PlatformRates: booking.PlatformRates{
			CoachingRatePerHour: cfg.CoachingRatePerHour,
			CleaningFlatFee:     cfg.CleaningFlatFee,
			PeakStartHour:       cfg.PeakStartHour,
			PeakEndHour:         cfg.PeakEndHour,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
