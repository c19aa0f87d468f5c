package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/profilehub/profile-service/internal/api"
	"github.com/profilehub/profile-service/internal/infrastructure/db/postgres"
	"github.com/profilehub/profile-service/internal/pkg/config"
	"github.com/profilehub/profile-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}
	if err := postgres.EnsureBootstrapAdmin(db, cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminToken); err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin seed failed")
	}

	e := api.NewRouter(api.Dependencies{
		Users:         postgres.NewUserRepository(db),
		Notifications: postgres.NewNotificationRepository(db),
		UpgradeRoles:  cfg.UpgradeRoles,
		DB:            postgres.NewPinger(db),
		Logger:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Strs("upgrade_roles", cfg.UpgradeRoles).
		Msg("profile service started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
