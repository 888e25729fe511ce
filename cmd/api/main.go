package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"designer-shortlist/internal/config"
	"designer-shortlist/internal/interfaces/router"
	"designer-shortlist/internal/pkg/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	app, db, rdb, err := router.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("database handle")
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	dbKind := "sqlite"
	if cfg.DatabaseURL != "" {
		dbKind = "postgres"
	}
	log.Info().Str("driver", dbKind).Msg("Database connected")

	if rdb != nil {
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		log.Info().Msg("Redis connected")
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info().Msg("Shutting down")
		_ = app.Shutdown()
	}()

	log.Info().
		Str("addr", "http://localhost:"+cfg.Port).
		Str("health", "http://localhost:"+cfg.Port+"/health/json").
		Str("env", cfg.Env).
		Msg("Server running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}

	if rdb != nil {
		_ = rdb.Close()
	}
	_ = sqlDB.Close()
}
