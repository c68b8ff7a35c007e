package main

import (
	"github.com/labstack/echo/v4"
	"github.com/zahin42/blog-backend/internal/router"
	"github.com/zahin42/blog-backend/pkg/config"
	"github.com/zahin42/blog-backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env)

	db, err := config.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.CloseDB()
	log.Info().Msg("connected to PostgreSQL")

	e := echo.New()
	e.HideBanner = true

	router.SetupMiddleware(e)
	if err := router.SetupRoutes(e, db.Postgres, log); err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
