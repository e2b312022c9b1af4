package main

import (
	"reservas/config"
	"reservas/di"
	"reservas/helper"
	"reservas/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Reservas API
// @version 1.0
// @description Rooms, reservation states, reservations and their annotations.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
