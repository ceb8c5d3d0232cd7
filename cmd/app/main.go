package main

import (
	"salas/config"
	"salas/di"
	"salas/helper"
	"salas/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Salas API
// @version 1.0
// @description Classroom and lab reservation service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	di.InitializeService().Serve()
}
