package main

import (
	"os"
	"salas/config"
	"salas/helper"
	"salas/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop or version")
	}

	cfg := config.Get()
	logger.Configure(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
