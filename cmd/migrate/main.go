package main

import (
	"os"
	"reservas/config"
	"reservas/helper"
	"reservas/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	var err error

	switch os.Args[1] {
	case "up":
		err = helper.Up(cfg)
	case "down":
		err = helper.Down(cfg)
	case "drop":
		err = helper.Drop(cfg)
	case "step-up":
		err = helper.StepUp(cfg)
	case "seed":
		err = helper.Seed(cfg)
	default:
		log.Fatal().Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'seed'")
	}

	if err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
