package main

import (
	"github.com/rs/zerolog/log"

	"tableflip.dev/movimientos/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatal().Err(err).Msg("error during command execution")
	}
}
