package main

import (
	"os"

	"github.com/architeacher/inventory/internal/runtime"
)

func main() {
	service := runtime.New()

	if err := service.Run(); err != nil {
		log := service.Logger()
		log.Error().Err(err).Msg("service stopped with error")

		os.Exit(1)
	}
}
