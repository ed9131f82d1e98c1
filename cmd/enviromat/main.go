package main

import (
	"log"

	"github.com/enviromat/enviromat/internal/app"
	"github.com/enviromat/enviromat/internal/config"
	"github.com/enviromat/enviromat/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		log.Fatal(err)
	}
}
