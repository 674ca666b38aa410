package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/nutriapp/nutricli/internal/client/cli"
	"github.com/nutriapp/nutricli/internal/client/config"
	"github.com/nutriapp/nutricli/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
