package main

import (
	"context"
	"fmt"
	"os"

	"github.com/estudiantes/revista/internal/client/cli"
	"github.com/estudiantes/revista/internal/client/config"
	"github.com/estudiantes/revista/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewConsoleLogger(os.Stderr)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
