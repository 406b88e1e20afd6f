package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/SahilSawant11/mizu/internal/buildinfo"
	"github.com/SahilSawant11/mizu/internal/cli"
	"github.com/SahilSawant11/mizu/internal/config"
	"github.com/SahilSawant11/mizu/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logFile, err := os.OpenFile("mizu.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logFile.Close()
	logger := logging.NewJSONLogger(logFile)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("%v", err)
	}
}
