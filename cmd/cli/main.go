package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/cli"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
