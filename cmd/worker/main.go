package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"foome-hcm/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := app.LoadConfig()
	if err := app.RunWorker(ctx, cfg); err != nil {
		log.Fatalf("worker: %v", err)
	}
}
