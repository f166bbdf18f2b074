package main

import (
	"log"

	"foome-hcm/internal/app"
	"foome-hcm/internal/bootstrap"
)

func main() {
	cfg := app.LoadConfig()

	a, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("build app: %v", err)
	}
	defer a.Close()

	if err := bootstrap.Serve(a); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
