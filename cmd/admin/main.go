package main

import (
	"context"
	"log"
	"os"

	"github.com/joseotaviopc/api-ari/internal/admin"
	"github.com/joseotaviopc/api-ari/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, closeStore, err := admin.Open(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer closeStore()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Printf("%v", err)
		closeStore()
		os.Exit(1)
	}

}
