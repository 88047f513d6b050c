// Package main serves the model directory listing.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"brickyard/internal/config"
	"brickyard/internal/modelserver"
)

func main() {
	if _, err := config.LoadDotEnv(config.DotEnvPath); err != nil {
		log.Fatalf("load env: %v", err)
	}
	cfg, err := modelserver.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[MODELS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := modelserver.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
