// Command server runs the dictionary lookup API.
//
// Usage:
//
//	server
//
// Configuration is read from CONFIG_PATH (or ./config.yaml) and the
// environment; see internal/config for the full variable list.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/wordpeek/wordpeek-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
