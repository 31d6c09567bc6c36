// Command service-gas serves the customer, driver and admin HTTP API
// together with the WebSocket live feed.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"service-gas-delivery/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildContainer(ctx)
	app.NewRunner().MustRun(container)
}
