// Command worker assigns drivers to pending requests, warms routes and
// sweeps stale requests and idle drivers.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"service-gas-delivery/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.NewWorkerRunner().MustRun(app.MustBuildWorkerContainer(ctx))
}
