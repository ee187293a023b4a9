package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/camptocamp/geoserver-mcp/cmd/geoserver-mcp/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := commands.Root(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
