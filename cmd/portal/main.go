package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/cli"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(ctx)
}
