package main

import (
	"context"

	"github.com/pairspace/loveos/internal/client/cli"
	"github.com/pairspace/loveos/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}
