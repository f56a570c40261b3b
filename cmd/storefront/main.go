package main

import (
	"fmt"
	"os"

	"github.com/RD107924/ruandi-shop-v2/config"
	"github.com/RD107924/ruandi-shop-v2/pkg/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	app := InitApp(cfg)

	cliApp := &cli.App{
		Name:     "storefront",
		Usage:    "軟蒂代購商店終端",
		Commands: app.Commands(),
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("command failed", zap.Error(err))
	}
}
