package main

import (
	"fmt"
	"os"

	"Spotlight/config"
	"Spotlight/models"
	"Spotlight/pkg/database"
	"Spotlight/pkg/log"
	"Spotlight/pkg/server"
	"Spotlight/pkg/snowflake"

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

	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					if err := snowflake.Init(cfg.App.NodeID); err != nil {
						return fmt.Errorf("snowflake node %d: %w", cfg.App.NodeID, err)
					}

					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(cfg)
					if err := db.WithContext(ctx.Context).AutoMigrate(models.Tables()...); err != nil {
						return err
					}
					log.L.Info("migrate done", zap.Int("tables", len(models.Tables())))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
