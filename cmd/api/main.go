package main

import (
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yigit/courses/internal/bootstrap"
	"github.com/yigit/courses/internal/config"
	"github.com/yigit/courses/internal/db"
	"github.com/yigit/courses/internal/pkg/logger"
	"github.com/yigit/courses/internal/server"
)

// @title Courses API
// @version 1.0
// @description CRUD API for the course catalogue
// @BasePath /

func main() {
	app := &cli.App{
		Name:  "coursesd",
		Usage: "course catalogue REST service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "configs/config.yaml",
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"COURSES_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "serve",
				Aliases: []string{"s"},
				Usage:   "start the HTTP server",
				Action:  serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending database migrations and exit",
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("coursesd failed")
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	srv, err := server.NewServer(c.Context, c.String("config"))
	if err != nil {
		return err
	}

	if err := srv.Run(c.Context); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func migrate(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}
	if strings.EqualFold(cfg.Storage.Driver, config.StorageDriverMemory) {
		lgr.Info().Msg("Memory storage has no schema; nothing to migrate")
		return nil
	}

	ctx := c.Context
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	return bootstrap.RunMigrations(ctx, database.Pool, lgr)
}
