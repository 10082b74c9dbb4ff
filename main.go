package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/okra-platform/crudgen/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// each command needs its own flag instances
	selectionFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to crudgen.json (default: discovered from the working directory)",
				Destination: &ctrl.Flags.Config,
			},
			&cli.StringSliceFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "model to generate, repeatable (default: every model in the manifest)",
			},
		}
	}

	app := &cli.Command{
		Name:    "crudgen",
		Usage:   `Generate typed CRUD pages, forms and type definitions from table column metadata`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CRUDGEN_LOG_LEVEL"),
				Value:       "warn",
				Destination: &ctrl.Flags.LogLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate artifacts for the models in the schema manifest",
				Flags: append(selectionFlags(),
					&cli.BoolFlag{
						Name:        "force",
						Usage:       "overwrite existing files",
						Destination: &ctrl.Flags.Force,
					},
					&cli.BoolFlag{
						Name:        "ask",
						Usage:       "ask before overwriting each existing file",
						Destination: &ctrl.Flags.Ask,
					},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					if ctrl.Flags.Force && ctrl.Flags.Ask {
						return fmt.Errorf("--force and --ask cannot be combined")
					}
					ctrl.Flags.Models = c.StringSlice("model")
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "watch",
				Usage: "Regenerate whenever the schema manifest or templates change",
				Flags: selectionFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					ctrl.Flags.Models = c.StringSlice("model")
					return ctrl.Watch(ctx)
				},
			},
			{
				Name:  "init",
				Usage: "Create a crudgen.json in the current directory",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run crudgen")
	}
}
