// Package commands contains the CLI commands for the application
package commands

import (
	"context"
)

// Flags holds the values of the command line flags
type Flags struct {
	LogLevel string
	Config   string
	Models   []string
	Force    bool
	Ask      bool
}

type Controller struct {
	Flags *Flags
}

func (c *Controller) Generate(ctx context.Context) error {
	return NewGenerateCommand().Execute(ctx, c.generateOptions())
}

func (c *Controller) Watch(ctx context.Context) error {
	return NewWatchCommand().Execute(ctx, c.generateOptions())
}

func (c *Controller) Init(ctx context.Context) error {
	return NewInitCommand().Run(ctx)
}

func (c *Controller) generateOptions() GenerateOptions {
	opts := GenerateOptions{
		ConfigPath: c.Flags.Config,
		Models:     c.Flags.Models,
	}
	switch {
	case c.Flags.Force:
		opts.Overwrite = "force"
	case c.Flags.Ask:
		opts.Overwrite = "ask"
	}
	return opts
}
