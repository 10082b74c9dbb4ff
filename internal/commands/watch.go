package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/okra-platform/crudgen/internal/codegen/writer"
	"github.com/okra-platform/crudgen/internal/config"
	"github.com/okra-platform/crudgen/internal/watch"
)

// WatchDependencies for the watch command
type WatchDependencies struct {
	ConfigLoader   ConfigLoader
	SignalNotifier SignalNotifier
	Output         Output
	// Generate is the command used on every change
	Generate *GenerateCommand
	// Session runs the watch loop; replaced in tests
	Session func(targets watch.Targets, regenerate func() error) Session
}

// Session is the blocking watch loop
type Session interface {
	Run(ctx context.Context) error
}

// WatchCommand encapsulates the watch logic with injected dependencies
type WatchCommand struct {
	deps WatchDependencies
}

// NewWatchCommand creates a new watch command with default dependencies
func NewWatchCommand() *WatchCommand {
	logger := commandLogger("watch")
	return &WatchCommand{
		deps: WatchDependencies{
			ConfigLoader:   &defaultConfigLoader{logger: logger},
			SignalNotifier: defaultSignalNotifier{},
			Output:         defaultOutput{},
			Generate:       NewGenerateCommand(),
			Session: func(targets watch.Targets, regenerate func() error) Session {
				return watch.NewSession(targets, regenerate, logger)
			},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (wc *WatchCommand) WithDependencies(deps WatchDependencies) *WatchCommand {
	wc.deps = deps
	return wc
}

// Execute regenerates with the force policy whenever the manifest or the template
// override directory changes, until interrupted.
func (wc *WatchCommand) Execute(ctx context.Context, opts GenerateOptions) error {
	cfg, projectRoot, err := wc.deps.ConfigLoader.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	wc.deps.Output.Printf("Project root: %s\n", projectRoot)
	wc.deps.Output.Printf("Schema: %s\n", cfg.Schema)

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	wc.deps.SignalNotifier.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer wc.deps.SignalNotifier.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			wc.deps.Output.Println("Stopping watch...")
			cancel()
		case <-ctx.Done():
		}
	}()

	session := wc.deps.Session(wc.targets(cfg), func() error {
		summary, err := wc.deps.Generate.Run(ctx, cfg, opts.Models, writer.PolicyForce)
		wc.deps.Output.Println(summary.String())
		return err
	})

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch error: %w", err)
	}
	return nil
}

func (wc *WatchCommand) targets(cfg *config.Config) watch.Targets {
	return watch.Targets{
		Manifest:  cfg.Schema,
		Templates: cfg.Templates,
		Exclude:   cfg.Watch.Exclude,
	}
}
