package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okra-platform/crudgen/internal/config"
)

// Interfaces for dependency injection
type ConfigLoader interface {
	// LoadConfig loads the config at path, or discovers crudgen.json when path is empty.
	// It returns the config and the project root.
	LoadConfig(path string) (*config.Config, string, error)
}

type Output interface {
	Printf(format string, a ...any)
	Println(a ...any)
}

type SignalNotifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

// Default implementations
type defaultConfigLoader struct {
	logger zerolog.Logger
}

func (l *defaultConfigLoader) LoadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
		}
		cfg, err := config.LoadConfigFromPath(abs)
		if err != nil {
			return nil, "", err
		}
		return cfg, filepath.Dir(abs), nil
	}

	cfg, root, err := config.LoadConfig()
	if errors.Is(err, config.ErrNotFound) {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, "", fmt.Errorf("failed to get current directory: %w", wdErr)
		}
		l.logger.Debug().Str("dir", wd).Msg("no crudgen.json found, using defaults")
		cfg, err = config.LoadDefault(wd)
		if err != nil {
			return nil, "", err
		}
		return cfg, wd, nil
	}
	return cfg, root, err
}

type defaultOutput struct{}

func (defaultOutput) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

func (defaultOutput) Println(a ...any) {
	fmt.Println(a...)
}

type defaultSignalNotifier struct{}

func (defaultSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (defaultSignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

func commandLogger(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
