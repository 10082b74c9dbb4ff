package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Targets lists what a session watches
type Targets struct {
	Manifest  string
	Templates string
	Exclude   []string
}

// Session regenerates after every relevant change until its context is cancelled
type Session struct {
	targets    Targets
	regenerate func() error
	logger     zerolog.Logger
}

// NewSession creates a session that calls regenerate once at start and after each change
func NewSession(targets Targets, regenerate func() error, logger zerolog.Logger) *Session {
	return &Session{
		targets:    targets,
		regenerate: regenerate,
		logger:     logger.With().Str("component", "watch").Logger(),
	}
}

// Run blocks until ctx is cancelled. Cancellation is not an error.
func (s *Session) Run(ctx context.Context) error {
	s.run("initial run")

	watcher, err := NewFileWatcher(s.targets.Exclude, s.handleFileChange, s.logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.AddFile(s.targets.Manifest); err != nil {
		return err
	}
	if s.targets.Templates != "" {
		if _, err := os.Stat(s.targets.Templates); err == nil {
			if err := watcher.AddDirectory(s.targets.Templates); err != nil {
				return fmt.Errorf("failed to watch template directory: %w", err)
			}
		} else {
			s.logger.Warn().Str("path", s.targets.Templates).Msg("template directory does not exist, not watching it")
		}
	}

	s.logger.Info().Str("manifest", s.targets.Manifest).Msg("watching for changes")

	if err := watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Session) handleFileChange(path string, op fsnotify.Op) {
	var action string
	switch {
	case op.Has(fsnotify.Create):
		action = "created"
	case op.Has(fsnotify.Write):
		action = "modified"
	case op.Has(fsnotify.Remove):
		action = "deleted"
	case op.Has(fsnotify.Rename):
		action = "renamed"
	default:
		return
	}

	s.logger.Info().Str("file", filepath.Base(path)).Str("action", action).Msg("change detected")
	s.run(action + " " + path)
}

func (s *Session) run(reason string) {
	if err := s.regenerate(); err != nil {
		s.logger.Error().Err(err).Str("reason", reason).Msg("regeneration failed")
		return
	}
	s.logger.Debug().Str("reason", reason).Msg("regeneration finished")
}
