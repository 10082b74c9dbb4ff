package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/crudgen/internal/watch"
)

// Test plan:
// 1. The session watches the configured manifest and template dir
// 2. Regeneration always uses the force policy
// 3. Cancellation is not an error; other session errors are wrapped

type fakeSession struct {
	run func(ctx context.Context) error
}

func (f *fakeSession) Run(ctx context.Context) error {
	return f.run(ctx)
}

func newTestWatchCommand(t *testing.T, session func(watch.Targets, func() error) Session) (*WatchCommand, string) {
	t.Helper()
	cfg, root := newTestProject(t, testManifest)
	cfg.Templates = filepath.Join(root, "stubs")

	loader := new(mockConfigLoader)
	loader.On("LoadConfig", "").Return(cfg, root, nil)

	notifier := new(mockSignalNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return()
	notifier.On("Stop", mock.Anything).Return()

	output := &mockOutput{}
	cmd := (&WatchCommand{}).WithDependencies(WatchDependencies{
		ConfigLoader:   loader,
		SignalNotifier: notifier,
		Output:         output,
		Generate: (&GenerateCommand{}).WithDependencies(GenerateDependencies{
			Output: output,
			Logger: zerolog.Nop(),
		}),
		Session: session,
	})
	return cmd, root
}

func TestWatchCommand_Execute_RegeneratesWithForce(t *testing.T) {
	var targets watch.Targets
	var cmd *WatchCommand
	var root string

	cmd, root = newTestWatchCommand(t, func(tg watch.Targets, regenerate func() error) Session {
		targets = tg
		return &fakeSession{run: func(ctx context.Context) error {
			require.NoError(t, regenerate())

			// Test: an edited file is replaced on the next change
			typePath := filepath.Join(root, "resources", "js", "types", "product.d.ts")
			require.NoError(t, os.WriteFile(typePath, []byte("edited"), 0644))
			require.NoError(t, regenerate())

			data, err := os.ReadFile(typePath)
			require.NoError(t, err)
			assert.Contains(t, string(data), "export interface Product {")
			return context.Canceled
		}}
	})

	err := cmd.Execute(context.Background(), GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "crudgen.yaml"), targets.Manifest)
	assert.Equal(t, filepath.Join(root, "stubs"), targets.Templates)
	assert.NotEmpty(t, targets.Exclude)
}

func TestWatchCommand_Execute_SessionError(t *testing.T) {
	cmd, _ := newTestWatchCommand(t, func(watch.Targets, func() error) Session {
		return &fakeSession{run: func(context.Context) error {
			return errors.New("too many open files")
		}}
	})

	err := cmd.Execute(context.Background(), GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch error")
	assert.Contains(t, err.Error(), "too many open files")
}

func TestWatchCommand_Execute_ConfigError(t *testing.T) {
	loader := new(mockConfigLoader)
	loader.On("LoadConfig", "").Return(nil, "", errors.New("config not found"))

	cmd := (&WatchCommand{}).WithDependencies(WatchDependencies{
		ConfigLoader: loader,
		Output:       &mockOutput{},
	})

	err := cmd.Execute(context.Background(), GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load project config")
}
