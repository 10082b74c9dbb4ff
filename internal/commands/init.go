package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/okra-platform/crudgen/internal/config"
)

type InitOptions struct {
	Schema     string
	PagesPath  string
	TypesPath  string
	UseDialogs bool
	Overwrite  string
}

type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	Getwd() (string, error)
}

type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (fs *osFileSystem) Getwd() (string, error) {
	return os.Getwd()
}

type InitCommand struct {
	filesystem FileSystem
	output     Output
	// For testing: if set, skip prompting
	testOptions *InitOptions
}

func NewInitCommand() *InitCommand {
	return &InitCommand{
		filesystem: &osFileSystem{},
		output:     defaultOutput{},
	}
}

func (ic *InitCommand) Run(ctx context.Context) error {
	return ic.RunWithOptions(ctx)
}

func (ic *InitCommand) RunWithOptions(ctx context.Context, opts ...tea.ProgramOption) error {
	dir, err := ic.filesystem.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := ic.filesystem.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	var options *InitOptions

	// For testing: use provided options instead of prompting
	if ic.testOptions != nil {
		options = ic.testOptions
	} else {
		options, err = ic.promptInitOptions(opts...)
		if err != nil {
			return fmt.Errorf("failed to get init options: %w", err)
		}
	}

	data, err := newConfig(options).Marshal()
	if err != nil {
		return err
	}
	if err := ic.filesystem.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	ic.output.Printf("created: %s\n", configPath)
	return nil
}

func newConfig(options *InitOptions) *config.Config {
	defaults := config.Default()

	cfg := &config.Config{
		Schema:    options.Schema,
		Overwrite: options.Overwrite,
		InertiaReact: config.InertiaReactConfig{
			PagesPath:  options.PagesPath,
			TypesPath:  options.TypesPath,
			UseDialogs: &options.UseDialogs,
		},
		Watch: defaults.Watch,
	}
	if cfg.Schema == "" {
		cfg.Schema = defaults.Schema
	}
	if cfg.Overwrite == "" {
		cfg.Overwrite = defaults.Overwrite
	}
	if cfg.InertiaReact.PagesPath == "" {
		cfg.InertiaReact.PagesPath = defaults.InertiaReact.PagesPath
	}
	if cfg.InertiaReact.TypesPath == "" {
		cfg.InertiaReact.TypesPath = defaults.InertiaReact.TypesPath
	}
	return cfg
}

func (ic *InitCommand) promptInitOptions(opts ...tea.ProgramOption) (*InitOptions, error) {
	defaults := config.Default()
	options := &InitOptions{
		Schema:     defaults.Schema,
		PagesPath:  defaults.InertiaReact.PagesPath,
		TypesPath:  defaults.InertiaReact.TypesPath,
		UseDialogs: defaults.InertiaReact.Dialogs(),
		Overwrite:  defaults.Overwrite,
	}

	form := ic.createInitForm(options)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		// Normal execution
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return options, nil
}

func (ic *InitCommand) createInitForm(options *InitOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema manifest").
				Description("Column manifest produced by your schema introspection").
				Value(&options.Schema).
				Validate(notBlank("schema path")),

			huh.NewInput().
				Title("Pages path").
				Description("Base directory for generated pages").
				Value(&options.PagesPath).
				Validate(notBlank("pages path")),

			huh.NewInput().
				Title("Types path").
				Description("Base directory for generated type definitions").
				Value(&options.TypesPath).
				Validate(notBlank("types path")),

			huh.NewConfirm().
				Title("Render create and edit forms as dialogs?").
				Value(&options.UseDialogs),

			huh.NewSelect[string]().
				Title("Existing files").
				Description("What to do when a generated file already exists").
				Options(
					huh.NewOption("Skip", "skip"),
					huh.NewOption("Ask", "ask"),
					huh.NewOption("Overwrite", "force"),
				).
				Value(&options.Overwrite),
		),
	)
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
