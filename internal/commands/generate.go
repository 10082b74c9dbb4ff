package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/okra-platform/crudgen/internal/codegen"
	"github.com/okra-platform/crudgen/internal/codegen/stub"
	"github.com/okra-platform/crudgen/internal/codegen/writer"
	"github.com/okra-platform/crudgen/internal/config"
	"github.com/okra-platform/crudgen/internal/generate"
	"github.com/okra-platform/crudgen/internal/prompt"
	"github.com/okra-platform/crudgen/internal/schema"
)

// GenerateOptions selects what a generate or watch run produces
type GenerateOptions struct {
	ConfigPath string
	Models     []string
	// Overwrite overrides the configured policy when set
	Overwrite string
}

// GenerateDependencies for the generate command
type GenerateDependencies struct {
	ConfigLoader ConfigLoader
	Confirmer    writer.Confirmer
	FileSystem   writer.FileSystem
	Output       Output
	Logger       zerolog.Logger
}

// Summary totals the outcome of a run across models
type Summary struct {
	Written int
	Skipped int
	Failed  int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d created, %d skipped, %d failed", s.Written, s.Skipped, s.Failed)
}

// GenerateCommand encapsulates the generate logic with injected dependencies
type GenerateCommand struct {
	deps GenerateDependencies
}

// NewGenerateCommand creates a new generate command with default dependencies
func NewGenerateCommand() *GenerateCommand {
	logger := commandLogger("generate")
	return &GenerateCommand{
		deps: GenerateDependencies{
			ConfigLoader: &defaultConfigLoader{logger: logger},
			Confirmer:    prompt.NewConfirmer(),
			Output:       defaultOutput{},
			Logger:       logger,
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (gc *GenerateCommand) WithDependencies(deps GenerateDependencies) *GenerateCommand {
	gc.deps = deps
	return gc
}

// Execute loads the project configuration and generates every selected model
func (gc *GenerateCommand) Execute(ctx context.Context, opts GenerateOptions) error {
	cfg, projectRoot, err := gc.deps.ConfigLoader.LoadConfig(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}
	gc.deps.Logger.Debug().Str("root", projectRoot).Str("schema", cfg.Schema).Msg("config loaded")

	policyName := cfg.Overwrite
	if opts.Overwrite != "" {
		policyName = opts.Overwrite
	}
	policy, err := writer.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	summary, err := gc.Run(ctx, cfg, opts.Models, policy)
	gc.deps.Output.Println(summary.String())
	return err
}

// Run generates the selected models, or all manifest models when none are selected.
// Each model is independent; a model failing validation does not stop the others.
func (gc *GenerateCommand) Run(ctx context.Context, cfg *config.Config, models []string, policy writer.Policy) (Summary, error) {
	var summary Summary

	manifest, err := schema.LoadManifest(cfg.Schema)
	if err != nil {
		return summary, err
	}

	raws, err := selectModels(manifest, models)
	if err != nil {
		return summary, err
	}

	generator := gc.newGenerator(cfg)

	var errs []error
	for _, raw := range raws {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		report, err := generator.Generate(raw, policy)
		if err != nil {
			summary.Failed++
			gc.deps.Output.Printf("failed: model %s (%v)\n", raw.Name, err)
			errs = append(errs, err)
			continue
		}

		for _, entry := range report.Entries {
			gc.deps.Output.Println(entry.String())
		}
		summary.Written += report.Written()
		summary.Skipped += report.Skipped()
		summary.Failed += report.Failed()
		if err := report.Err(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return summary, fmt.Errorf("generation finished with failures: %w", errors.Join(errs...))
	}
	return summary, nil
}

func (gc *GenerateCommand) newGenerator(cfg *config.Config) *generate.Generator {
	dialogs := cfg.InertiaReact.Dialogs()

	store := stub.NewStore(cfg.Templates)
	composer := codegen.NewComposer(store, codegen.Options{UseDialogs: dialogs}, gc.deps.Logger)

	w := writer.NewWriter(gc.deps.Confirmer, gc.deps.Logger)
	if gc.deps.FileSystem != nil {
		w = w.WithFileSystem(gc.deps.FileSystem)
	}

	layout := writer.Layout{
		PagesPath:  cfg.InertiaReact.PagesPath,
		TypesPath:  cfg.InertiaReact.TypesPath,
		UseDialogs: dialogs,
	}
	return generate.NewGenerator(composer, w, layout, gc.deps.Logger)
}

func selectModels(manifest *schema.Manifest, names []string) ([]schema.RawModel, error) {
	if len(names) == 0 {
		if len(manifest.Models) == 0 {
			return nil, errors.New("manifest defines no models")
		}
		return manifest.Models, nil
	}

	raws := make([]schema.RawModel, 0, len(names))
	for _, name := range names {
		raw, err := manifest.Model(name)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return raws, nil
}
