package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// FileName is the configuration file looked up from the working directory upwards
const FileName = "crudgen.json"

// ErrNotFound is returned when no crudgen.json exists in the directory tree
var ErrNotFound = errors.New("config not found")

// Environment keys overriding crudgen.json
const (
	EnvPagesPath  = "CRUDGEN_PAGES_PATH"
	EnvTypesPath  = "CRUDGEN_TYPES_PATH"
	EnvUseDialogs = "CRUDGEN_USE_DIALOGS"
	EnvOverwrite  = "CRUDGEN_OVERWRITE"
	EnvTemplates  = "CRUDGEN_TEMPLATES"
)

// Config represents the crudgen.json configuration file
type Config struct {
	Schema       string             `json:"schema"`
	Overwrite    string             `json:"overwrite"`
	Templates    string             `json:"templates,omitempty"`
	InertiaReact InertiaReactConfig `json:"inertiaReact"`
	Watch        WatchConfig        `json:"watch"`
}

// InertiaReactConfig contains output settings for the inertia-react target
type InertiaReactConfig struct {
	PagesPath  string `json:"pagesPath"`
	TypesPath  string `json:"typesPath"`
	UseDialogs *bool  `json:"useDialogs,omitempty"`
}

// WatchConfig contains settings for the watch command
type WatchConfig struct {
	Exclude []string `json:"exclude"`
}

// Dialogs reports whether forms render as dialogs rather than pages
func (c InertiaReactConfig) Dialogs() bool {
	return c.UseDialogs == nil || *c.UseDialogs
}

// Default returns a configuration with every default applied
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// LoadConfig loads crudgen.json from the current directory or a parent directory.
// It returns the config and the project root holding it.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads a configuration file, overlays .env and the process
// environment, and resolves relative paths against the file's directory.
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.finish(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadDefault returns the defaults for a project without crudgen.json, still honoring
// .env in root and the process environment.
func LoadDefault(root string) (*Config, error) {
	config := &Config{}
	if err := config.finish(root); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) finish(root string) error {
	dotenv, err := readDotenv(filepath.Join(root, ".env"))
	if err != nil {
		return err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := c.applyEnv(lookup); err != nil {
		return err
	}

	c.applyDefaults()
	c.Resolve(root)
	return nil
}

// Marshal encodes the configuration as indented JSON
func (c *Config) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Resolve makes every relative path absolute against root
func (c *Config) Resolve(root string) {
	c.Schema = resolvePath(root, c.Schema)
	c.Templates = resolvePath(root, c.Templates)
	c.InertiaReact.PagesPath = resolvePath(root, c.InertiaReact.PagesPath)
	c.InertiaReact.TypesPath = resolvePath(root, c.InertiaReact.TypesPath)
}

func (c *Config) applyDefaults() {
	if c.Schema == "" {
		c.Schema = "./crudgen.yaml"
	}
	if c.Overwrite == "" {
		c.Overwrite = "skip"
	}
	if c.InertiaReact.PagesPath == "" {
		c.InertiaReact.PagesPath = "resources/js/pages"
	}
	if c.InertiaReact.TypesPath == "" {
		c.InertiaReact.TypesPath = "resources/js/types"
	}
	if c.InertiaReact.UseDialogs == nil {
		dialogs := true
		c.InertiaReact.UseDialogs = &dialogs
	}
	if len(c.Watch.Exclude) == 0 {
		c.Watch.Exclude = []string{"*~", "*.swp", "*.tmp", ".#*"}
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPagesPath); ok && v != "" {
		c.InertiaReact.PagesPath = v
	}
	if v, ok := lookup(EnvTypesPath); ok && v != "" {
		c.InertiaReact.TypesPath = v
	}
	if v, ok := lookup(EnvOverwrite); ok && v != "" {
		c.Overwrite = v
	}
	if v, ok := lookup(EnvTemplates); ok && v != "" {
		c.Templates = v
	}
	if v, ok := lookup(EnvUseDialogs); ok && v != "" {
		dialogs, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvUseDialogs, v, err)
		}
		c.InertiaReact.UseDialogs = &dialogs
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}

func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// loadConfigFromDir searches for crudgen.json in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrNotFound, FileName, startDir)
}
