// Package config stores named trim targets in a YAML file under the
// user's config directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/slickdexic/layertrim/internal/truncate"
)

// AppName is used for the config directory and user-facing messages.
const AppName = "layertrim"

// EnvConfigDir overrides the config directory location when set.
const EnvConfigDir = "LAYERTRIM_CONFIG_DIR"

// CanvasManagerName is the built-in target seeded into new configs.
const CanvasManagerName = "canvas-manager"

// canvasManagerPath is the file the original repair was written for.
const canvasManagerPath = `f:\Docker\mediawiki\extensions\Layers\resources\ext.layers.editor\CanvasManager.js`

// ErrTargetNotFound reports a lookup for a target name that is not configured.
var ErrTargetNotFound = errors.New("target not found")

// Target is a named truncation profile.
type Target struct {
	Path    string `yaml:"path"`
	Retain  int    `yaml:"retain"`
	Closing string `yaml:"closing"`
	Suffix  string `yaml:"suffix,omitempty"`
}

// Config is the on-disk configuration.
type Config struct {
	DefaultTarget string            `yaml:"defaultTarget,omitempty"`
	Targets       map[string]Target `yaml:"targets"`
}

// Dir returns the directory holding the config file.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", AppName)
	}
	return "." + AppName
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file. A missing file yields DefaultConfig,
// so first runs work without any setup.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DefaultConfig returns a config seeded with the built-in target.
func DefaultConfig() *Config {
	cfg := &Config{
		DefaultTarget: CanvasManagerName,
		Targets: map[string]Target{
			CanvasManagerName: {
				Path:    canvasManagerPath,
				Retain:  truncate.DefaultRetain,
				Closing: truncate.DefaultClosing,
				Suffix:  truncate.DefaultSuffix,
			},
		},
	}
	return cfg
}

// Resolve looks up a target by name. An empty name resolves the
// default target.
func (c *Config) Resolve(name string) (Target, error) {
	if name == "" {
		name = c.DefaultTarget
	}
	if name == "" {
		return Target{}, fmt.Errorf("%w: no default target configured", ErrTargetNotFound)
	}
	t, ok := c.Targets[name]
	if !ok {
		return Target{}, fmt.Errorf("%w: %s", ErrTargetNotFound, name)
	}
	return t, nil
}

// Names returns the configured target names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyDefaults fills zero-valued target fields so hand-edited
// configs only need to spell out the path.
func (c *Config) applyDefaults() {
	for name, t := range c.Targets {
		if t.Retain <= 0 {
			t.Retain = truncate.DefaultRetain
		}
		if t.Closing == "" {
			t.Closing = truncate.DefaultClosing
		}
		if t.Suffix == "" {
			t.Suffix = truncate.DefaultSuffix
		}
		c.Targets[name] = t
	}
}
