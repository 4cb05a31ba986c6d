// Package config loads miv settings from YAML files and the environment.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/ionut-t/miv/core"
	"github.com/ionut-t/miv/internal/log"
)

// BindingConfig binds a key specification to a command name.
type BindingConfig struct {
	Keys    string `mapstructure:"keys" yaml:"keys"`
	Command string `mapstructure:"command" yaml:"command"`
}

// KeymapConfig holds extra bindings per mode. They are added on top of
// the built-in keymap; a binding for an existing path replaces it.
type KeymapConfig struct {
	Normal []BindingConfig `mapstructure:"normal" yaml:"normal"`
	Insert []BindingConfig `mapstructure:"insert" yaml:"insert"`
	Visual []BindingConfig `mapstructure:"visual" yaml:"visual"`
}

// Config holds all configuration options for miv.
type Config struct {
	TabSize         int          `mapstructure:"tab_size" yaml:"tab_size"`
	InitialCapacity int          `mapstructure:"initial_capacity" yaml:"initial_capacity"`
	Language        string       `mapstructure:"language" yaml:"language"` // chroma lexer name, empty for plain text
	Theme           string       `mapstructure:"theme" yaml:"theme"`       // chroma style name
	ShowLineNumbers bool         `mapstructure:"show_line_numbers" yaml:"show_line_numbers"`
	Keymap          KeymapConfig `mapstructure:"keymap" yaml:"keymap"`
}

const (
	MinTabSize = 1
	MaxTabSize = 16

	localConfigFile = ".miv.yaml"
	envPrefix       = "MIV"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TabSize:         4,
		InitialCapacity: core.DefaultCapacity,
		Theme:           "catppuccin-mocha",
		ShowLineNumbers: true,
	}
}

// Load reads the configuration. An explicit path must exist; otherwise
// ./.miv.yaml and then ~/.config/miv/config.yaml are tried and a missing
// file leaves the defaults in place. MIV_* environment variables override
// file values.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("tab_size", defaults.TabSize)
	v.SetDefault("initial_capacity", defaults.InitialCapacity)
	v.SetDefault("language", defaults.Language)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("show_line_numbers", defaults.ShowLineNumbers)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case path != "":
		v.SetConfigFile(path)
	case fileExists(localConfigFile):
		v.SetConfigFile(localConfigFile)
	default:
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "miv"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "no config file, using defaults")
	} else {
		log.Info(log.CatConfig, "config loaded", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and that every keymap entry parses and names a
// known command.
func Validate(cfg Config) error {
	if cfg.TabSize < MinTabSize || cfg.TabSize > MaxTabSize {
		return fmt.Errorf("%w: tab_size %d not in %d..%d", ErrInvalidConfig, cfg.TabSize, MinTabSize, MaxTabSize)
	}
	if cfg.InitialCapacity < 0 {
		return fmt.Errorf("%w: initial_capacity must not be negative", ErrInvalidConfig)
	}

	for mode, bindings := range cfg.Keymap.byMode() {
		for i, b := range bindings {
			if _, err := core.ParseSequence(b.Keys); err != nil {
				return fmt.Errorf("keymap.%s[%d]: %w", mode, i, err)
			}
			if _, err := core.LookupCommand(b.Command); err != nil {
				return fmt.Errorf("keymap.%s[%d]: %w", mode, i, err)
			}
		}
	}
	return nil
}

func (k KeymapConfig) byMode() map[core.Mode][]BindingConfig {
	return map[core.Mode][]BindingConfig{
		core.NormalMode: k.Normal,
		core.InsertMode: k.Insert,
		core.VisualMode: k.Visual,
	}
}

// EditorOptions converts the configuration into editor options.
func (c Config) EditorOptions() []core.Option {
	opts := []core.Option{
		core.WithTabSize(c.TabSize),
		core.WithInitialCapacity(c.InitialCapacity),
	}

	byMode := c.Keymap.byMode()
	for _, mode := range slices.Sorted(maps.Keys(byMode)) {
		if len(byMode[mode]) == 0 {
			continue
		}
		bindings := make([]core.Binding, 0, len(byMode[mode]))
		for _, b := range byMode[mode] {
			bindings = append(bindings, core.Binding{Keys: b.Keys, Command: b.Command})
		}
		opts = append(opts, core.WithBindings(mode, bindings...))
	}
	return opts
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
