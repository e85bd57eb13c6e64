// Package config manages ps1 configuration. Values are layered as built-in
// defaults, then the TOML config file, then PS1_* environment variables,
// then command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kilupskalvis/ps1/internal/core"
	"github.com/kilupskalvis/ps1/internal/style"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	AppDir     = "ps1"
	ConfigFile = "config.toml"
	EnvPrefix  = "PS1"
)

// StyleConfig is the color and weight of one prompt role
type StyleConfig struct {
	Color string `mapstructure:"color" toml:"color"`
	Bold  bool   `mapstructure:"bold" toml:"bold"`
}

// Styles holds the style of every prompt role
type Styles struct {
	Name      StyleConfig `mapstructure:"name" toml:"name"`
	Directory StyleConfig `mapstructure:"directory" toml:"directory"`
	Branch    StyleConfig `mapstructure:"branch" toml:"branch"`
	Clean     StyleConfig `mapstructure:"clean" toml:"clean"`
	Dirty     StyleConfig `mapstructure:"dirty" toml:"dirty"`
}

// Config represents the ps1 configuration
type Config struct {
	Strict      bool   `mapstructure:"strict" toml:"strict"`
	Discover    bool   `mapstructure:"discover" toml:"discover"`
	NoColor     bool   `mapstructure:"no_color" toml:"no_color"`
	Debug       bool   `mapstructure:"debug" toml:"debug"`
	Placeholder string `mapstructure:"placeholder" toml:"placeholder"`
	Styles      Styles `mapstructure:"styles" toml:"styles"`
}

// Default returns the built-in configuration
func Default() *Config {
	theme := style.DefaultTheme()
	spec := func(r style.Role) StyleConfig {
		return StyleConfig{Color: theme[r].Color, Bold: theme[r].Bold}
	}

	return &Config{
		Discover:    true,
		Placeholder: core.DefaultPlaceholder,
		Styles: Styles{
			Name:      spec(style.RoleName),
			Directory: spec(style.RoleDirectory),
			Branch:    spec(style.RoleBranch),
			Clean:     spec(style.RoleClean),
			Dirty:     spec(style.RoleDirty),
		},
	}
}

// NewViper creates a viper instance holding the defaults and reading
// PS1_* environment variables. Nested keys use "_" in variable names,
// e.g. PS1_STYLES_BRANCH_COLOR.
func NewViper() *viper.Viper {
	v := viper.New()

	def := Default()
	v.SetDefault("strict", def.Strict)
	v.SetDefault("discover", def.Discover)
	v.SetDefault("no_color", def.NoColor)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("placeholder", def.Placeholder)
	for role, sc := range def.Styles.byRole() {
		v.SetDefault("styles."+role.String()+".color", sc.Color)
		v.SetDefault("styles."+role.String()+".bold", sc.Bold)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// DefaultPath returns the config file location:
// $XDG_CONFIG_HOME/ps1/config.toml, else ~/.config/ps1/config.toml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDir, ConfigFile), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppDir, ConfigFile), nil
}

// Load reads the config file at path into v and decodes the layered result.
// A missing file is only an error when required is set.
func Load(v *viper.Viper, path string, required bool) (*Config, error) {
	if path != "" {
		if err := mergeFile(v, path, required); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	for role, sc := range cfg.Styles.byRole() {
		if _, err := style.ParseColor(sc.Color); err != nil {
			return nil, fmt.Errorf("invalid config: style %s: %w", role, err)
		}
	}

	return &cfg, nil
}

func mergeFile(v *viper.Viper, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := v.MergeConfigMap(values); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// Save writes the configuration to path as TOML
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Theme converts the configured styles to a style.Theme
func (c *Config) Theme() style.Theme {
	theme := make(style.Theme, len(style.Roles))
	for role, sc := range c.Styles.byRole() {
		theme[role] = style.Spec{Color: sc.Color, Bold: sc.Bold}
	}
	return theme
}

// Policy returns the fallback policy for unresolvable identity and location
func (c *Config) Policy() core.Policy {
	return core.Policy{Strict: c.Strict, Placeholder: c.Placeholder}
}

func (s Styles) byRole() map[style.Role]StyleConfig {
	return map[style.Role]StyleConfig{
		style.RoleName:      s.Name,
		style.RoleDirectory: s.Directory,
		style.RoleBranch:    s.Branch,
		style.RoleClean:     s.Clean,
		style.RoleDirty:     s.Dirty,
	}
}
