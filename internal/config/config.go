// Package config loads formbuilder settings from defaults, an optional TOML
// file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	theme "github.com/goliatone/go-theme"
	"github.com/pelletier/go-toml/v2"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Environment variables that override file settings.
const (
	EnvAddr         = "FORMBUILDER_ADDR"
	EnvLogLevel     = "FORMBUILDER_LOG_LEVEL"
	EnvForm         = "FORMBUILDER_FORM"
	EnvTheme        = "FORMBUILDER_THEME"
	EnvThemeVariant = "FORMBUILDER_THEME_VARIANT"
)

// Config holds the application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	Editor EditorConfig `toml:"editor"`
	Theme  ThemeConfig  `toml:"theme"`
}

// ServerConfig holds HTTP listener settings. Timeouts use time.ParseDuration
// syntax.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	ReadTimeout  string `toml:"read_timeout"`
	WriteTimeout string `toml:"write_timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// EditorConfig holds session settings.
type EditorConfig struct {
	HistoryLimit int    `toml:"history_limit"`
	Form         string `toml:"form"` // form definition used to seed new sessions
}

// ThemeConfig describes the go-theme manifest used by the HTML renderer.
type ThemeConfig struct {
	Name      string                        `toml:"name"`
	Variant   string                        `toml:"variant"`
	Tokens    map[string]string             `toml:"tokens"`
	CSSVars   map[string]string             `toml:"css_vars"`
	AssetBase string                        `toml:"asset_base"`
	Assets    map[string]string             `toml:"assets"`
	Variants  map[string]ThemeVariantConfig `toml:"variants"`
}

// ThemeVariantConfig overrides tokens and assets for one variant.
type ThemeVariantConfig struct {
	Tokens map[string]string `toml:"tokens"`
	Assets map[string]string `toml:"assets"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         "127.0.0.1:8080",
			ReadTimeout:  "15s",
			WriteTimeout: "15s",
		},
		Log: LogConfig{
			Level: "info",
		},
		Editor: EditorConfig{
			HistoryLimit: editor.DefaultHistoryLimit,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "formbuilder.toml"
	}
	return filepath.Join(home, ".config", "formbuilder", "config.toml")
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom starts with defaults, overlays the file at path if it exists,
// then applies environment overrides and validates the result.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvForm); v != "" {
		cfg.Editor.Form = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv(EnvThemeVariant); v != "" {
		cfg.Theme.Variant = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr must be set"))
	}
	if _, err := parseTimeout("server.read_timeout", c.Server.ReadTimeout); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseTimeout("server.write_timeout", c.Server.WriteTimeout); err != nil {
		errs = append(errs, err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Editor.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("editor.history_limit must not be negative, got %d", c.Editor.HistoryLimit))
	}
	if c.Theme.Variant != "" && c.Theme.Name == "" {
		errs = append(errs, errors.New("theme.variant requires theme.name"))
	}
	if c.Theme.Name != "" {
		if _, err := c.RendererConfig(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReadTimeout returns the parsed server read timeout.
func (c *Config) ReadTimeout() time.Duration {
	d, _ := parseTimeout("", c.Server.ReadTimeout)
	return d
}

// WriteTimeout returns the parsed server write timeout.
func (c *Config) WriteTimeout() time.Duration {
	d, _ := parseTimeout("", c.Server.WriteTimeout)
	return d
}

// LogLevel returns the configured level, defaulting to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ThemeManifest builds a go-theme manifest from the [theme] section, or nil
// when no theme is configured.
func (c *Config) ThemeManifest() *theme.Manifest {
	if strings.TrimSpace(c.Theme.Name) == "" {
		return nil
	}
	manifest := &theme.Manifest{
		Name:    c.Theme.Name,
		Version: "local",
		Tokens:  c.Theme.Tokens,
		Assets: theme.Assets{
			Prefix: c.Theme.AssetBase,
			Files:  c.Theme.Assets,
		},
	}
	if len(c.Theme.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(c.Theme.Variants))
		for name, v := range c.Theme.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens: v.Tokens,
				Assets: theme.Assets{Files: v.Assets},
			}
		}
	}
	return manifest
}

// RendererConfig resolves the configured theme for renderers. Explicit
// css_vars win over token-derived ones. It returns nil, nil when no theme
// is configured.
func (c *Config) RendererConfig() (*theme.RendererConfig, error) {
	manifest := c.ThemeManifest()
	if manifest == nil {
		return nil, nil
	}
	cfg, err := render.ResolveTheme(manifest, c.Theme.Variant)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	for name, value := range c.Theme.CSSVars {
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		cfg.CSSVars[name] = value
	}
	return cfg, nil
}

func parseTimeout(field, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", field, raw)
	}
	return d, nil
}
