package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vcrobe/nojs-classroom/internal/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "NOJS_"

// Surface names accepted by the render command.
const (
	SurfaceTerminal = "terminal"
	SurfaceMarkdown = "markdown"
	SurfaceHTML     = "html"
)

var (
	ErrUnknownSurface = errors.New("unknown surface")
	ErrBadWidth       = errors.New("width must be positive")
	ErrEmptyAddr      = errors.New("listen address is empty")
)

// Config holds host settings. Values come from defaults, then the YAML
// file, then NOJS_* environment variables; command flags are applied last
// by the caller.
type Config struct {
	LogLevel      string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFile       string `yaml:"log_file" env:"LOG_FILE"`
	Surface       string `yaml:"surface" env:"SURFACE"`
	Addr          string `yaml:"addr" env:"ADDR"`
	Width         int    `yaml:"width" env:"WIDTH"`
	MarkdownStyle string `yaml:"markdown_style" env:"MARKDOWN_STYLE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:      "info",
		Surface:       SurfaceTerminal,
		Addr:          ":8080",
		Width:         60,
		MarkdownStyle: "auto",
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Surface {
	case SurfaceTerminal, SurfaceMarkdown, SurfaceHTML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSurface, c.Surface)
	}
	if c.Width <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWidth, c.Width)
	}
	if c.Addr == "" {
		return ErrEmptyAddr
	}
	return nil
}
