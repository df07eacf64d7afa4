// Package config loads the typeset.yaml tool configuration.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config names the external tools the CLI delegates to, plus the knobs
// passed to them. Everything has a working default; typeset.yaml only
// needs to exist when overriding one.
type Config struct {
	// Editor is the terminal editor driven by `typeset replace`.
	Editor string `yaml:"editor"`
	// Browser is the headless browser used to rasterize MathML.
	Browser string `yaml:"browser"`
	// Magick is the ImageMagick binary. Empty means auto-detect
	// (`magick`, falling back to `convert`).
	Magick string `yaml:"magick"`
	// WindowSize is the browser viewport in WIDTHxHEIGHT form.
	WindowSize string `yaml:"window_size"`
	// TimeoutSeconds bounds each non-interactive subprocess.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

var windowSizeRe = regexp.MustCompile(`^\d+x\d+$`)

// Default returns the configuration used when no typeset.yaml exists.
func Default() *Config {
	return &Config{
		Editor:         "vim",
		Browser:        "firefox",
		WindowSize:     "500x300",
		TimeoutSeconds: 60,
	}
}

// Load reads a typeset.yaml from path. A missing file is not an error:
// defaults are returned. A file that exists but does not parse is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv lets the environment override the file, matching how the
// tools themselves are usually selected on a workstation.
func (c *Config) applyEnv() {
	if v := os.Getenv("TYPESET_EDITOR"); v != "" {
		c.Editor = v
	}
	if v := os.Getenv("TYPESET_BROWSER"); v != "" {
		c.Browser = v
	}
}

func (c *Config) validate() error {
	if c.Editor == "" {
		return fmt.Errorf("editor must not be empty")
	}
	if c.Browser == "" {
		return fmt.Errorf("browser must not be empty")
	}
	if !windowSizeRe.MatchString(c.WindowSize) {
		return fmt.Errorf("window_size %q is not in WIDTHxHEIGHT form", c.WindowSize)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive")
	}
	return nil
}
