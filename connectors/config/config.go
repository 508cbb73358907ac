package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	dconfig "loadshedding-stats/domain/config"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is unset.
const DefaultPath = "./config.yml"

// Path resolves the config file location from CONFIG_PATH.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load parses the YAML configuration file at path.
// A missing file is not an error: defaults are returned instead.
func Load(path string) (dconfig.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return dconfig.Default(), nil
		}
		return dconfig.Config{}, err
	}
	var c dconfig.Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return dconfig.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	c = c.WithDefaults()
	if err := Validate(c); err != nil {
		return dconfig.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return c, nil
}

// Validate rejects values the tool cannot act on.
func Validate(c dconfig.Config) error {
	switch c.Display.Mode {
	case dconfig.DisplayWindow, dconfig.DisplayFile, dconfig.DisplayNone:
	default:
		return fmt.Errorf("unknown display mode %q (want window, file or none)", c.Display.Mode)
	}
	return nil
}
