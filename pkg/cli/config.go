package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/numtower/internal/config"
)

// ConfigFileName is the driver config looked up in the working directory.
const ConfigFileName = "numtower.yaml"

// Config drives the demo shell. Packages lists which install functions run;
// trimming it is the quickest way to watch a dispatch fail for lack of a
// registered method.
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Color    string   `yaml:"color"` // auto, always, never
	Packages []string `yaml:"packages"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Color:    "auto",
		Packages: []string{
			config.SchemeNumberPackage,
			config.RationalPackage,
			config.RectangularPackage,
			config.PolarPackage,
			config.ComplexPackage,
		},
	}
}

// LoadConfig reads path if it exists and overlays it onto the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
