package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries defaults for the split command. It is loaded from an
// optional dsfsplit.yml next to the cue sheet (or wherever --config
// points); flag values override it.
type Config struct {
	Output    string `yaml:"output"`    // output directory
	Overwrite bool   `yaml:"overwrite"` // replace existing track files
}

// loadConfig reads path. A missing file is not an error, it just
// yields the zero config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
