// Package config loads pl0c's optional compiler-wide defaults from a
// .pl0rc.yaml file. Absence of a config file is not an error; callers
// get Default() instead.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds compiler-wide defaults that flags can still override.
type Config struct {
	// OutputDir, when set, replaces the directory of the default
	// <input>.cl0 output path; empty means "next to the input file".
	OutputDir string `yaml:"outputDir"`
	// Disassemble implies --disassemble on every compile when true.
	Disassemble bool `yaml:"disassemble"`
	// MaxArrayLength caps a declared array's element count; 0 means
	// "no guard beyond what int can hold".
	MaxArrayLength int `yaml:"maxArrayLength"`
}

// Default returns the built-in configuration used when no config file
// is present.
func Default() Config {
	return Config{MaxArrayLength: 1 << 16}
}

// Load reads and parses path, falling back to Default() for fields
// the file leaves unset. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
