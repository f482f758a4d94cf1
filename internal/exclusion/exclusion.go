// Package exclusion loads the repository's exclusion list and removes
// excluded directories from a result.
package exclusion

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned by Load under MissingAsError when the file
// does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// MissingPolicy decides what a missing config file means.
type MissingPolicy int

const (
	// MissingAsEmpty treats a missing (or unset) config file as an empty
	// exclusion list.
	MissingAsEmpty MissingPolicy = iota
	// MissingAsError makes a missing config file fatal.
	MissingAsError
)

// Config is the YAML configuration file.
//
//	excluded-directories:
//	  - path/to/dir
type Config struct {
	ExcludedDirectories []string `yaml:"excluded-directories" json:"excluded_directories"`
}

// Load reads the config at path.
func Load(path string, policy MissingPolicy) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		if policy == MissingAsError {
			return nil, fmt.Errorf("%w: no config file configured", ErrConfigNotFound)
		}
		return &Config{ExcludedDirectories: []string{}}, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if policy == MissingAsError {
			return nil, fmt.Errorf("%w: %s does not exist", ErrConfigNotFound, path)
		}
		return &Config{ExcludedDirectories: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.ExcludedDirectories == nil {
		cfg.ExcludedDirectories = []string{}
	}
	return &cfg, nil
}

// Filter drops every directory that exactly matches an exclusion, keeping the
// order of the rest. The result is never nil.
func Filter(directories, exclusions []string) []string {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, e := range exclusions {
		excluded[e] = struct{}{}
	}

	out := make([]string, 0, len(directories))
	for _, d := range directories {
		if _, ok := excluded[d]; ok {
			continue
		}
		out = append(out, d)
	}
	return out
}
