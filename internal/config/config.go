// Package config loads the optional sfsymgen.toml project manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest file sfsymgen looks for.
const FileName = "sfsymgen.toml"

// Manifest mirrors sfsymgen.toml. Command-line flags override whatever the
// manifest sets.
type Manifest struct {
	// Path is where the manifest was found. Not part of the TOML payload.
	Path string `toml:"-"`

	Generate GenerateConfig `toml:"generate"`
}

type GenerateConfig struct {
	Catalog   string   `toml:"catalog"`
	Access    string   `toml:"access"`
	Images    []string `toml:"images"`
	Aliases   bool     `toml:"aliases"`
	Localized bool     `toml:"localized"`
	RTL       bool     `toml:"rtl"`
	Output    string   `toml:"output"`
}

// Find walks up from startDir looking for FileName. The boolean result is
// false when no manifest exists anywhere up the tree.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("config: resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("config: stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes the manifest at path. Relative paths inside the manifest are
// resolved against the manifest's directory by the caller.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	m.Path = path
	return &m, nil
}
