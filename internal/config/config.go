// Package config loads formatter settings from a .schemat.toml manifest.
// The manifest is optional: every field has a default, and a missing file
// simply yields the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"schemat/internal/doc"
)

const FileName = ".schemat.toml"

// DefaultExtensions are the file suffixes picked up when walking
// directories without an explicit extension list.
var DefaultExtensions = []string{".scm", ".ss", ".sld", ".sps", ".rkt"}

type Config struct {
	Format FormatConfig `toml:"format"`
	Files  FilesConfig  `toml:"files"`
}

type FormatConfig struct {
	MaxWidth int `toml:"max-width"`
}

type FilesConfig struct {
	Extensions []string `toml:"extensions"`
	Ignore     []string `toml:"ignore"`
}

func Default() Config {
	return Config{
		Format: FormatConfig{MaxWidth: doc.DefaultWidth},
		Files:  FilesConfig{Extensions: append([]string(nil), DefaultExtensions...)},
	}
}

// Find walks from startDir toward the filesystem root looking for a
// manifest. It reports the manifest path and whether one was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses a manifest on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("format", "max-width") && cfg.Format.MaxWidth <= 0 {
		return Config{}, fmt.Errorf("%s: [format].max-width must be positive", path)
	}
	if meta.IsDefined("files", "extensions") {
		for i, ext := range cfg.Files.Extensions {
			ext = strings.TrimSpace(ext)
			if ext == "" {
				return Config{}, fmt.Errorf("%s: [files].extensions holds an empty entry", path)
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			cfg.Files.Extensions[i] = ext
		}
	}
	return cfg, nil
}

// Discover finds and loads the nearest manifest above startDir. Without a
// manifest it returns the defaults and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
