// Package config loads the bishin.toml configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Filename is the default name of the config file, looked up in the current
// working directory unless an explicit path is given.
const Filename = "bishin.toml"

// Config is the on-disk configuration for bishin. Paths in the file are
// relative; Load resolves them against the config file's directory.
type Config struct {
	// TestDir is the directory to look for test files in.
	TestDir string `toml:"test-dir"`
	// WorkDir is the directory bishin stores results, generated test
	// files, and intermediate data in.
	WorkDir string `toml:"work-dir"`
}

// MissingConfigError reports that the config file could not be read at the
// resolved location.
type MissingConfigError struct {
	Path string
	Err  error
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("couldn't load config file at %q: %v", e.Path, e.Err)
}

func (e *MissingConfigError) Unwrap() error { return e.Err }

// Load reads the config file from pathOverride, or from Filename in the
// current working directory when pathOverride is empty. Missing keys keep
// their defaults: "tests" for test-dir and ".bishin" for work-dir.
func Load(pathOverride string) (*Config, error) {
	path, err := resolvePath(pathOverride)
	if err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, &MissingConfigError{Path: path, Err: err}
	}

	cfg := Config{
		TestDir: "tests",
		WorkDir: ".bishin",
	}
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	// Anchor relative paths to the config file so the tool behaves the same
	// regardless of the directory it is invoked from.
	base := filepath.Dir(path)
	if !filepath.IsAbs(cfg.TestDir) {
		cfg.TestDir = filepath.Join(base, cfg.TestDir)
	}
	if !filepath.IsAbs(cfg.WorkDir) {
		cfg.WorkDir = filepath.Join(base, cfg.WorkDir)
	}
	return &cfg, nil
}

// GeneratedDir returns the directory generated test scripts are written to.
func (c *Config) GeneratedDir() string {
	return filepath.Join(c.WorkDir, "generated")
}

func resolvePath(pathOverride string) (string, error) {
	if pathOverride != "" {
		return filepath.Abs(pathOverride)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, Filename), nil
}
