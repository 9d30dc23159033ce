package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFilename  = "config.yaml"
	defaultBookFile = "contacts.abook"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string // config directory, e.g. $HOME/.abook
	File string // contacts file name inside Home
}

// BookPath is the full path of the contacts file.
func (c Config) BookPath() string { return filepath.Join(c.Home, c.File) }

// fileConfig mirrors the optional config.yaml inside Home.
type fileConfig struct {
	File string `yaml:"file"`
}

// Load resolves the effective config. Explicit flag values win over
// config.yaml, which wins over defaults. A missing config file is fine.
func Load(home, file string) (Config, error) {
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		home = filepath.Join(dir, ".abook")
	}

	cfg := Config{Home: home, File: file}
	if cfg.File == "" {
		fc, err := readConfigFile(filepath.Join(home, configFilename))
		if err != nil {
			return Config{}, err
		}
		cfg.File = fc.File
	}
	if cfg.File == "" {
		cfg.File = defaultBookFile
	}
	return cfg, nil
}

func readConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parsing %s: %w", path, err)
	}
	return fc, nil
}
