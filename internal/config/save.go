package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrExists is returned by Write when the target file is already there.
var ErrExists = errors.New("config file already exists")

const fileHeader = "# rocketmesh configuration. Lengths are in metres.\n"

// UserConfigPath returns the per-user config file location.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Write stores the config as YAML at path, or at UserConfigPath when path
// is empty, and returns the path written. An existing file is only
// replaced when overwrite is set.
func (c *Config) Write(path string, overwrite bool) (string, error) {
	if path == "" {
		path = UserConfigPath()
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s: %w", path, ErrExists)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0644); err != nil {
		return "", err
	}
	return path, nil
}
