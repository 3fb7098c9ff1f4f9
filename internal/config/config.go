// Package config resolves where habit records are stored.
//
// Resolution order, highest wins: the --dir flag, a YAML config file, the
// built-in default. The config file is optional; a missing file at the
// default location is not an error, but an explicitly named file must
// exist and parse.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDir is the record directory used when nothing else is configured.
const DefaultDir = "habits"

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = "habits.yaml"

// Config is the on-disk config file shape.
type Config struct {
	// Dir is the habit record directory.
	Dir string `yaml:"dir"`
}

// Resolve returns the record directory. dirFlag is the --dir value (empty
// when unset), configPath the --config value (empty means DefaultFile).
func Resolve(dirFlag, configPath string) (string, error) {
	if dirFlag != "" {
		return dirFlag, nil
	}

	explicit := configPath != ""
	if configPath == "" {
		configPath = DefaultFile
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultDir, nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("parse config %s: %w", configPath, err)
	}
	if cfg.Dir == "" {
		return DefaultDir, nil
	}
	return cfg.Dir, nil
}
