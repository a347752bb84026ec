package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vocatest/pkg/logging"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration path used when none is given.
const DefaultConfigFile = "test_config.json"

// Load reads the run configuration from path. A missing or unparsable file
// is not an error: Load logs a warning and returns Defaults, so callers
// always receive a usable configuration. A file that parses is trusted
// as-is with no merging against the defaults.
func Load(path string) *RunConfiguration {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Warn("Config", "Config file %s not found. Using defaults.", path)
		} else {
			logging.Warn("Config", "Could not read config file %s: %v. Using defaults.", path, err)
		}
		return Defaults()
	}

	cfg := &RunConfiguration{}
	if err := unmarshal(path, data, cfg); err != nil {
		logging.Warn("Config", "Invalid config file %s: %v. Using defaults.", path, err)
		return Defaults()
	}

	logging.Info("Config", "Loaded configuration from %s", path)
	return cfg
}

// unmarshal picks the decoder by file extension: YAML for .yaml/.yml,
// JSON otherwise.
func unmarshal(path string, data []byte, cfg *RunConfiguration) error {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing JSON: %w", err)
		}
	}
	return nil
}
