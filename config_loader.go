package printx

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadConfigFromEnvironment loads configuration from PRINTX_* environment
// variables, following the 12-factor methodology. Unset variables keep the
// package defaults:
//
//   - PRINTX_MAX_DEPTH: maximum nesting level (default: 10)
//   - PRINTX_MAX_SEQUENCE_LENGTH: maximum collection size (default: 100)
//   - PRINTX_INDENT: indentation unit (default: tab)
//   - PRINTX_NIL_MARKER: nil representation (default: "<nil>")
//   - PRINTX_MAX_TEXT_LENGTH: global truncation limit (default: off)
//
// Returns an error wrapping ErrInvalidConfiguration if a variable cannot be
// parsed or fails validation.
func LoadConfigFromEnvironment() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFromFile loads configuration from a YAML file. Keys absent from
// the file keep the package defaults.
func LoadConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to parse config file %s: %w", ErrInvalidConfiguration, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfigToFile writes the configuration as YAML, for `printx init`.
func SaveConfigToFile(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
