package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/hengadev/printx"
)

// readDocument reads a JSON or YAML document from path, or from stdin when
// path is empty, and decodes it into a generic value graph for rendering.
func readDocument(path, format string) (any, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	switch resolveFormat(path, format) {
	case "json":
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return doc, nil
	case "yaml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%w: input format %q (want json or yaml)", printx.ErrUnsupportedType, format)
	}
}

// resolveFormat maps "auto" to a concrete format by file extension,
// defaulting to JSON for stdin and unknown extensions.
func resolveFormat(path, format string) string {
	if format != "auto" {
		return format
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// applyEnvironment overlays PRINTX_* environment variables on cfg.
func applyEnvironment(cfg printx.Config) (printx.Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return printx.Config{}, fmt.Errorf("%w: %w", printx.ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return printx.Config{}, err
	}
	return cfg, nil
}
