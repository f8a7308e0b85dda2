package bindings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads bindings from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Bindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bindings{}, fmt.Errorf("read bindings file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Bindings{}, fmt.Errorf("unsupported bindings file extension: %s", ext)
	}
}

// FromYAML parses YAML data into Bindings.
func FromYAML(data []byte) (Bindings, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Bindings{}, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m), nil
}

// FromJSON parses JSON data into Bindings.
func FromJSON(data []byte) (Bindings, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Bindings{}, fmt.Errorf("parse json: %w", err)
	}
	return New(m), nil
}
