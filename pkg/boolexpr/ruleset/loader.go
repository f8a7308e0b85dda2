package ruleset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk rule set shape:
//
//	rules:
//	  - name: adult
//	    expr: age >= 18
//	  - name: swedish_adult
//	    expr: age >= 18 and country == "SE"
type document struct {
	Rules []ruleDoc `yaml:"rules" json:"rules"`
}

type ruleDoc struct {
	Name string `yaml:"name" json:"name"`
	Expr string `yaml:"expr" json:"expr"`
}

// FromFile loads a rule set from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported rules file extension: %s", ext)
	}
}

// FromYAML parses and compiles a YAML rule document.
func FromYAML(data []byte) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return fromDocument(doc)
}

// FromJSON parses and compiles a JSON rule document.
func FromJSON(data []byte) (*Set, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return fromDocument(doc)
}

func fromDocument(doc document) (*Set, error) {
	set := New()
	for _, r := range doc.Rules {
		if _, err := set.Add(r.Name, r.Expr); err != nil {
			return nil, err
		}
	}
	return set, nil
}
