package data

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Parse decodes a YAML or JSON document into a data Map.
// YAML is a superset of JSON, so .json data files need no special handling.
// The top level of the document must be a mapping; an empty document yields
// an empty Map.
func Parse(b []byte) (Map, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parsing data document: %v", err)
	}
	if raw == nil {
		return Map{}, nil
	}
	return New(raw).(Map), nil
}

// ParseFile reads and decodes the data file at the given path.
func ParseFile(path string) (Map, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return m, nil
}
