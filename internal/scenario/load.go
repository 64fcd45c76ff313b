package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads a single scenario from a JSON or YAML file
func LoadFromFile(path string) (*Scenario, error) {
	var s Scenario
	if err := decodeFile(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadBatchFromFile loads a batch of scenarios from a JSON or YAML file
func LoadBatchFromFile(path string) (*Batch, error) {
	var b Batch
	if err := decodeFile(path, &b); err != nil {
		return nil, err
	}
	if len(b.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios", path)
	}
	return &b, nil
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	case ".json":
		err = json.Unmarshal(data, v)
	default:
		return fmt.Errorf("%s: unsupported file type (use .json, .yaml or .yml)", path)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
