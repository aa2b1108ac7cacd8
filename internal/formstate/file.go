package formstate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

// Load reads a snapshot file. YAML is used for .yml and .yaml paths, JSON
// for everything else.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data, isYAML(path))
}

// Parse decodes snapshot bytes. The top level must be a mapping.
func Parse(data []byte, asYAML bool) (Snapshot, error) {
	snap := Snapshot{}
	var err error
	if asYAML {
		err = yaml.Unmarshal(data, &snap)
	} else {
		err = json.Unmarshal(data, &snap)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return snap, nil
}

// Marshal encodes snap as YAML or indented JSON.
func Marshal(snap Snapshot, asYAML bool) ([]byte, error) {
	if asYAML {
		data, err := yaml.Marshal(map[string]any(snap))
		if err != nil {
			return nil, fmt.Errorf("encoding snapshot: %w", err)
		}
		return data, nil
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes snap to path in the format implied by its extension.
func Save(path string, snap Snapshot) error {
	data, err := Marshal(snap, isYAML(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
