package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadJSON reads a project model from a JSON export at path.
func ReadJSON(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project export: %w", err)
	}

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse project export: %w", err)
	}

	return &p, nil
}

// WriteJSON writes the project model to path with 2-space indentation.
func (p *Project) WriteJSON(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write project export: %w", err)
	}

	return nil
}
