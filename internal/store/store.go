// Package store reads and writes project documents on the filesystem.
//
// Documents are stored as canonical text; the model is re-derived on
// every load and re-serialized on every save. Save always writes the
// canonical form, so loading and saving a hand-edited file normalizes it.
package store

import (
	"fmt"
	"os"

	"github.com/planfile/planfile/internal/markdown"
	"github.com/planfile/planfile/internal/model"
)

// Load reads and parses a project document from path.
func Load(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	return markdown.Parse(string(data)), nil
}

// Save writes the canonical serialization of the project to path.
func Save(path string, p *model.Project) error {
	if err := os.WriteFile(path, []byte(markdown.Serialize(p)), 0644); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	return nil
}

// SaveIfChanged writes the project only when its canonical serialization
// differs from the current file content. Serialization is deterministic,
// so byte-equality is a reliable change detector. Returns true if the
// file was written. A missing file counts as changed.
func SaveIfChanged(path string, p *model.Project) (bool, error) {
	text := markdown.Serialize(p)

	current, err := os.ReadFile(path)
	if err == nil && string(current) == text {
		return false, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read project file: %w", err)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return false, fmt.Errorf("write project file: %w", err)
	}
	return true, nil
}

// Format canonicalizes the document at path in place. Returns true if
// the file content changed.
func Format(path string) (bool, error) {
	p, err := Load(path)
	if err != nil {
		return false, err
	}
	return SaveIfChanged(path, p)
}
