package model

import (
	"os"
	"path/filepath"
	"testing"
)

func validProject() *Project {
	p := NewProject()
	p.Title = "Alpha"
	p.People = []Person{{Name: "Alice", Responsibilities: []string{"backend"}}}
	p.Timeline = []TimelineEntry{{Label: "Sprint 1", Description: "build"}}
	p.Tasks = []Task{{Title: "Ship", Status: StatusDone, Dependencies: []string{}}}
	p.SprintConfig = NewSprintConfig()
	return p
}

func TestValidateBundledSchema(t *testing.T) {
	result := validProject().Validate(ValidationOptions{})

	if !result.UsedSchema {
		t.Fatalf("bundled schema not used, warnings: %v", result.Warnings)
	}
	if !result.Valid {
		t.Errorf("valid project rejected: %v", result.Errors)
	}
}

func TestValidateRejectsBadStatus(t *testing.T) {
	p := validProject()
	p.Tasks[0].Status = "blocked"

	result := p.Validate(ValidationOptions{})
	if result.Valid {
		t.Error("status outside the enum must be rejected")
	}
	if len(result.Errors) == 0 {
		t.Error("expected at least one error")
	}
}

func TestValidateRejectsEmptyTaskTitle(t *testing.T) {
	p := validProject()
	p.Tasks[0].Title = ""

	result := p.Validate(ValidationOptions{})
	if result.Valid {
		t.Error("empty task title must be rejected")
	}
}

func TestValidateMissingSchemaFallsBack(t *testing.T) {
	p := validProject()
	p.Tasks[0].Status = "bogus"

	result := p.Validate(ValidationOptions{SchemaPath: filepath.Join(t.TempDir(), "missing.json")})
	if result.UsedSchema {
		t.Error("missing schema file must fall back to minimal checks")
	}
	if len(result.Warnings) == 0 {
		t.Error("fallback must produce a warning")
	}
	if result.Valid {
		t.Error("minimal checks must still catch the bad status")
	}
}

func TestValidateExternalSchema(t *testing.T) {
	schemaPath := filepath.Join(t.TempDir(), "schema.json")
	schema := `{"type": "object", "required": ["title"]}`
	if err := os.WriteFile(schemaPath, []byte(schema), 0644); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	result := validProject().Validate(ValidationOptions{SchemaPath: schemaPath})
	if !result.UsedSchema {
		t.Fatalf("external schema not used, warnings: %v", result.Warnings)
	}
	if !result.Valid {
		t.Errorf("project rejected by permissive schema: %v", result.Errors)
	}
}

func TestReadWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")
	original := validProject()

	if err := original.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	loaded, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if loaded.Title != "Alpha" {
		t.Errorf("Title: got %q", loaded.Title)
	}
	if len(loaded.Tasks) != 1 || loaded.Tasks[0].Status != StatusDone {
		t.Errorf("Tasks: got %+v", loaded.Tasks)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("export must end with a newline")
	}
}
