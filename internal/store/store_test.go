package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/planfile/planfile/internal/model"
)

const messyDoc = `# Project: Alpha


## Tasks
* Ship v1   (Alice)  [completed]
- Fix bug
`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeDoc(t, messyDoc)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Title != "Alpha" {
		t.Errorf("Title: got %q", p.Title)
	}
	if len(p.Tasks) != 2 {
		t.Fatalf("Tasks: got %d, want 2", len(p.Tasks))
	}
	if p.Tasks[0].Status != model.StatusDone {
		t.Errorf("Status: got %q, want done", p.Tasks[0].Status)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Error("Load of missing file must fail")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.md")
	p := model.NewProject()
	p.Title = "Beta"
	p.AddTask(model.Task{Title: "One", Status: model.StatusInProgress})

	if err := Save(path, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Title != "Beta" || len(loaded.Tasks) != 1 {
		t.Errorf("reload mismatch: %+v", loaded)
	}
	if loaded.Tasks[0].Status != model.StatusInProgress {
		t.Errorf("Status: got %q", loaded.Tasks[0].Status)
	}
}

func TestSaveIfChanged(t *testing.T) {
	path := writeDoc(t, messyDoc)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// First save canonicalizes the messy fixture.
	changed, err := SaveIfChanged(path, p)
	if err != nil {
		t.Fatalf("SaveIfChanged failed: %v", err)
	}
	if !changed {
		t.Fatal("canonicalizing a messy document must report a change")
	}

	// Second save is a no-op.
	changed, err = SaveIfChanged(path, p)
	if err != nil {
		t.Fatalf("SaveIfChanged failed: %v", err)
	}
	if changed {
		t.Error("saving an unchanged model must not rewrite the file")
	}
}

func TestFormat(t *testing.T) {
	path := writeDoc(t, messyDoc)

	changed, err := Format(path)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !changed {
		t.Fatal("messy document must be rewritten")
	}

	// Formatting is idempotent.
	changed, err = Format(path)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if changed {
		t.Error("canonical document must not be rewritten")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read formatted file: %v", err)
	}
	want := "- Ship v1 (Alice) [done]\n"
	if !containsLine(string(data), "- Ship v1 (Alice) [done]") {
		t.Errorf("missing canonical task line %q in:\n%s", want, data)
	}
}

func containsLine(text, line string) bool {
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			if text[start:i] == line {
				return true
			}
			start = i + 1
		}
	}
	return false
}
