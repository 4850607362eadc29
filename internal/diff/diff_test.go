package diff

import (
	"strings"
	"testing"

	"github.com/planfile/planfile/internal/markdown"
)

const oldDoc = `# Project: Alpha

## People
- Alice: backend

## Timeline
- Sprint 1: build

## Tasks
- Ship v1 (Alice) {Sprint 1}
- Old chore
`

const newDoc = `# Project: Alpha

## People
- Alice: backend, infra
- Bob

## Timeline
- Sprint 1: build

## Tasks
- Ship v1 (Alice) {Sprint 1} [done]
`

func TestCompare(t *testing.T) {
	report := Compare(markdown.Parse(oldDoc), markdown.Parse(newDoc))

	wantChanges := map[string]string{
		"person/Alice":   "changed",
		"person/Bob":     "added",
		"task/Ship v1":   "changed",
		"task/Old chore": "removed",
	}

	got := make(map[string]string)
	for _, c := range report.Changes {
		got[c.Kind+"/"+c.Key] = c.Action
	}

	for key, action := range wantChanges {
		if got[key] != action {
			t.Errorf("%s: got %q, want %q (all: %v)", key, got[key], action, got)
		}
	}
	if len(got) != len(wantChanges) {
		t.Errorf("unexpected extra changes: %v", got)
	}
}

func TestCompareIdenticalModels(t *testing.T) {
	report := Compare(markdown.Parse(oldDoc), markdown.Parse(oldDoc))
	if !report.Empty() {
		t.Errorf("identical models must produce an empty report, got %v", report.Changes)
	}
	if report.String() != "no changes\n" {
		t.Errorf("String: got %q", report.String())
	}
}

func TestCompareStatusDetail(t *testing.T) {
	report := Compare(markdown.Parse("## Tasks\n- X"), markdown.Parse("## Tasks\n- X [done]"))
	if len(report.Changes) != 1 {
		t.Fatalf("Changes: got %v", report.Changes)
	}
	if !strings.Contains(report.Changes[0].Detail, "status todo -> done") {
		t.Errorf("Detail: got %q", report.Changes[0].Detail)
	}
}

func TestCompareSprintConfig(t *testing.T) {
	report := Compare(
		markdown.Parse(""),
		markdown.Parse("## Sprint Configuration\n- Duration: 2 weeks"),
	)
	if len(report.Changes) != 1 || report.Changes[0].Action != "added" {
		t.Errorf("Changes: got %v", report.Changes)
	}
}

func TestUnified(t *testing.T) {
	out := Unified(markdown.Parse(oldDoc), markdown.Parse(newDoc))

	if !strings.Contains(out, "+ - Bob") {
		t.Errorf("missing added line in diff:\n%s", out)
	}
	if !strings.Contains(out, "- - Old chore") {
		t.Errorf("missing removed line in diff:\n%s", out)
	}
	if !strings.Contains(out, "  # Project: Alpha") {
		t.Errorf("missing context line in diff:\n%s", out)
	}
}

func TestUnifiedIdentical(t *testing.T) {
	p := markdown.Parse(oldDoc)
	out := Unified(p, p)
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "+ ") || strings.HasPrefix(line, "- ") {
			t.Errorf("identical models must not produce diff lines, got %q", line)
		}
	}
}
