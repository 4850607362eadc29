// Package diff compares two project models.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/planfile/planfile/internal/markdown"
	"github.com/planfile/planfile/internal/model"
)

// Change describes one entity-level difference.
type Change struct {
	Kind   string // "person", "timeline", "task", "sprint-config"
	Key    string // name, label, or title
	Action string // "added", "removed", "changed"
	Detail string // human-readable summary, empty for added/removed
}

// Report is the structural diff between two models.
type Report struct {
	Changes []Change
}

// Empty returns true when the models were structurally identical.
func (r *Report) Empty() bool {
	return len(r.Changes) == 0
}

func (r *Report) String() string {
	if r.Empty() {
		return "no changes\n"
	}
	var b strings.Builder
	for _, c := range r.Changes {
		if c.Detail != "" {
			fmt.Fprintf(&b, "%s %s %q: %s\n", c.Action, c.Kind, c.Key, c.Detail)
		} else {
			fmt.Fprintf(&b, "%s %s %q\n", c.Action, c.Kind, c.Key)
		}
	}
	return b.String()
}

// Compare diffs two models entity by entity. People are keyed by name,
// timeline entries by label, tasks by title; within a section the first
// occurrence of a key wins, matching lookup behavior elsewhere.
func Compare(old, new *model.Project) *Report {
	r := &Report{}

	if old.Title != new.Title {
		r.Changes = append(r.Changes, Change{
			Kind: "project", Key: new.Title, Action: "changed",
			Detail: fmt.Sprintf("title %q -> %q", old.Title, new.Title),
		})
	}

	comparePeople(r, old.People, new.People)
	compareTimeline(r, old.Timeline, new.Timeline)
	compareTasks(r, old.Tasks, new.Tasks)
	compareSprintConfig(r, old, new)

	return r
}

func comparePeople(r *Report, old, new []model.Person) {
	oldByName := make(map[string]model.Person)
	for _, p := range old {
		if _, ok := oldByName[p.Name]; !ok {
			oldByName[p.Name] = p
		}
	}
	seen := make(map[string]bool)
	for _, p := range new {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		prev, ok := oldByName[p.Name]
		if !ok {
			r.Changes = append(r.Changes, Change{Kind: "person", Key: p.Name, Action: "added"})
			continue
		}
		if strings.Join(prev.Responsibilities, ", ") != strings.Join(p.Responsibilities, ", ") {
			r.Changes = append(r.Changes, Change{
				Kind: "person", Key: p.Name, Action: "changed",
				Detail: "responsibilities updated",
			})
		}
	}
	for _, p := range old {
		if !seen[p.Name] {
			seen[p.Name] = true
			r.Changes = append(r.Changes, Change{Kind: "person", Key: p.Name, Action: "removed"})
		}
	}
}

func compareTimeline(r *Report, old, new []model.TimelineEntry) {
	oldByLabel := make(map[string]model.TimelineEntry)
	for _, e := range old {
		if _, ok := oldByLabel[e.Label]; !ok {
			oldByLabel[e.Label] = e
		}
	}
	seen := make(map[string]bool)
	for _, e := range new {
		if seen[e.Label] {
			continue
		}
		seen[e.Label] = true
		prev, ok := oldByLabel[e.Label]
		if !ok {
			r.Changes = append(r.Changes, Change{Kind: "timeline", Key: e.Label, Action: "added"})
			continue
		}
		if detail := timelineDetail(prev, e); detail != "" {
			r.Changes = append(r.Changes, Change{
				Kind: "timeline", Key: e.Label, Action: "changed", Detail: detail,
			})
		}
	}
	for _, e := range old {
		if !seen[e.Label] {
			seen[e.Label] = true
			r.Changes = append(r.Changes, Change{Kind: "timeline", Key: e.Label, Action: "removed"})
		}
	}
}

func timelineDetail(old, new model.TimelineEntry) string {
	var parts []string
	if old.Description != new.Description {
		parts = append(parts, "description")
	}
	if !eqIntPtr(old.Percentage, new.Percentage) {
		parts = append(parts, "percentage")
	}
	if !eqStrPtr(old.StartDate, new.StartDate) || !eqStrPtr(old.EndDate, new.EndDate) {
		parts = append(parts, "planned dates")
	}
	if !eqStrPtr(old.ActualStartDate, new.ActualStartDate) || !eqStrPtr(old.ActualEndDate, new.ActualEndDate) {
		parts = append(parts, "actual dates")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ", ") + " updated"
}

func compareTasks(r *Report, old, new []model.Task) {
	oldByTitle := make(map[string]model.Task)
	for _, t := range old {
		if _, ok := oldByTitle[t.Title]; !ok {
			oldByTitle[t.Title] = t
		}
	}
	seen := make(map[string]bool)
	for _, t := range new {
		if seen[t.Title] {
			continue
		}
		seen[t.Title] = true
		prev, ok := oldByTitle[t.Title]
		if !ok {
			r.Changes = append(r.Changes, Change{Kind: "task", Key: t.Title, Action: "added"})
			continue
		}
		if detail := taskDetail(prev, t); detail != "" {
			r.Changes = append(r.Changes, Change{
				Kind: "task", Key: t.Title, Action: "changed", Detail: detail,
			})
		}
	}
	for _, t := range old {
		if !seen[t.Title] {
			seen[t.Title] = true
			r.Changes = append(r.Changes, Change{Kind: "task", Key: t.Title, Action: "removed"})
		}
	}
}

func taskDetail(old, new model.Task) string {
	var parts []string
	if old.Status != new.Status {
		parts = append(parts, fmt.Sprintf("status %s -> %s", old.Status, new.Status))
	}
	if !eqStrPtr(old.Assignee, new.Assignee) {
		parts = append(parts, "assignee")
	}
	if !eqStrPtr(old.Sprint, new.Sprint) {
		parts = append(parts, "sprint")
	}
	if !eqStrPtr(old.Remarks, new.Remarks) {
		parts = append(parts, "remarks")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ", ")
}

func compareSprintConfig(r *Report, old, new *model.Project) {
	oldCfg := old.SprintConfig
	newCfg := new.SprintConfig
	switch {
	case oldCfg == nil && newCfg == nil:
	case oldCfg == nil:
		r.Changes = append(r.Changes, Change{Kind: "sprint-config", Key: "sprint configuration", Action: "added"})
	case newCfg == nil:
		r.Changes = append(r.Changes, Change{Kind: "sprint-config", Key: "sprint configuration", Action: "removed"})
	default:
		var parts []string
		if oldCfg.Duration != newCfg.Duration {
			parts = append(parts, "duration")
		}
		if !eqStrPtr(oldCfg.StartDate, newCfg.StartDate) {
			parts = append(parts, "start date")
		}
		if !eqStrPtr(oldCfg.ActiveSprint, newCfg.ActiveSprint) {
			parts = append(parts, "active sprint")
		}
		if len(parts) > 0 {
			r.Changes = append(r.Changes, Change{
				Kind: "sprint-config", Key: "sprint configuration", Action: "changed",
				Detail: strings.Join(parts, ", ") + " updated",
			})
		}
	}

	if !eqStrPtr(old.CurrentSprint, new.CurrentSprint) {
		r.Changes = append(r.Changes, Change{
			Kind: "sprint-config", Key: "current sprint", Action: "changed",
			Detail: fmt.Sprintf("%s -> %s", strOrNone(old.CurrentSprint), strOrNone(new.CurrentSprint)),
		})
	}
}

// Unified returns a line-level diff of the two canonical serializations.
func Unified(old, new *model.Project) string {
	dmp := diffmatchpatch.New()
	oldText := markdown.Serialize(old)
	newText := markdown.Serialize(new)

	oldLines, newLines, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(oldLines, newLines, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var b strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			b.WriteString(prefix + line + "\n")
		}
	}
	return b.String()
}

func eqStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strOrNone(s *string) string {
	if s == nil {
		return "(none)"
	}
	return *s
}
