package markdown

import (
	"fmt"
	"strings"

	"github.com/planfile/planfile/internal/model"
)

// Serialize renders the canonical text for a project. Sections are
// written in a fixed order (Title, People, Timeline, Sprint
// Configuration, Tasks) and empty sections are omitted. The output is a
// pure function of the model, so byte-equality of two serializations
// means the models are equal.
func Serialize(p *model.Project) string {
	var sections []string

	if p.Title != "" {
		sections = append(sections, fmt.Sprintf("# Project: %s\n", p.Title))
	}

	if len(p.People) > 0 {
		var b strings.Builder
		b.WriteString("## People\n")
		for _, person := range p.People {
			b.WriteString(formatPerson(person))
			b.WriteByte('\n')
		}
		sections = append(sections, b.String())
	}

	if len(p.Timeline) > 0 {
		var b strings.Builder
		b.WriteString("## Timeline\n")
		for _, entry := range p.Timeline {
			b.WriteString(formatTimelineEntry(entry))
			b.WriteByte('\n')
		}
		sections = append(sections, b.String())
	}

	if p.SprintConfig != nil || p.CurrentSprint != nil {
		sections = append(sections, formatSprintConfig(p))
	}

	if len(p.Tasks) > 0 {
		var b strings.Builder
		b.WriteString("## Tasks\n")
		for _, task := range p.Tasks {
			b.WriteString(formatTask(task))
			b.WriteByte('\n')
		}
		sections = append(sections, b.String())
	}

	return strings.Join(sections, "\n")
}

func formatPerson(person model.Person) string {
	if len(person.Responsibilities) == 0 {
		return "- " + person.Name
	}
	return fmt.Sprintf("- %s: %s", person.Name, strings.Join(person.Responsibilities, ", "))
}

// formatTimelineEntry writes annotations in the order planned range,
// percentage, actual range, then the free-text description.
func formatTimelineEntry(entry model.TimelineEntry) string {
	var b strings.Builder
	b.WriteString("- " + entry.Label + ":")
	if entry.StartDate != nil && entry.EndDate != nil {
		fmt.Fprintf(&b, " (%s to %s)", *entry.StartDate, *entry.EndDate)
	}
	if entry.Percentage != nil {
		fmt.Fprintf(&b, " [%d%%]", *entry.Percentage)
	}
	if entry.ActualStartDate != nil && entry.ActualEndDate != nil {
		fmt.Fprintf(&b, " {actual: %s to %s}", *entry.ActualStartDate, *entry.ActualEndDate)
	}
	if entry.Description != "" {
		b.WriteString(" " + entry.Description)
	}
	return b.String()
}

func formatSprintConfig(p *model.Project) string {
	cfg := p.SprintConfig
	if cfg == nil {
		cfg = model.NewSprintConfig()
	}

	var b strings.Builder
	b.WriteString("## Sprint Configuration\n")
	fmt.Fprintf(&b, "- Duration: %d weeks\n", cfg.Duration)
	if cfg.StartDate != nil {
		fmt.Fprintf(&b, "- Start Date: %s\n", *cfg.StartDate)
	}
	if cfg.ActiveSprint != nil {
		fmt.Fprintf(&b, "- Active Sprint: %s\n", *cfg.ActiveSprint)
	}
	if p.CurrentSprint != nil {
		fmt.Fprintf(&b, "- Current Sprint: %s\n", *p.CurrentSprint)
	}
	return b.String()
}

// formatTask writes annotations as assignee, sprint, remarks, status.
// This is the inverse priority of the extractor's right-to-left
// stripping; changing either side breaks the round trip. A "todo" status
// is the implicit default and is never written.
func formatTask(task model.Task) string {
	var b strings.Builder
	b.WriteString("- " + task.Title)
	if task.Assignee != nil {
		fmt.Fprintf(&b, " (%s)", *task.Assignee)
	}
	if task.Sprint != nil {
		fmt.Fprintf(&b, " {%s}", *task.Sprint)
	}
	if task.Remarks != nil {
		fmt.Fprintf(&b, " <%s>", *task.Remarks)
	}
	if task.Status != "" && task.Status != model.StatusTodo {
		fmt.Fprintf(&b, " [%s]", task.Status)
	}
	return b.String()
}
