package markdown

import (
	"regexp"
	"strings"

	"github.com/planfile/planfile/internal/model"
)

// section is the scanner state. It is carried as a local through the
// line walk so Parse stays reentrant.
type section int

const (
	sectionNone section = iota
	sectionPeople
	sectionTimeline
	sectionTasks
	sectionSprint
)

var (
	titleRe  = regexp.MustCompile(`(?i)^#\s*project\s*:\s*(.*)$`)
	headerRe = regexp.MustCompile(`^##\s*([^#].*?)\s*$`)
)

// Parse builds a project model from document text. It never fails: any
// input, including the empty string, produces a model, with unparseable
// fragments degrading to partial entities or being dropped.
func Parse(text string) *model.Project {
	p := model.NewProject()
	current := sectionNone

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Headers take priority over list items.
		if m := headerRe.FindStringSubmatch(trimmed); m != nil {
			current = recognizeSection(m[1])
			if current == sectionSprint && p.SprintConfig == nil {
				p.SprintConfig = model.NewSprintConfig()
			}
			continue
		}
		if m := titleRe.FindStringSubmatch(trimmed); m != nil {
			// Last title wins; the scanner overwrites rather than dedupes.
			p.Title = strings.TrimSpace(m[1])
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		content, ok := listItem(trimmed)
		if !ok {
			continue
		}

		switch current {
		case sectionPeople:
			p.People = append(p.People, extractPerson(content))
		case sectionTimeline:
			p.Timeline = append(p.Timeline, extractTimelineEntry(content))
		case sectionTasks:
			p.Tasks = append(p.Tasks, extractTask(content))
		case sectionSprint:
			extractSprintFragment(content, p)
		}
	}

	normalizeRemarks(p.Tasks)
	return p
}

// recognizeSection maps a level-2 header to a scanner state. Unknown
// headers reset to none, so their content lines are dropped.
func recognizeSection(name string) section {
	switch strings.ToLower(strings.Join(strings.Fields(name), " ")) {
	case "people":
		return sectionPeople
	case "timeline":
		return sectionTimeline
	case "tasks":
		return sectionTasks
	case "sprint configuration":
		return sectionSprint
	default:
		return sectionNone
	}
}

// listItem returns the content of a "- " or "* " line.
func listItem(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return strings.TrimSpace(line[2:]), true
	}
	return "", false
}
