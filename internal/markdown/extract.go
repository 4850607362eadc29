package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/planfile/planfile/internal/model"
	"github.com/planfile/planfile/internal/utils"
)

var (
	// Timeline annotations, stripped from the description in this order.
	percentRe = regexp.MustCompile(`\[(\d+)%\]`)
	actualRe  = regexp.MustCompile(`(?i)\{actual:\s*(\d{4}-\d{2}-\d{2})\s+to\s+(\d{4}-\d{2}-\d{2})\}`)
	plannedRe = regexp.MustCompile(`\((\d{4}-\d{2}-\d{2})\s+to\s+(\d{4}-\d{2}-\d{2})\)`)

	// Task annotations, stripped right-to-left off the end of the line.
	statusRe   = regexp.MustCompile(`\[([^\[\]]*)\]\s*$`)
	remarksRe  = regexp.MustCompile(`<([^<>]*)>\s*$`)
	sprintRe   = regexp.MustCompile(`\{([^{}]*)\}\s*$`)
	assigneeRe = regexp.MustCompile(`\(([^()]*)\)\s*$`)

	// Sprint configuration fragments, one per list item.
	durationRe      = regexp.MustCompile(`(?i)^duration\s*:\s*(\d+)\s*weeks?$`)
	sprintStartRe   = regexp.MustCompile(`(?i)^start\s+date\s*:\s*(\d{4}-\d{2}-\d{2})$`)
	activeSprintRe  = regexp.MustCompile(`(?i)^active\s+sprint\s*:\s*(.+)$`)
	currentSprintRe = regexp.MustCompile(`(?i)^current\s+sprint\s*:\s*(.+)$`)
)

// extractPerson parses "<name>: <resp1>, <resp2>". Without a colon the
// whole content is the name.
func extractPerson(content string) model.Person {
	name, rest, found := strings.Cut(content, ":")
	if !found {
		return model.Person{
			Name:             strings.TrimSpace(content),
			Responsibilities: []string{},
		}
	}
	resps := utils.SplitAndTrim(rest, ",")
	if resps == nil {
		resps = []string{}
	}
	return model.Person{
		Name:             strings.TrimSpace(name),
		Responsibilities: resps,
	}
}

// extractTimelineEntry parses "<label>: <annotations and free text>".
// Percentage, actual range, and planned range are each removed from the
// working description once matched; whatever is left, trimmed, is the
// description.
func extractTimelineEntry(content string) model.TimelineEntry {
	label, rest, found := strings.Cut(content, ":")
	entry := model.TimelineEntry{Label: strings.TrimSpace(label)}
	if !found {
		entry.Label = strings.TrimSpace(content)
		return entry
	}

	desc := rest
	if m := percentRe.FindStringSubmatchIndex(desc); m != nil {
		if n, err := strconv.Atoi(desc[m[2]:m[3]]); err == nil {
			entry.Percentage = &n
		}
		desc = desc[:m[0]] + desc[m[1]:]
	}
	if m := actualRe.FindStringSubmatchIndex(desc); m != nil {
		start := desc[m[2]:m[3]]
		end := desc[m[4]:m[5]]
		entry.ActualStartDate = &start
		entry.ActualEndDate = &end
		desc = desc[:m[0]] + desc[m[1]:]
	}
	if m := plannedRe.FindStringSubmatchIndex(desc); m != nil {
		start := desc[m[2]:m[3]]
		end := desc[m[4]:m[5]]
		entry.StartDate = &start
		entry.EndDate = &end
		desc = desc[:m[0]] + desc[m[1]:]
	}
	entry.Description = strings.TrimSpace(desc)
	return entry
}

// extractTask strips trailing annotations off a task line, right to left:
// status, then remarks, then sprint, then assignee. Each step works on
// whatever the previous step left, so the order is load-bearing when
// bracket types are adjacent. The trimmed remainder is the title.
func extractTask(content string) model.Task {
	task := model.Task{Status: model.StatusTodo, Dependencies: []string{}}
	rest := strings.TrimSpace(content)

	if token, remaining, ok := stripTrailing(rest, statusRe); ok {
		task.Status = model.NormalizeStatus(token)
		rest = remaining
	}
	if remarks, remaining, ok := stripTrailing(rest, remarksRe); ok {
		remarks = strings.TrimSpace(remarks)
		task.Remarks = &remarks
		rest = remaining
	}
	if sprint, remaining, ok := stripTrailing(rest, sprintRe); ok {
		sprint = strings.TrimSpace(sprint)
		task.Sprint = &sprint
		rest = remaining
	}
	if assignee, remaining, ok := stripTrailing(rest, assigneeRe); ok {
		assignee = strings.TrimSpace(assignee)
		task.Assignee = &assignee
		rest = remaining
	}

	task.Title = strings.TrimSpace(rest)
	return task
}

// stripTrailing matches re against the end of s and returns the captured
// group plus the remaining prefix. re must anchor with \s*$ and have one
// capture group.
func stripTrailing(s string, re *regexp.Regexp) (value, remaining string, ok bool) {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return "", s, false
	}
	return s[m[2]:m[3]], strings.TrimSpace(s[:m[0]]), true
}

// extractSprintFragment applies one sprint-configuration line to the
// project. Lines matching no known pattern are ignored. Current Sprint is
// project-level state, not part of the sprint config.
func extractSprintFragment(content string, p *model.Project) {
	if p.SprintConfig == nil {
		p.SprintConfig = model.NewSprintConfig()
	}
	switch {
	case durationRe.MatchString(content):
		if n, err := strconv.Atoi(durationRe.FindStringSubmatch(content)[1]); err == nil {
			p.SprintConfig.Duration = n
		}
	case sprintStartRe.MatchString(content):
		date := sprintStartRe.FindStringSubmatch(content)[1]
		p.SprintConfig.StartDate = &date
	case activeSprintRe.MatchString(content):
		label := strings.TrimSpace(activeSprintRe.FindStringSubmatch(content)[1])
		p.SprintConfig.ActiveSprint = &label
	case currentSprintRe.MatchString(content):
		label := strings.TrimSpace(currentSprintRe.FindStringSubmatch(content)[1])
		p.CurrentSprint = &label
	}
}
