// Package model defines the structured project model and its helpers.
package model

import (
	"fmt"
	"strings"
)

// Status represents a task status.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// NormalizeStatus maps a free-form status token to one of the three
// canonical values. Unrecognized tokens collapse to StatusTodo.
func NormalizeStatus(token string) Status {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "done", "completed", "complete":
		return StatusDone
	case "in-progress", "in progress", "wip", "active":
		return StatusInProgress
	default:
		return StatusTodo
	}
}

// Project is the structured form of a single project document.
// It is rebuilt from the canonical text on every parse; nothing is cached
// between calls.
type Project struct {
	Title         string          `json:"title"`
	People        []Person        `json:"people"`
	Timeline      []TimelineEntry `json:"timeline"`
	Tasks         []Task          `json:"tasks"`
	SprintConfig  *SprintConfig   `json:"sprint_config,omitempty"`
	CurrentSprint *string         `json:"current_sprint,omitempty"`
	Info          *string         `json:"info,omitempty"`
}

// NewProject returns an empty project with non-nil entity slices.
func NewProject() *Project {
	return &Project{
		People:   []Person{},
		Timeline: []TimelineEntry{},
		Tasks:    []Task{},
	}
}

// Person is a project member with an ordered responsibility list.
// Duplicate responsibilities are kept as written.
type Person struct {
	Name             string   `json:"name"`
	Responsibilities []string `json:"responsibilities"`
}

// TimelineEntry is a named phase or sprint. Label is the key other
// subsystems use to link tasks to sprints; uniqueness is not enforced here.
type TimelineEntry struct {
	Label           string      `json:"label"`
	Description     string      `json:"description"`
	Percentage      *int        `json:"percentage,omitempty"`
	StartDate       *string     `json:"start_date,omitempty"`
	EndDate         *string     `json:"end_date,omitempty"`
	ActualStartDate *string     `json:"actual_start_date,omitempty"`
	ActualEndDate   *string     `json:"actual_end_date,omitempty"`
	NorthStars      []NorthStar `json:"north_stars,omitempty"`
}

// NorthStar is a per-person goal attached to a timeline entry. It is
// carried through the model but not produced by the text grammar.
type NorthStar struct {
	Person string `json:"person"`
	Goal   string `json:"goal"`
}

// Task represents a single task line.
type Task struct {
	Title        string   `json:"title"`
	Assignee     *string  `json:"assignee,omitempty"`
	Status       Status   `json:"status"`
	Sprint       *string  `json:"sprint,omitempty"`
	Remarks      *string  `json:"remarks,omitempty"`
	Dependencies []string `json:"dependencies"`
}

// IsZero returns true if the task is empty (has no title).
func (t *Task) IsZero() bool {
	return t.Title == ""
}

// SprintConfig holds sprint cadence settings.
type SprintConfig struct {
	Duration     int     `json:"duration"`
	StartDate    *string `json:"start_date,omitempty"`
	ActiveSprint *string `json:"active_sprint,omitempty"`
}

// DefaultSprintDuration is the sprint length in weeks when the document
// does not specify one.
const DefaultSprintDuration = 2

// NewSprintConfig returns a sprint config with the default duration.
func NewSprintConfig() *SprintConfig {
	return &SprintConfig{Duration: DefaultSprintDuration}
}

// GetTask returns a task by title, or nil if not found.
func (p *Project) GetTask(title string) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].Title == title {
			return &p.Tasks[i]
		}
	}
	return nil
}

// FindTaskByStatus returns the first task matching the status,
// or nil if none found.
func (p *Project) FindTaskByStatus(status Status) *Task {
	for i := range p.Tasks {
		if p.Tasks[i].Status == status {
			return &p.Tasks[i]
		}
	}
	return nil
}

// FindTimelineEntry returns the timeline entry with the given label,
// or nil if not found. When labels collide the first declaration wins.
func (p *Project) FindTimelineEntry(label string) *TimelineEntry {
	for i := range p.Timeline {
		if p.Timeline[i].Label == label {
			return &p.Timeline[i]
		}
	}
	return nil
}

// SetTaskStatus updates a task's status.
func (p *Project) SetTaskStatus(title string, status Status) error {
	for i := range p.Tasks {
		if p.Tasks[i].Title == title {
			p.Tasks[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("task %q not found", title)
}

// AddTask appends a new task to the list.
func (p *Project) AddTask(task Task) {
	if task.Status == "" {
		task.Status = StatusTodo
	}
	p.Tasks = append(p.Tasks, task)
}

// UpdateTask updates an existing task by title.
func (p *Project) UpdateTask(title string, updater func(*Task)) error {
	for i := range p.Tasks {
		if p.Tasks[i].Title == title {
			updater(&p.Tasks[i])
			return nil
		}
	}
	return fmt.Errorf("task %q not found", title)
}

// TasksForSprint returns the tasks referencing the given sprint label.
func (p *Project) TasksForSprint(label string) []Task {
	var tasks []Task
	for _, task := range p.Tasks {
		if task.Sprint != nil && *task.Sprint == label {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// StatusCounts returns the number of tasks per status.
func (p *Project) StatusCounts() map[Status]int {
	counts := map[Status]int{
		StatusTodo:       0,
		StatusInProgress: 0,
		StatusDone:       0,
	}
	for _, task := range p.Tasks {
		counts[task.Status]++
	}
	return counts
}

// Progress returns the completion percentage for the entry. An explicit
// percentage wins; otherwise it is the done-ratio of the tasks linked to
// the entry's label, or 0 when no tasks reference it.
func (e *TimelineEntry) Progress(tasks []Task) int {
	if e.Percentage != nil {
		return *e.Percentage
	}
	total := 0
	done := 0
	for _, task := range tasks {
		if task.Sprint == nil || *task.Sprint != e.Label {
			continue
		}
		total++
		if task.Status == StatusDone {
			done++
		}
	}
	if total == 0 {
		return 0
	}
	return done * 100 / total
}
