package model

import "testing"

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		token string
		want  Status
	}{
		{"done", StatusDone},
		{"completed", StatusDone},
		{"complete", StatusDone},
		{"Done", StatusDone},
		{"in-progress", StatusInProgress},
		{"in progress", StatusInProgress},
		{"wip", StatusInProgress},
		{"active", StatusInProgress},
		{" WIP ", StatusInProgress},
		{"todo", StatusTodo},
		{"", StatusTodo},
		{"garbage", StatusTodo},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := NormalizeStatus(tt.token); got != tt.want {
				t.Errorf("NormalizeStatus(%q): got %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestGetTaskAndSetTaskStatus(t *testing.T) {
	p := NewProject()
	p.AddTask(Task{Title: "First"})
	p.AddTask(Task{Title: "Second", Status: StatusInProgress})

	if task := p.GetTask("Second"); task == nil || task.Status != StatusInProgress {
		t.Fatalf("GetTask: got %+v", task)
	}
	if task := p.GetTask("Missing"); task != nil {
		t.Fatalf("GetTask for missing title: got %+v, want nil", task)
	}

	if err := p.SetTaskStatus("First", StatusDone); err != nil {
		t.Fatalf("SetTaskStatus failed: %v", err)
	}
	if p.Tasks[0].Status != StatusDone {
		t.Errorf("Status: got %q, want done", p.Tasks[0].Status)
	}
	if err := p.SetTaskStatus("Missing", StatusDone); err == nil {
		t.Error("SetTaskStatus for missing title must fail")
	}
}

func TestAddTaskDefaultsStatus(t *testing.T) {
	p := NewProject()
	p.AddTask(Task{Title: "No status"})
	if p.Tasks[0].Status != StatusTodo {
		t.Errorf("Status: got %q, want todo", p.Tasks[0].Status)
	}
}

func TestUpdateTask(t *testing.T) {
	p := NewProject()
	p.AddTask(Task{Title: "Thing"})

	err := p.UpdateTask("Thing", func(task *Task) {
		task.Assignee = strPtr("Alice")
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if p.Tasks[0].Assignee == nil || *p.Tasks[0].Assignee != "Alice" {
		t.Errorf("Assignee: got %v", p.Tasks[0].Assignee)
	}
}

func TestTasksForSprint(t *testing.T) {
	p := NewProject()
	p.AddTask(Task{Title: "A", Sprint: strPtr("Sprint 1")})
	p.AddTask(Task{Title: "B", Sprint: strPtr("Sprint 2")})
	p.AddTask(Task{Title: "C"})
	p.AddTask(Task{Title: "D", Sprint: strPtr("Sprint 1")})

	tasks := p.TasksForSprint("Sprint 1")
	if len(tasks) != 2 || tasks[0].Title != "A" || tasks[1].Title != "D" {
		t.Errorf("TasksForSprint: got %+v", tasks)
	}
}

func TestFindTimelineEntryFirstWins(t *testing.T) {
	p := NewProject()
	p.Timeline = []TimelineEntry{
		{Label: "Sprint 1", Description: "first"},
		{Label: "Sprint 1", Description: "second"},
	}

	if entry := p.FindTimelineEntry("Sprint 1"); entry == nil || entry.Description != "first" {
		t.Errorf("FindTimelineEntry: got %+v", entry)
	}
}

func TestTimelineEntryProgress(t *testing.T) {
	tasks := []Task{
		{Title: "A", Sprint: strPtr("S"), Status: StatusDone},
		{Title: "B", Sprint: strPtr("S"), Status: StatusTodo},
		{Title: "C", Sprint: strPtr("Other"), Status: StatusDone},
	}

	entry := TimelineEntry{Label: "S"}
	if got := entry.Progress(tasks); got != 50 {
		t.Errorf("Progress: got %d, want 50", got)
	}

	explicit := TimelineEntry{Label: "S", Percentage: intPtr(80)}
	if got := explicit.Progress(tasks); got != 80 {
		t.Errorf("explicit percentage must win: got %d, want 80", got)
	}

	unlinked := TimelineEntry{Label: "Nothing"}
	if got := unlinked.Progress(tasks); got != 0 {
		t.Errorf("entry with no tasks: got %d, want 0", got)
	}
}

func TestStatusCounts(t *testing.T) {
	p := NewProject()
	p.AddTask(Task{Title: "A", Status: StatusDone})
	p.AddTask(Task{Title: "B", Status: StatusDone})
	p.AddTask(Task{Title: "C", Status: StatusInProgress})

	counts := p.StatusCounts()
	if counts[StatusDone] != 2 || counts[StatusInProgress] != 1 || counts[StatusTodo] != 0 {
		t.Errorf("StatusCounts: got %v", counts)
	}
}
