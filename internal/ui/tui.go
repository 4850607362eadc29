// Package ui provides an optional terminal viewer for project documents.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planfile/planfile/internal/model"
	"github.com/planfile/planfile/internal/store"
)

// RunTUI starts the document viewer for the project file at path.
func RunTUI(ctx context.Context, path string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	m := newTUIModel(path)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	path         string
	loadErr      error
	project      *model.Project
	tickInterval time.Duration
	filter       model.Status // empty means show all
	showHelp     bool
}

type tickMsg time.Time

func newTUIModel(path string) *tuiModel {
	return &tuiModel{
		path:         path,
		tickInterval: time.Second,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "1":
			m.filter = model.StatusTodo
			return m, nil
		case "2":
			m.filter = model.StatusInProgress
			return m, nil
		case "3":
			m.filter = model.StatusDone
			return m, nil
		case "0":
			m.filter = ""
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b, m.project)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString("Error loading project file:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}
	if m.project == nil {
		b.WriteString("Loading...\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.filter != "" {
		fmt.Fprintf(&b, "Filter: %s (0 to clear)\n\n", m.filter)
	}

	writeOverview(&b, m.project)
	writeSprint(&b, m.project)
	writeTasks(&b, m.project, m.filter)
	writeFooter(&b, m.tickInterval)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) refresh() {
	p, err := store.Load(m.path)
	if err != nil {
		m.loadErr = err
		m.project = nil
		return
	}
	m.loadErr = nil
	m.project = p
}

func writeTitle(b *strings.Builder, p *model.Project) {
	title := "Planfile"
	if p != nil && p.Title != "" {
		title = "Planfile: " + p.Title
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeOverview(b *strings.Builder, p *model.Project) {
	counts := p.StatusCounts()
	b.WriteString("Task Overview\n\n")
	fmt.Fprintf(b, "  Todo: %d  In Progress: %d  Done: %d  People: %d\n\n",
		counts[model.StatusTodo],
		counts[model.StatusInProgress],
		counts[model.StatusDone],
		len(p.People),
	)
}

func writeSprint(b *strings.Builder, p *model.Project) {
	if p.CurrentSprint == nil {
		return
	}
	label := *p.CurrentSprint
	b.WriteString("Current Sprint\n\n")
	fmt.Fprintf(b, "  %s", label)
	if entry := p.FindTimelineEntry(label); entry != nil {
		fmt.Fprintf(b, " (%d%% complete)", entry.Progress(p.Tasks))
	}
	b.WriteString("\n\n")
}

func writeTasks(b *strings.Builder, p *model.Project, filter model.Status) {
	b.WriteString("Tasks\n\n")
	shown := 0
	for i := range p.Tasks {
		task := &p.Tasks[i]
		if filter != "" && task.Status != filter {
			continue
		}
		b.WriteString(formatTask(task))
		b.WriteByte('\n')
		shown++
	}
	if shown == 0 {
		b.WriteString("  No matching tasks.\n")
	}
	b.WriteByte('\n')
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Reload project file\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  1            Filter by todo\n")
	b.WriteString("  2            Filter by in-progress\n")
	b.WriteString("  3            Filter by done\n")
	b.WriteString("  0            Clear filter\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	fmt.Fprintf(b, "Press h for help | q to quit | Reloading every %s\n", interval)
}

func formatTask(t *model.Task) string {
	statusIcon := " "
	switch t.Status {
	case model.StatusInProgress:
		statusIcon = ">"
	case model.StatusDone:
		statusIcon = "x"
	}

	line := fmt.Sprintf("  [%s] %s", statusIcon, t.Title)
	if t.Assignee != nil {
		line += fmt.Sprintf(" (%s)", *t.Assignee)
	}
	if t.Sprint != nil {
		line += fmt.Sprintf(" {%s}", *t.Sprint)
	}
	return line
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
