package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/planfile/planfile/internal/config"
	"github.com/planfile/planfile/internal/diff"
	"github.com/planfile/planfile/internal/model"
	"github.com/planfile/planfile/internal/store"
)

// showCommand prints a summary of the project document.
func showCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planfile show", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := singlePathArg(fs.Args(), cfg.ProjectFile)
	if err != nil {
		return err
	}

	p, err := store.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded project", "path", path, "tasks", len(p.Tasks))

	title := p.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("Project: %s\n", title)
	counts := p.StatusCounts()
	fmt.Printf("Tasks: %d todo, %d in-progress, %d done\n",
		counts[model.StatusTodo], counts[model.StatusInProgress], counts[model.StatusDone])
	fmt.Printf("People: %d  Timeline entries: %d\n", len(p.People), len(p.Timeline))
	if p.CurrentSprint != nil {
		line := fmt.Sprintf("Current sprint: %s", *p.CurrentSprint)
		if entry := p.FindTimelineEntry(*p.CurrentSprint); entry != nil {
			line += fmt.Sprintf(" (%d%% complete)", entry.Progress(p.Tasks))
		}
		fmt.Println(line)
	}
	return nil
}

// fmtCommand rewrites the document in canonical form.
func fmtCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planfile fmt", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := singlePathArg(fs.Args(), cfg.ProjectFile)
	if err != nil {
		return err
	}

	changed, err := store.Format(path)
	if err != nil {
		return err
	}
	if changed {
		logger.Info("formatted", "path", path)
	} else {
		logger.Info("already canonical", "path", path)
	}
	return nil
}

// tasksCommand lists tasks, optionally filtered by status or sprint, and
// applies -set updates ("<title>=<status>") before listing.
func tasksCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planfile tasks", flag.ContinueOnError)
	statusFilter := fs.String("status", "", "Only show tasks with this status")
	sprintFilter := fs.String("sprint", "", "Only show tasks in this sprint")
	set := fs.String("set", "", "Update a task: \"<title>=<status>\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := singlePathArg(fs.Args(), cfg.ProjectFile)
	if err != nil {
		return err
	}

	p, err := store.Load(path)
	if err != nil {
		return err
	}

	if *set != "" {
		title, status, found := strings.Cut(*set, "=")
		if !found {
			return fmt.Errorf("invalid -set value %q, want \"<title>=<status>\"", *set)
		}
		title = strings.TrimSpace(title)
		if err := p.SetTaskStatus(title, model.NormalizeStatus(status)); err != nil {
			return err
		}
		if err := store.Save(path, p); err != nil {
			return err
		}
		logger.Info("updated task", "title", title, "status", model.NormalizeStatus(status))
	}

	shown := 0
	for _, task := range p.Tasks {
		if *statusFilter != "" && task.Status != model.NormalizeStatus(*statusFilter) {
			continue
		}
		if *sprintFilter != "" && (task.Sprint == nil || *task.Sprint != *sprintFilter) {
			continue
		}
		line := fmt.Sprintf("[%s] %s", task.Status, task.Title)
		if task.Assignee != nil {
			line += fmt.Sprintf(" (%s)", *task.Assignee)
		}
		if task.Sprint != nil {
			line += fmt.Sprintf(" {%s}", *task.Sprint)
		}
		if task.Remarks != nil {
			line += fmt.Sprintf(" - %s", *task.Remarks)
		}
		fmt.Println(line)
		shown++
	}
	if shown == 0 {
		fmt.Println("no matching tasks")
	}
	return nil
}

// diffCommand compares two project documents.
func diffCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("planfile diff", flag.ContinueOnError)
	unified := fs.Bool("unified", false, "Print a line diff of the canonical text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) != 2 {
		return fmt.Errorf("diff requires exactly two files, got %d", len(remaining))
	}

	oldProject, err := store.Load(remaining[0])
	if err != nil {
		return err
	}
	newProject, err := store.Load(remaining[1])
	if err != nil {
		return err
	}

	if *unified {
		fmt.Print(diff.Unified(oldProject, newProject))
		return nil
	}
	fmt.Print(diff.Compare(oldProject, newProject).String())
	return nil
}

// validateCommand checks the parsed model against the export schema.
func validateCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planfile validate", flag.ContinueOnError)
	schemaPath := fs.String("schema", cfg.SchemaFile, "Schema file overriding the bundled schema")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := singlePathArg(fs.Args(), cfg.ProjectFile)
	if err != nil {
		return err
	}

	p, err := store.Load(path)
	if err != nil {
		return err
	}

	result := p.Validate(model.ValidationOptions{SchemaPath: *schemaPath})
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if !result.Valid {
		for _, e := range result.Errors {
			logger.Error(e.Error())
		}
		return fmt.Errorf("%s: %d validation error(s)", path, len(result.Errors))
	}
	logger.Info("valid", "path", path, "schema", result.UsedSchema)
	return nil
}

// exportCommand writes the project model as JSON.
func exportCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("planfile export", flag.ContinueOnError)
	out := fs.String("o", "", "Output path (default: <file>.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := singlePathArg(fs.Args(), cfg.ProjectFile)
	if err != nil {
		return err
	}

	p, err := store.Load(path)
	if err != nil {
		return err
	}

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(path, ".md") + ".json"
	}
	if err := p.WriteJSON(outPath); err != nil {
		return err
	}
	logger.Info("exported", "path", outPath)
	return nil
}
