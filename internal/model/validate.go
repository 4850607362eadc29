package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/planfile/planfile/internal/utils"
)

// bundledProjectSchema is the embedded schema for project JSON exports.
const bundledProjectSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Planfile Project",
  "type": "object",
  "additionalProperties": false,
  "required": ["title", "people", "timeline", "tasks"],
  "properties": {
    "title": { "type": "string" },
    "people": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["name", "responsibilities"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "responsibilities": { "type": "array", "items": { "type": "string" } }
        }
      }
    },
    "timeline": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["label", "description"],
        "properties": {
          "label": { "type": "string", "minLength": 1 },
          "description": { "type": "string" },
          "percentage": { "type": "integer" },
          "start_date": { "type": "string" },
          "end_date": { "type": "string" },
          "actual_start_date": { "type": "string" },
          "actual_end_date": { "type": "string" },
          "north_stars": {
            "type": "array",
            "items": {
              "type": "object",
              "additionalProperties": false,
              "required": ["person", "goal"],
              "properties": {
                "person": { "type": "string" },
                "goal": { "type": "string" }
              }
            }
          }
        }
      }
    },
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["title", "status", "dependencies"],
        "properties": {
          "title": { "type": "string", "minLength": 1 },
          "assignee": { "type": "string" },
          "status": { "type": "string", "enum": ["todo", "in-progress", "done"] },
          "sprint": { "type": "string" },
          "remarks": { "type": "string" },
          "dependencies": { "type": "array", "items": { "type": "string" } }
        }
      }
    },
    "sprint_config": {
      "type": "object",
      "additionalProperties": false,
      "required": ["duration"],
      "properties": {
        "duration": { "type": "integer", "minimum": 1 },
        "start_date": { "type": "string" },
        "active_sprint": { "type": "string" }
      }
    },
    "current_sprint": { "type": "string" },
    "info": { "type": "string" }
  }
}`

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath overrides the bundled schema when set.
	SchemaPath string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Validate checks the model against the project schema. Parsing never
// rejects input, so this is the place callers get semantic feedback
// before exporting or persisting a model.
func (p *Project) Validate(opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	schema, warning := compileSchema(opts.SchemaPath)
	if schema == nil {
		result.Warnings = append(result.Warnings, warning)
		p.validateMinimal(result)
		return result
	}

	result.UsedSchema = true

	// Marshal the model back to JSON for validation
	data, err := json.Marshal(p)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("marshal project for validation: %w", err),
		})
		return result
	}

	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("unmarshal project for validation: %w", err),
		})
		return result
	}

	if err := schema.Validate(obj); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}

	return result
}

// compileSchema compiles the schema at path, or the bundled schema when
// path is empty. Returns nil and a warning when compilation fails.
func compileSchema(path string) (*jsonschema.Schema, string) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if path == "" {
		if err := compiler.AddResource("planfile.schema.json", strings.NewReader(bundledProjectSchema)); err != nil {
			return nil, fmt.Sprintf("bundled schema unavailable: %v", err)
		}
		schema, err := compiler.Compile("planfile.schema.json")
		if err != nil {
			return nil, fmt.Sprintf("bundled schema invalid: %v", err)
		}
		return schema, ""
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Sprintf("invalid schema path: %v", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Sprintf("schema file not readable: %v", err)
	}
	schema, err := compiler.Compile(absPath)
	if err != nil {
		return nil, fmt.Sprintf("invalid schema file: %v", err)
	}
	return schema, ""
}

// validateMinimal performs minimal validation without JSON Schema.
func (p *Project) validateMinimal(result *ValidationResult) {
	for i, task := range p.Tasks {
		path := fmt.Sprintf("tasks[%d]", i)
		if task.Title == "" {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: path + ".title",
				Err:  fmt.Errorf("missing required field"),
			})
			continue
		}
		switch task.Status {
		case StatusTodo, StatusInProgress, StatusDone:
			// Valid status
		default:
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: path + ".status",
				Err:  fmt.Errorf("invalid status %q, must be one of: todo, in-progress, done", task.Status),
			})
		}
	}

	for i, entry := range p.Timeline {
		if entry.Label == "" {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: fmt.Sprintf("timeline[%d].label", i),
				Err:  fmt.Errorf("missing required field"),
			})
		}
	}

	if p.SprintConfig != nil && p.SprintConfig.Duration < 1 {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: "sprint_config.duration",
			Err:  fmt.Errorf("must be at least 1, got %d", p.SprintConfig.Duration),
		})
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
