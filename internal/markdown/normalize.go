package markdown

import (
	"strings"

	"github.com/planfile/planfile/internal/model"
)

// normalizeRemarks recovers remarks written before a sprint or assignee
// token, e.g. "- Fix login <urgent> (alice)". The task extractor only
// looks for remarks at the end of the line, so in that arrangement the
// angle-bracket fragment survives on the title. Tasks that already have
// remarks are left alone, which makes the pass idempotent.
func normalizeRemarks(tasks []model.Task) {
	for i := range tasks {
		if tasks[i].Remarks != nil {
			continue
		}
		if remarks, remaining, ok := stripTrailing(tasks[i].Title, remarksRe); ok {
			remarks = strings.TrimSpace(remarks)
			tasks[i].Remarks = &remarks
			tasks[i].Title = remaining
		}
	}
}
