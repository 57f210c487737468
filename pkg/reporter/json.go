package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/callshift/pkg/runner"
)

// JSONReporter writes the run result as a single JSON document, suitable
// for CI consumption.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// jsonFile is the per-file entry in JSON output.
type jsonFile struct {
	Path         string `json:"path"`
	Sites        int    `json:"sites"`
	EditsApplied int    `json:"edits_applied"`
	Written      bool   `json:"written"`
	Skipped      bool   `json:"skipped,omitempty"`
	SkipReason   string `json:"skip_reason,omitempty"`
	Diff         string `json:"diff,omitempty"`
	Error        string `json:"error,omitempty"`
}

// jsonReport is the top-level JSON document.
type jsonReport struct {
	Files []jsonFile   `json:"files"`
	Stats runner.Stats `json:"stats"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) error {
	report := jsonReport{Files: []jsonFile{}}
	if result != nil {
		report.Stats = result.Stats
		for _, file := range result.Files {
			entry := jsonFile{Path: file.Path}
			if file.Error != nil {
				entry.Error = file.Error.Error()
			} else if file.Result != nil {
				pr := file.Result
				entry.Sites = pr.Sites
				entry.EditsApplied = pr.EditsApplied
				entry.Written = pr.Written
				entry.Skipped = pr.Skipped
				entry.SkipReason = pr.SkipReason
				if pr.Diff.HasChanges() {
					entry.Diff = pr.Diff.String()
				}
			}
			report.Files = append(report.Files, entry)
		}
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}
